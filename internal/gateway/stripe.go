package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	deliveryLineItemName = "Delivery Charges"
	orderIDMetadataKey   = "orderId"
)

// SessionCreator is satisfied by (*client.API).CheckoutSessions.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeOptions struct {
	WebhookSecret string
	// AllowUnsignedWebhooks включает разбор событий без проверки подписи.
	// Конфиг запрещает это в production.
	AllowUnsignedWebhooks bool
}

type Stripe struct {
	logger   *slog.Logger
	sessions SessionCreator
	opts     StripeOptions
}

func NewStripe(logger *slog.Logger, sessions SessionCreator, opts StripeOptions) *Stripe {
	return &Stripe{
		logger:   logger.With(slog.String("gateway", "stripe")),
		sessions: sessions,
		opts:     opts,
	}
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items)+1)
	for _, item := range req.Items {
		lineItems = append(lineItems, lineItem(req.Currency, item.Name, item.Price, int64(item.Quantity)))
	}
	lineItems = append(lineItems, lineItem(req.Currency, deliveryLineItemName, req.DeliveryCharge, 1))

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		Locale:     stripe.String("en"),
	}
	params.Context = ctx
	params.AddMetadata(orderIDMetadataKey, req.OrderID)

	session, err := s.sessions.New(params)
	if err != nil {
		return entities.CheckoutSession{}, &entities.GatewayError{Op: "create checkout session", Err: err}
	}

	s.logger.DebugContext(ctx, "checkout session created",
		slog.String("order_id", req.OrderID),
		slog.String("session_id", session.ID),
	)
	return entities.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func lineItem(currency, name string, price decimal.Decimal, quantity int64) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
			UnitAmount: stripe.Int64(entities.MinorUnits(price)),
		},
		Quantity: stripe.Int64(quantity),
	}
}

// ParseEvent authenticates a webhook payload against the Stripe-Signature
// header and extracts the order correlation id.
func (s *Stripe) ParseEvent(payload []byte, signature string) (entities.CheckoutEvent, error) {
	var event stripe.Event

	if s.opts.WebhookSecret == "" {
		if !s.opts.AllowUnsignedWebhooks {
			return entities.CheckoutEvent{}, fmt.Errorf("%w: webhook secret is not configured", entities.ErrInvalidSignature)
		}
		if err := json.Unmarshal(payload, &event); err != nil {
			return entities.CheckoutEvent{}, fmt.Errorf("%w: %v", entities.ErrMalformedEvent, err)
		}
		s.logger.Warn("processing webhook without signature verification, webhook secret is not set",
			slog.String("event_id", event.ID),
		)
	} else {
		var err error
		event, err = webhook.ConstructEventWithOptions(payload, signature, s.opts.WebhookSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			if isSignatureError(err) {
				return entities.CheckoutEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
			}
			return entities.CheckoutEvent{}, fmt.Errorf("%w: %v", entities.ErrMalformedEvent, err)
		}
	}

	return toCheckoutEvent(event)
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

type sessionObject struct {
	Metadata map[string]string `json:"metadata"`
}

func toCheckoutEvent(event stripe.Event) (entities.CheckoutEvent, error) {
	out := entities.CheckoutEvent{ID: event.ID, Type: string(event.Type)}
	if out.Type == "" {
		return entities.CheckoutEvent{}, fmt.Errorf("%w: event type is missing", entities.ErrMalformedEvent)
	}

	if out.Type != entities.EventCheckoutCompleted {
		return out, nil
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return entities.CheckoutEvent{}, fmt.Errorf("%w: event has no data object", entities.ErrMalformedEvent)
	}

	var obj sessionObject
	if err := json.Unmarshal(event.Data.Raw, &obj); err != nil {
		return entities.CheckoutEvent{}, fmt.Errorf("%w: %v", entities.ErrMalformedEvent, err)
	}
	out.OrderID = obj.Metadata[orderIDMetadataKey]
	return out, nil
}
