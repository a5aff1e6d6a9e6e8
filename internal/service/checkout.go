package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/idempotency"

	"github.com/google/uuid"
)

const notificationScope = "stripe"

// PlaceCheckoutOrder persists a pending order with an expiry and opens a
// hosted checkout session for it. The order is stored before the gateway is
// called, so a gateway failure leaves it to expire on its own.
func (s *orderService) PlaceCheckoutOrder(ctx context.Context, req entities.PlaceOrder, origin string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if origin == "" {
		return "", fmt.Errorf("%w: origin is required", entities.ErrInvalidOrder)
	}

	order := s.newOrder(uuid.NewString(), req, entities.PaymentStripe)
	expiresAt := order.Date.Add(s.cfg.CheckoutOrderTTL)
	order.ExpiresAt = &expiresAt

	err := s.retry(ctx, func() error {
		_, err := s.createOrder(ctx, order)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	ordersPlaced.WithLabelValues(string(entities.PaymentStripe)).Inc()
	s.publish(ctx, entities.EventOrderPlaced, order, SourceCheckout)

	session, err := s.checkout.CreateCheckoutSession(ctx, entities.CheckoutRequest{
		OrderID:        order.ID,
		Items:          order.Items,
		Currency:       s.cfg.Currency,
		DeliveryCharge: s.cfg.DeliveryCharge,
		SuccessURL:     fmt.Sprintf("%s/verify?success=true&orderId=%s", origin, order.ID),
		CancelURL:      fmt.Sprintf("%s/verify?success=false&orderId=%s", origin, order.ID),
	})
	if err != nil {
		s.logger.Error("failed to create checkout session",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
		return "", err
	}

	s.logger.Debug("checkout order placed",
		slog.String("order_id", order.ID),
		slog.Time("expires_at", expiresAt),
	)
	return session.URL, nil
}

// VerifyCheckout applies the outcome the client reports after returning from
// the hosted checkout page.
func (s *orderService) VerifyCheckout(ctx context.Context, orderID, userID string, success bool) (bool, error) {
	if orderID == "" || userID == "" {
		return false, fmt.Errorf("%w: order id and user id are required", entities.ErrInvalidOrder)
	}

	var order entities.Order
	err := s.retry(ctx, func() error {
		var err error
		order, err = s.orders.GetOrder(ctx, orderID)
		return err
	})
	if err != nil {
		return false, err
	}
	if order.UserID != userID {
		return false, entities.ErrOrderNotFound
	}

	if success {
		if _, err := s.confirm(ctx, orderID, SourceClient); err != nil {
			return false, err
		}
		return true, nil
	}

	err = s.retry(ctx, func() error {
		return s.orders.DeleteOrder(ctx, orderID)
	})
	switch {
	case isNotFound(err):
		// уже оплачен или удалён
		s.logger.Debug("cancelled order is gone", slog.String("order_id", orderID))
	case err != nil:
		return false, fmt.Errorf("failed to delete order: %w", err)
	default:
		ordersAbandoned.WithLabelValues(SourceClient).Inc()
		s.publish(ctx, entities.EventOrderAbandoned, order, SourceClient)
	}
	return false, nil
}

// HandleCheckoutNotification authenticates a gateway notification and, for a
// completed checkout, confirms the referenced order. Unknown orders and other
// event types are acknowledged without changes.
func (s *orderService) HandleCheckoutNotification(ctx context.Context, payload []byte, signature string) error {
	event, err := s.checkout.ParseEvent(payload, signature)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidSignature) {
			signatureFailures.WithLabelValues(string(entities.PaymentStripe)).Inc()
		}
		return err
	}

	logger := s.logger.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	if event.Type != entities.EventCheckoutCompleted {
		notificationsIgnored.WithLabelValues("event_type").Inc()
		logger.Debug("notification ignored")
		return nil
	}
	if event.OrderID == "" {
		notificationsIgnored.WithLabelValues("no_order").Inc()
		logger.Warn("completed checkout without order id")
		return nil
	}

	claimed, key := s.claim(ctx, event.ID)
	if key != "" && !claimed {
		notificationsIgnored.WithLabelValues("duplicate").Inc()
		logger.Debug("duplicate notification")
		return nil
	}

	_, err = s.confirm(ctx, event.OrderID, SourceWebhook)
	if isNotFound(err) {
		notificationsIgnored.WithLabelValues("unknown_order").Inc()
		logger.Info("notification for unknown order", slog.String("order_id", event.OrderID))
		s.complete(ctx, key)
		return nil
	}
	if err != nil {
		s.release(ctx, key)
		return err
	}
	s.complete(ctx, key)
	return nil
}

// claim returns an empty key when deduplication is unavailable, in which case
// the notification is processed and MarkPaid alone keeps it idempotent.
func (s *orderService) claim(ctx context.Context, eventID string) (bool, string) {
	if s.dedup == nil || eventID == "" {
		return true, ""
	}
	key := idempotency.Key(notificationScope, eventID)
	ok, err := s.dedup.Claim(ctx, key)
	if err != nil {
		s.logger.Warn("dedup store unavailable", slog.String("event_id", eventID), slog.Any("error", err))
		return true, ""
	}
	return ok, key
}

// complete failing only shortens the dedup window to the claim TTL, MarkPaid
// still converges on a redelivery.
func (s *orderService) complete(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.dedup.Complete(ctx, key); err != nil {
		s.logger.Error("failed to complete dedup key", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *orderService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.dedup.Release(ctx, key); err != nil {
		s.logger.Error("failed to release dedup key", slog.String("key", key), slog.Any("error", err))
	}
}

// confirm marks the order paid and clears the cart in one transaction. An
// order that is already paid converges without a second cart clear.
func (s *orderService) confirm(ctx context.Context, orderID, source string) (entities.Order, error) {
	var (
		order     entities.Order
		converged bool
	)
	err := s.retry(ctx, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			o, err := s.orders.MarkPaid(ctx, orderID)
			if errors.Is(err, entities.ErrAlreadyPaid) {
				order, converged = o, true
				return nil
			}
			if err != nil {
				return err
			}
			if err := s.carts.ClearCart(ctx, o.UserID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
			order, converged = o, false
			return nil
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	if converged {
		s.logger.Debug("order already paid", slog.String("order_id", orderID), slog.String("source", source))
		return order, nil
	}

	paymentsConfirmed.WithLabelValues(source).Inc()
	s.logger.Info("order paid", slog.String("order_id", orderID), slog.String("source", source))
	s.publish(ctx, entities.EventOrderPaid, order, source)
	return order, nil
}
