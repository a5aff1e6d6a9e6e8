package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateGatewayOrder opens a remote order for the client-side payment widget.
// Nothing is stored until the payment is verified.
func (s *orderService) CreateGatewayOrder(ctx context.Context, amount decimal.Decimal) (entities.GatewayHandle, error) {
	if amount.IsNegative() {
		return entities.GatewayHandle{}, fmt.Errorf("%w: amount must not be negative", entities.ErrInvalidOrder)
	}

	handle, err := s.signer.CreateOrder(ctx, entities.GatewayOrderRequest{
		AmountMinor: entities.MinorUnits(amount),
		Currency:    strings.ToUpper(s.cfg.Currency),
		Receipt:     fmt.Sprintf("order_%d", s.cfg.Clock().UnixMilli()),
	})
	if err != nil {
		s.logger.Error("failed to create gateway order", slog.Any("error", err))
		return entities.GatewayHandle{}, err
	}
	return handle, nil
}

// VerifyGatewayPayment checks the payment signature and only then stores the
// order as paid, clearing the cart in the same transaction.
func (s *orderService) VerifyGatewayPayment(ctx context.Context, p entities.SignedPayment) (entities.Order, error) {
	if !s.signer.VerifyPaymentSignature(p.RemoteOrderID, p.RemotePaymentID, p.Signature) {
		signatureFailures.WithLabelValues(string(entities.PaymentRazorpay)).Inc()
		s.logger.Warn("payment signature mismatch", slog.String("remote_order_id", p.RemoteOrderID))
		return entities.Order{}, entities.ErrInvalidSignature
	}
	req, err := p.Order.Parse()
	if err != nil {
		return entities.Order{}, err
	}
	if err := req.Validate(); err != nil {
		return entities.Order{}, err
	}

	order := s.newOrder(signedOrderID(p.RemoteOrderID, p.RemotePaymentID), req, entities.PaymentRazorpay)
	order.Payment = true

	var replayed bool
	err = s.retry(ctx, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			existing, err := s.orders.GetOrder(ctx, order.ID)
			if err == nil {
				order, replayed = existing, true
				return nil
			}
			if !isNotFound(err) {
				return err
			}

			created, err := s.createOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
			if !created {
				// параллельная проверка того же платежа успела вставить заказ
				existing, err := s.orders.GetOrder(ctx, order.ID)
				if err != nil {
					return err
				}
				order, replayed = existing, true
				return nil
			}
			if err := s.carts.ClearCart(ctx, order.UserID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
			replayed = false
			return nil
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	if replayed {
		s.logger.Debug("payment already verified", slog.String("order_id", order.ID))
		return order, nil
	}

	ordersPlaced.WithLabelValues(string(entities.PaymentRazorpay)).Inc()
	paymentsConfirmed.WithLabelValues(SourceSignature).Inc()
	s.logger.Info("order paid", slog.String("order_id", order.ID), slog.String("source", SourceSignature))
	s.publish(ctx, entities.EventOrderPaid, order, SourceSignature)
	return order, nil
}

// signedOrderID derives the local id from the remote pair, so verifying the
// same payment twice yields the same order.
func signedOrderID(remoteOrderID, remotePaymentID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("razorpay:"+remoteOrderID+"|"+remotePaymentID)).String()
}
