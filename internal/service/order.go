package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	// CreateOrder не перезаписывает существующий заказ и возвращает ErrOrderExists
	CreateOrder(ctx context.Context, o entities.Order) (string, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, u entities.OrderUpdate) error
	MarkPaid(ctx context.Context, id string) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	OrdersByUser(ctx context.Context, userID string, filter entities.OrderFilter) ([]entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	DeleteExpired(ctx context.Context) ([]entities.Order, error)
}

type CartRepo interface {
	ClearCart(ctx context.Context, userID string) error
}

type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	ParseEvent(payload []byte, signature string) (entities.CheckoutEvent, error)
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayHandle, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

// Deduper держит ключ коротко, пока уведомление обрабатывается; Complete
// продлевает его только после коммита
type Deduper interface {
	Claim(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string) error
	Release(ctx context.Context, key string) error
}

type Config struct {
	Currency         string
	DeliveryCharge   decimal.Decimal
	CheckoutOrderTTL time.Duration
	// Clock defaults to time.Now
	Clock func() time.Time
}

const (
	SourceCheckout  = "checkout"
	SourceClient    = "client"
	SourceWebhook   = "webhook"
	SourceSignature = "signature"
	SourceExpiry    = "expiry"
	SourceAdmin     = "admin"
)

const adminPageSize = 1000

var storeRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	cfg       Config
	txManager trm.Manager
	orders    OrderRepo
	carts     CartRepo
	checkout  CheckoutGateway
	signer    OrderGateway
	events    EventPublisher
	dedup     Deduper
}

func NewOrderService(
	logger *slog.Logger,
	cfg Config,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartRepo,
	checkout CheckoutGateway,
	signer OrderGateway,
	events EventPublisher,
	dedup Deduper,
) *orderService {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		cfg:       cfg,
		txManager: txManager,
		orders:    orders,
		carts:     carts,
		checkout:  checkout,
		signer:    signer,
		events:    events,
		dedup:     dedup,
	}
}

// PlaceCashOrder stores a cash-on-delivery order, settled at creation, and
// clears the user's cart in the same transaction.
func (s *orderService) PlaceCashOrder(ctx context.Context, req entities.PlaceOrder) (entities.Order, error) {
	if err := req.Validate(); err != nil {
		return entities.Order{}, err
	}

	order := s.newOrder(uuid.NewString(), req, entities.PaymentCOD)

	err := s.retry(ctx, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if _, err := s.createOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
			if err := s.carts.ClearCart(ctx, order.UserID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersPlaced.WithLabelValues(string(entities.PaymentCOD)).Inc()
	s.logger.Debug("cash order placed", slog.String("order_id", order.ID), slog.String("user_id", order.UserID))
	s.publish(ctx, entities.EventOrderPlaced, order, SourceCheckout)
	return order, nil
}

// UserOrders returns the user's order history: paid orders and cash orders.
func (s *orderService) UserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidOrder)
	}

	var orders []entities.Order
	err := s.retry(ctx, func() error {
		var err error
		orders, err = s.orders.OrdersByUser(ctx, userID, entities.OrderFilter{})
		return err
	})
	return orders, err
}

func (s *orderService) AllOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	err := s.retry(ctx, func() error {
		var err error
		orders, err = s.orders.ListOrders(ctx, adminPageSize, 0)
		return err
	})
	return orders, err
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if orderID == "" || status == "" {
		return fmt.Errorf("%w: order id and status are required", entities.ErrInvalidOrder)
	}

	var order entities.Order
	err := s.retry(ctx, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.orders.UpdateOrder(ctx, orderID, entities.OrderUpdate{Status: &status}); err != nil {
				return err
			}
			var err error
			order, err = s.orders.GetOrder(ctx, orderID)
			return err
		})
	})
	if err != nil {
		return err
	}

	s.publish(ctx, entities.EventOrderStatusUpdated, order, SourceAdmin)
	return nil
}

func (s *orderService) newOrder(id string, req entities.PlaceOrder, method entities.PaymentMethod) entities.Order {
	return entities.Order{
		ID:            id,
		UserID:        req.UserID,
		Items:         req.Items,
		Address:       req.Address,
		Amount:        req.Amount,
		PaymentMethod: method,
		Status:        entities.DefaultStatus,
		Date:          s.cfg.Clock().UTC(),
	}
}

// retry повторяет операции со store, доменные ошибки не повторяются
func (s *orderService) retry(ctx context.Context, fn func() error) error {
	return utils.Retry(ctx, storeRetry, fn,
		entities.ErrOrderNotFound,
		entities.ErrAlreadyPaid,
		entities.ErrInvalidOrder,
		context.Canceled,
		context.DeadlineExceeded,
	)
}

// publish is best effort: the order state is already committed.
func (s *orderService) publish(ctx context.Context, t entities.OrderEventType, o entities.Order, source string) {
	if s.events == nil {
		return
	}
	event := entities.NewOrderEvent(t, o, source, s.cfg.Clock().UTC())
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", string(t)),
			slog.String("order_id", o.ID),
			slog.Any("error", err),
		)
	}
}

// createOrder reports false when the id is already stored, which happens when
// an insert is retried after an ambiguous failure or replayed concurrently.
func (s *orderService) createOrder(ctx context.Context, o entities.Order) (bool, error) {
	_, err := s.orders.CreateOrder(ctx, o)
	if errors.Is(err, entities.ErrOrderExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, entities.ErrOrderNotFound)
}
