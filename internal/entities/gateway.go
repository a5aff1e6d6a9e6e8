package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GatewayHandle is the remote order created by the order-signature gateway.
// It is relayed to the client and never persisted.
type GatewayHandle struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`
}

type GatewayOrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
}

type CheckoutRequest struct {
	OrderID        string
	Items          []Item
	Currency       string
	DeliveryCharge decimal.Decimal
	SuccessURL     string
	CancelURL      string
}

type CheckoutSession struct {
	ID  string
	URL string
}

const EventCheckoutCompleted = "checkout.session.completed"

// CheckoutEvent is an inbound notification from the redirect-checkout gateway.
type CheckoutEvent struct {
	ID      string
	Type    string
	OrderID string
}

// SignedPayment is the client's proof that an order-signature payment succeeded.
// Order stays raw until the signature has been checked.
type SignedPayment struct {
	RemoteOrderID   string
	RemotePaymentID string
	Signature       string
	Order           RawOrder
}

type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

type OrderEventType string

const (
	EventOrderPlaced        OrderEventType = "order.placed"
	EventOrderPaid          OrderEventType = "order.paid"
	EventOrderAbandoned     OrderEventType = "order.abandoned"
	EventOrderStatusUpdated OrderEventType = "order.status_updated"
)

// OrderEvent is published after every order state change.
type OrderEvent struct {
	Type          OrderEventType  `json:"type"`
	OrderID       string          `json:"order_id"`
	UserID        string          `json:"user_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status,omitempty"`
	Source        string          `json:"source"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewOrderEvent(t OrderEventType, o Order, source string, at time.Time) OrderEvent {
	return OrderEvent{
		Type:          t,
		OrderID:       o.ID,
		UserID:        o.UserID,
		PaymentMethod: o.PaymentMethod,
		Amount:        o.Amount,
		Status:        o.Status,
		Source:        source,
		OccurredAt:    at,
	}
}
