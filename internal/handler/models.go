package handler

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest данные оформления заказа
type PlaceOrderRequest struct {
	UserID  string            `json:"userId" validate:"required"`
	Items   []json.RawMessage `json:"items" validate:"required,min=1" swaggertype:"array,object"`
	Amount  decimal.Decimal   `json:"amount" swaggertype:"string" example:"109"`
	Address map[string]any    `json:"address" validate:"required"`
}

// VerifyStripeRequest результат оплаты, который сообщает клиент после редиректа
type VerifyStripeRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Success string `json:"success" validate:"required,oneof=true false"`
	UserID  string `json:"userId" validate:"required"`
}

// VerifyRazorpayRequest подтверждение платежа от виджета Razorpay.
// orderData проверяется сервисом только после подписи
type VerifyRazorpayRequest struct {
	RazorpayOrderID   string            `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string            `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string            `json:"razorpaySignature" validate:"required"`
	OrderData         PlaceOrderRequest `json:"orderData" validate:"-"`
}

type UserOrdersRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type UpdateStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// Order представляет заказ
type Order struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	Items         []json.RawMessage `json:"items" swaggertype:"array,object"`
	Address       map[string]any    `json:"address"`
	Amount        decimal.Decimal   `json:"amount" swaggertype:"string" example:"109"`
	PaymentMethod string            `json:"paymentMethod"`
	Payment       bool              `json:"payment"`
	Status        string            `json:"status"`
	Date          time.Time         `json:"date"`
}

type PlaceOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type CheckoutResponse struct {
	Success    bool   `json:"success"`
	SessionURL string `json:"session_url"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type GatewayOrderResponse struct {
	Success bool                   `json:"success"`
	Order   entities.GatewayHandle `json:"order"`
}

type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r PlaceOrderRequest) ToEntity() (entities.PlaceOrder, error) {
	return r.Raw().Parse()
}

func (r PlaceOrderRequest) Raw() entities.RawOrder {
	return entities.RawOrder{
		UserID:  r.UserID,
		Items:   r.Items,
		Amount:  r.Amount,
		Address: entities.Address(r.Address),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]json.RawMessage, 0, len(o.Items))
	for _, item := range o.Items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		items = append(items, raw)
	}

	return Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		Address:       o.Address,
		Amount:        o.Amount,
		PaymentMethod: string(o.PaymentMethod),
		Payment:       o.Payment,
		Status:        o.Status,
		Date:          o.Date,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}
