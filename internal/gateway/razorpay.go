package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	rzputils "github.com/razorpay/razorpay-go/utils"
)

// OrderCreator is satisfied by (*razorpay.Client).Order.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Razorpay struct {
	logger    *slog.Logger
	orders    OrderCreator
	keySecret string
}

func NewRazorpay(logger *slog.Logger, orders OrderCreator, keySecret string) *Razorpay {
	return &Razorpay{
		logger:    logger.With(slog.String("gateway", "razorpay")),
		orders:    orders,
		keySecret: keySecret,
	}
}

func (r *Razorpay) CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayHandle, error) {
	data := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}

	// клиент razorpay-go не принимает context, проверяем отмену сами
	if err := ctx.Err(); err != nil {
		return entities.GatewayHandle{}, &entities.GatewayError{Op: "create order", Err: err}
	}

	raw, err := r.orders.Create(data, nil)
	if err != nil {
		return entities.GatewayHandle{}, &entities.GatewayError{Op: "create order", Err: err}
	}

	handle, err := decodeHandle(raw)
	if err != nil {
		return entities.GatewayHandle{}, &entities.GatewayError{Op: "decode order", Err: err}
	}

	r.logger.DebugContext(ctx, "gateway order created",
		slog.String("remote_order_id", handle.ID),
		slog.String("receipt", handle.Receipt),
	)
	return handle, nil
}

func decodeHandle(raw map[string]interface{}) (entities.GatewayHandle, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return entities.GatewayHandle{}, err
	}
	var handle entities.GatewayHandle
	if err := json.Unmarshal(b, &handle); err != nil {
		return entities.GatewayHandle{}, err
	}
	if handle.ID == "" {
		return entities.GatewayHandle{}, fmt.Errorf("gateway response has no order id")
	}
	return handle, nil
}

// VerifyPaymentSignature checks hex(HMAC-SHA256(secret, orderID|paymentID))
// the way the checkout widget signs a successful payment.
func (r *Razorpay) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	return rzputils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, r.keySecret)
}
