package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxWebhookBody ограничивает тело webhook, как это делает Stripe SDK
const maxWebhookBody = 65536

type OrderService interface {
	PlaceCashOrder(ctx context.Context, req entities.PlaceOrder) (entities.Order, error)
	PlaceCheckoutOrder(ctx context.Context, req entities.PlaceOrder, origin string) (string, error)
	VerifyCheckout(ctx context.Context, orderID, userID string, success bool) (bool, error)
	HandleCheckoutNotification(ctx context.Context, payload []byte, signature string) error
	CreateGatewayOrder(ctx context.Context, amount decimal.Decimal) (entities.GatewayHandle, error)
	VerifyGatewayPayment(ctx context.Context, p entities.SignedPayment) (entities.Order, error)
	UserOrders(ctx context.Context, userID string) ([]entities.Order, error)
	AllOrders(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/order", func(r chi.Router) {
		r.Post("/place", instrument("place", h.PlaceOrder))
		r.Post("/stripe", instrument("stripe", h.PlaceOrderStripe))
		r.Post("/verifyStripe", instrument("verify_stripe", h.VerifyStripe))
		r.Post("/webhook", instrument("webhook", h.StripeWebhook))
		r.Post("/razorpay", instrument("razorpay", h.PlaceOrderRazorpay))
		r.Post("/verifyRazorpay", instrument("verify_razorpay", h.VerifyRazorpay))
		r.Post("/userorders", instrument("user_orders", h.UserOrders))
		r.Post("/list", instrument("list", h.AllOrders))
		r.Post("/status", instrument("status", h.UpdateStatus))
	})
}

// PlaceOrder оформляет заказ с оплатой при получении.
// @Summary      Заказ с оплатой при получении
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      PlaceOrderRequest  true  "Данные заказа"
// @Success      200    {object}  PlaceOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/place [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodePlaceOrder(w, r)
	if !ok {
		return
	}

	order, err := h.svc.PlaceCashOrder(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to place order")
		return
	}

	utils.WriteJSON(w, PlaceOrderResponse{Success: true, Message: "Order Placed", OrderID: order.ID}, http.StatusOK)
}

// PlaceOrderStripe создаёт заказ и сессию оплаты Stripe.
// @Summary      Заказ с оплатой через Stripe Checkout
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Origin header    string             true  "Адрес витрины для редиректа"
// @Param        order  body      PlaceOrderRequest  true  "Данные заказа"
// @Success      200    {object}  CheckoutResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502    {object}  utils.ErrorResponse "Ошибка платёжного шлюза"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/stripe [post]
func (h *HTTPHandler) PlaceOrderStripe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodePlaceOrder(w, r)
	if !ok {
		return
	}

	url, err := h.svc.PlaceCheckoutOrder(ctx, req, r.Header.Get("Origin"))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to place checkout order")
		return
	}

	utils.WriteJSON(w, CheckoutResponse{Success: true, SessionURL: url}, http.StatusOK)
}

// VerifyStripe применяет результат оплаты после возврата клиента.
// @Summary      Подтверждение оплаты Stripe клиентом
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        verify  body      VerifyStripeRequest  true  "Результат оплаты"
// @Success      200     {object}  SuccessResponse
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500     {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/verifyStripe [post]
func (h *HTTPHandler) VerifyStripe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyStripeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	success, _ := strconv.ParseBool(req.Success)
	paid, err := h.svc.VerifyCheckout(ctx, req.OrderID, req.UserID, success)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to verify checkout")
		return
	}

	utils.WriteJSON(w, SuccessResponse{Success: paid}, http.StatusOK)
}

// StripeWebhook принимает уведомления Stripe.
// @Summary      Webhook Stripe
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Подпись Stripe"
// @Success      200               {object}  WebhookResponse
// @Failure      400               {object}  utils.ErrorResponse "Неверная подпись или тело"
// @Failure      500               {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/webhook [post]
func (h *HTTPHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteError(w, "webhook error: "+err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.HandleCheckoutNotification(ctx, payload, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, entities.ErrInvalidSignature) || errors.Is(err, entities.ErrMalformedEvent) {
		h.logger.WarnContext(ctx, "webhook rejected", slog.Any("error", err))
		utils.WriteError(w, "webhook error: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		// 5xx, чтобы Stripe повторил доставку
		h.logger.ErrorContext(ctx, "failed to process webhook", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, WebhookResponse{Received: true}, http.StatusOK)
}

// PlaceOrderRazorpay создаёт заказ Razorpay без сохранения локального заказа.
// @Summary      Заказ Razorpay
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      PlaceOrderRequest  true  "Данные заказа"
// @Success      200    {object}  GatewayOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502    {object}  utils.ErrorResponse "Ошибка платёжного шлюза"
// @Router       /api/order/razorpay [post]
func (h *HTTPHandler) PlaceOrderRazorpay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodePlaceOrder(w, r)
	if !ok {
		return
	}

	handle, err := h.svc.CreateGatewayOrder(ctx, req.Amount)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create gateway order")
		return
	}

	utils.WriteJSON(w, GatewayOrderResponse{Success: true, Order: handle}, http.StatusOK)
}

// VerifyRazorpay проверяет подпись платежа и сохраняет оплаченный заказ.
// @Summary      Подтверждение оплаты Razorpay
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payment  body      VerifyRazorpayRequest  true  "Подписанный платёж"
// @Success      200      {object}  VerifyPaymentResponse
// @Failure      400      {object}  utils.ErrorResponse "Неверная подпись или данные"
// @Failure      500      {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/verifyRazorpay [post]
func (h *HTTPHandler) VerifyRazorpay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyRazorpayRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	placed, err := h.svc.VerifyGatewayPayment(ctx, entities.SignedPayment{
		RemoteOrderID:   req.RazorpayOrderID,
		RemotePaymentID: req.RazorpayPaymentID,
		Signature:       req.RazorpaySignature,
		Order:           req.OrderData.Raw(),
	})
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to verify payment")
		return
	}

	utils.WriteJSON(w, VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified and order placed",
		OrderID: placed.ID,
	}, http.StatusOK)
}

// UserOrders возвращает историю заказов пользователя.
// @Summary      Заказы пользователя
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        user  body      UserOrdersRequest  true  "Пользователь"
// @Success      200   {object}  OrdersResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/userorders [post]
func (h *HTTPHandler) UserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UserOrdersRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	orders, err := h.svc.UserOrders(ctx, req.UserID)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get user orders")
		return
	}

	utils.WriteJSON(w, OrdersResponse{Success: true, Orders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

// AllOrders возвращает все заказы для админки.
// @Summary      Все заказы
// @Tags         admin
// @Produce      json
// @Success      200  {object}  OrdersResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/list [post]
func (h *HTTPHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.AllOrders(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrdersResponse{Success: true, Orders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

// UpdateStatus меняет статус заказа.
// @Summary      Обновить статус заказа
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        status  body      UpdateStatusRequest  true  "Новый статус"
// @Success      200     {object}  MessageResponse
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500     {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/order/status [post]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.UpdateStatus(ctx, req.OrderID, req.Status); err != nil {
		h.writeServiceError(ctx, w, err, "failed to update status")
		return
	}

	utils.WriteJSON(w, MessageResponse{Success: true, Message: "Status Updated"}, http.StatusOK)
}

func (h *HTTPHandler) decodePlaceOrder(w http.ResponseWriter, r *http.Request) (entities.PlaceOrder, bool) {
	var req PlaceOrderRequest
	if !h.decodeAndValidate(w, r, &req) {
		return entities.PlaceOrder{}, false
	}

	order, err := req.ToEntity()
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return entities.PlaceOrder{}, false
	}
	return order, true
}

func (h *HTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var gwErr *entities.GatewayError

	switch {
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidSignature):
		utils.WriteError(w, entities.ErrInvalidSignature.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.As(err, &gwErr):
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "payment gateway error", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderRequestsInProgress.Inc()
		defer orderRequestsInProgress.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next(ww, r)

		orderRequestTotal.WithLabelValues(operation, strconv.Itoa(ww.Status())).Inc()
		orderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
