package gateway_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const webhookSecret = "whsec_test"

func newStripeClient(t *testing.T, handler http.HandlerFunc) *client.API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return client.New("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestStripe_CreateCheckoutSession(t *testing.T) {
	var form url.Values
	sc := newStripeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		form, err = url.ParseQuery(string(body))
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`)
	})

	gw := gateway.NewStripe(slog.New(slog.NewTextHandler(io.Discard, nil)), sc.CheckoutSessions, gateway.StripeOptions{WebhookSecret: webhookSecret})

	session, err := gw.CreateCheckoutSession(t.Context(), entities.CheckoutRequest{
		OrderID: "order-1",
		Items: []entities.Item{
			{Name: "Shirt", Price: decimal.NewFromInt(50), Quantity: 1},
			{Name: "Socks", Price: decimal.RequireFromString("24.5"), Quantity: 2},
		},
		Currency:       "usd",
		DeliveryCharge: decimal.NewFromInt(10),
		SuccessURL:     "https://shop.test/verify?success=true&orderId=order-1",
		CancelURL:      "https://shop.test/verify?success=false&orderId=order-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)

	assert.Equal(t, "order-1", form.Get("metadata[orderId]"))
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "5000", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2450", form.Get("line_items[1][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[1][quantity]"))
	assert.Equal(t, "Delivery Charges", form.Get("line_items[2][price_data][product_data][name]"))
	assert.Equal(t, "1000", form.Get("line_items[2][price_data][unit_amount]"))
	assert.Equal(t, "https://shop.test/verify?success=false&orderId=order-1", form.Get("cancel_url"))
}

func TestStripe_CreateCheckoutSession_GatewayError(t *testing.T) {
	sc := newStripeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"Invalid currency"}}`)
	})

	gw := gateway.NewStripe(slog.New(slog.NewTextHandler(io.Discard, nil)), sc.CheckoutSessions, gateway.StripeOptions{WebhookSecret: webhookSecret})

	_, err := gw.CreateCheckoutSession(t.Context(), entities.CheckoutRequest{
		OrderID:  "order-1",
		Items:    []entities.Item{{Name: "Shirt", Price: decimal.NewFromInt(1), Quantity: 1}},
		Currency: "xxx",
	})

	var gwErr *entities.GatewayError
	require.ErrorAs(t, err, &gwErr)
	var stripeErr *stripe.Error
	assert.ErrorAs(t, err, &stripeErr)
}

func TestStripe_ParseEvent(t *testing.T) {
	completed := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","metadata":{"orderId":"order-1"}}}}`)
	other := []byte(`{"id":"evt_2","object":"event","type":"payment_intent.created","data":{"object":{"id":"pi_1","object":"payment_intent"}}}`)
	noData := []byte(`{"id":"evt_3","object":"event","type":"checkout.session.completed"}`)

	testCases := []struct {
		name      string
		opts      gateway.StripeOptions
		payload   []byte
		signature string
		want      entities.CheckoutEvent
		wantErr   error
	}{
		{
			name:      "valid signature",
			opts:      gateway.StripeOptions{WebhookSecret: webhookSecret},
			payload:   completed,
			signature: signPayload(completed, webhookSecret, time.Now()),
			want:      entities.CheckoutEvent{ID: "evt_1", Type: entities.EventCheckoutCompleted, OrderID: "order-1"},
		},
		{
			name:      "other event type",
			opts:      gateway.StripeOptions{WebhookSecret: webhookSecret},
			payload:   other,
			signature: signPayload(other, webhookSecret, time.Now()),
			want:      entities.CheckoutEvent{ID: "evt_2", Type: "payment_intent.created"},
		},
		{
			name:      "wrong secret",
			opts:      gateway.StripeOptions{WebhookSecret: webhookSecret},
			payload:   completed,
			signature: signPayload(completed, "whsec_other", time.Now()),
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "missing header",
			opts:      gateway.StripeOptions{WebhookSecret: webhookSecret},
			payload:   completed,
			signature: "",
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "stale timestamp",
			opts:      gateway.StripeOptions{WebhookSecret: webhookSecret},
			payload:   completed,
			signature: signPayload(completed, webhookSecret, time.Now().Add(-time.Hour)),
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "signed but without data",
			opts:      gateway.StripeOptions{WebhookSecret: webhookSecret},
			payload:   noData,
			signature: signPayload(noData, webhookSecret, time.Now()),
			wantErr:   entities.ErrMalformedEvent,
		},
		{
			name:    "no secret and unsigned not allowed",
			opts:    gateway.StripeOptions{},
			payload: completed,
			wantErr: entities.ErrInvalidSignature,
		},
		{
			name:    "unsigned allowed",
			opts:    gateway.StripeOptions{AllowUnsignedWebhooks: true},
			payload: completed,
			want:    entities.CheckoutEvent{ID: "evt_1", Type: entities.EventCheckoutCompleted, OrderID: "order-1"},
		},
		{
			name:    "unsigned garbage",
			opts:    gateway.StripeOptions{AllowUnsignedWebhooks: true},
			payload: []byte(`not json`),
			wantErr: entities.ErrMalformedEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := gateway.NewStripe(slog.New(slog.NewTextHandler(io.Discard, nil)), nil, tc.opts)

			event, err := gw.ParseEvent(tc.payload, tc.signature)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, event)
		})
	}
}
