package broker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := entities.NewOrderEvent(entities.EventOrderPaid, entities.Order{
		ID:            "order-1",
		UserID:        "user-1",
		PaymentMethod: entities.PaymentStripe,
		Amount:        decimal.NewFromInt(109),
		Status:        entities.DefaultStatus,
	}, "webhook", at)

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "order-1", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "order.paid", string(msg.Headers[0].Value))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "order.paid", got["type"])
	assert.Equal(t, "user-1", got["user_id"])
	assert.Equal(t, "Stripe", got["payment_method"])
	assert.Equal(t, "109", got["amount"])
	assert.Equal(t, "webhook", got["source"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_WriteError(t *testing.T) {
	writeErr := errors.New("leader not available")
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeWriter{err: writeErr})

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.EventOrderPlaced, OrderID: "order-1"})
	assert.ErrorIs(t, err, writeErr)
}
