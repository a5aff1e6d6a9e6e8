package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

// fakeDLQ fails the first failures writes, or every write when failures < 0.
// A never-recovering writer cancels the consumer after a few attempts.
type fakeDLQ struct {
	written  []kafka.Message
	failures int
	attempts int
	cancel   context.CancelFunc
}

func (w *fakeDLQ) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.attempts++
	if w.failures < 0 {
		if w.attempts >= 3 {
			w.cancel()
		}
		return errors.New("broker down")
	}
	if w.attempts <= w.failures {
		return errors.New("broker down")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error { return nil }

func newTestKafkaHandler(svc NotificationHandler, reader *fakeReader, dlq *fakeDLQ) *kafkaHandler {
	return &kafkaHandler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		reader: reader,
		dlq:    dlq,
		dlqRetry: utils.RetryConfig{
			MaxAttempts:  2,
			InitialDelay: time.Millisecond,
		},
		svc: svc,
	}
}

func notification(offset int64, payload, signature string) kafka.Message {
	m := kafka.Message{Topic: "payment-notifications", Offset: offset, Value: []byte(payload)}
	if signature != "" {
		m.Headers = []kafka.Header{{Key: "Stripe-Signature", Value: []byte(signature)}}
	}
	return m
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		messages     []kafka.Message
		dlqFailures  int
		mockBehavior func(svc *mocks.MockNotificationHandler)
		wantDLQ      []int64
		wantCommit   []int64
	}{
		{
			name:     "processed",
			messages: []kafka.Message{notification(1, `{"id":"evt_1"}`, "t=1,v1=abc")},
			mockBehavior: func(svc *mocks.MockNotificationHandler) {
				svc.EXPECT().HandleCheckoutNotification(mock.Anything, []byte(`{"id":"evt_1"}`), "t=1,v1=abc").
					Return(nil).Once()
			},
			wantCommit: []int64{1},
		},
		{
			name:     "failed goes to dlq",
			messages: []kafka.Message{notification(2, `{"id":"evt_2"}`, "bad")},
			mockBehavior: func(svc *mocks.MockNotificationHandler) {
				svc.EXPECT().HandleCheckoutNotification(mock.Anything, mock.Anything, "bad").
					Return(errors.New("signature verification failed")).Once()
			},
			wantDLQ:    []int64{2},
			wantCommit: []int64{2},
		},
		{
			name:         "empty payload goes to dlq",
			messages:     []kafka.Message{notification(3, "", "")},
			mockBehavior: func(svc *mocks.MockNotificationHandler) {},
			wantDLQ:      []int64{3},
			wantCommit:   []int64{3},
		},
		{
			name:        "dlq recovers before commit",
			messages:    []kafka.Message{notification(4, `{"id":"evt_4"}`, "")},
			dlqFailures: 3,
			mockBehavior: func(svc *mocks.MockNotificationHandler) {
				svc.EXPECT().HandleCheckoutNotification(mock.Anything, mock.Anything, "").
					Return(errors.New("db error")).Once()
			},
			wantDLQ:    []int64{4},
			wantCommit: []int64{4},
		},
		{
			name: "dlq unavailable stops consuming without commit",
			messages: []kafka.Message{
				notification(7, `{"id":"evt_7"}`, ""),
				notification(8, `{"id":"evt_8"}`, ""),
			},
			dlqFailures: -1,
			mockBehavior: func(svc *mocks.MockNotificationHandler) {
				// evt_8 не читается, пока evt_7 не попал в DLQ
				svc.EXPECT().HandleCheckoutNotification(mock.Anything, []byte(`{"id":"evt_7"}`), "").
					Return(errors.New("db error")).Once()
			},
		},
		{
			name: "missing signature header is passed through empty",
			messages: []kafka.Message{
				notification(5, `{"id":"evt_5"}`, ""),
				notification(6, `{"id":"evt_6"}`, "t=2,v1=def"),
			},
			mockBehavior: func(svc *mocks.MockNotificationHandler) {
				svc.EXPECT().HandleCheckoutNotification(mock.Anything, []byte(`{"id":"evt_5"}`), "").Return(nil).Once()
				svc.EXPECT().HandleCheckoutNotification(mock.Anything, []byte(`{"id":"evt_6"}`), "t=2,v1=def").Return(nil).Once()
			},
			wantCommit: []int64{5, 6},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockNotificationHandler(t)
			tc.mockBehavior(svc)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			reader := &fakeReader{messages: tc.messages, cancel: cancel}
			dlq := &fakeDLQ{failures: tc.dlqFailures, cancel: cancel}
			h := newTestKafkaHandler(svc, reader, dlq)

			h.Consume(ctx)

			var dlqOffsets []int64
			for _, m := range dlq.written {
				assert.Equal(t, "payment-notifications-dlq", m.Topic)
				dlqOffsets = append(dlqOffsets, m.Offset)
			}
			assert.Equal(t, tc.wantDLQ, dlqOffsets)

			var committed []int64
			for _, m := range reader.committed {
				committed = append(committed, m.Offset)
			}
			assert.Equal(t, tc.wantCommit, committed)
		})
	}
}
