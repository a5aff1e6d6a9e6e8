package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"

	"github.com/segmentio/kafka-go"
)

const signatureHeader = "Stripe-Signature"

type NotificationHandler interface {
	HandleCheckoutNotification(ctx context.Context, payload []byte, signature string) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var dlqRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2,
}

type kafkaHandler struct {
	dlq      messageWriter
	dlqRetry utils.RetryConfig
	reader   messageReader
	logger   *slog.Logger
	svc      NotificationHandler
}

// NewKafkaHandler consumes gateway notifications relayed through Kafka, with
// the signature header carried alongside the raw payload.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc NotificationHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.NotificationsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		dlqRetry: dlqRetry,
		svc:      svc,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		// В операции подтверждения уже есть retry
		if err := h.process(ctx, m); err != nil {
			h.logger.Error("failed to handle message",
				slog.Int64("offset", m.Offset),
				slog.Any("error", err),
			)

			// без записи в DLQ offset не коммитится, иначе сообщение потеряется
			if !h.deadLetter(ctx, m) {
				return
			}
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) error {
	notificationsInProgress.Inc()
	defer notificationsInProgress.Dec()

	start := time.Now()
	defer func() {
		notificationProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handleNotification(ctx, m); err != nil {
		notificationsFailed.Inc()
		return err
	}
	notificationsProcessed.Inc()
	return nil
}

func (h *kafkaHandler) handleNotification(ctx context.Context, m kafka.Message) error {
	if len(m.Value) == 0 {
		return fmt.Errorf("empty notification payload")
	}
	return h.svc.HandleCheckoutNotification(ctx, m.Value, headerValue(m, signatureHeader))
}

func headerValue(m kafka.Message, key string) string {
	for _, hdr := range m.Headers {
		if hdr.Key == key {
			return string(hdr.Value)
		}
	}
	return ""
}

// deadLetter blocks until the DLQ accepts m and reports false only when ctx is
// done first.
func (h *kafkaHandler) deadLetter(ctx context.Context, m kafka.Message) bool {
	for {
		err := utils.Retry(ctx, h.dlqRetry, func() error {
			return h.WriteToDLQ(ctx, m)
		})
		if err == nil {
			notificationsDLQ.Inc()
			return true
		}
		h.logger.Error("failed to write message to DLQ",
			slog.Int64("offset", m.Offset),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			return false
		}
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
