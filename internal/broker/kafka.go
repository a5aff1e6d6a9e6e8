package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event_type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes order events keyed by order id, so every event of one
// order lands in the same partition.
type Publisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return newPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	})
}

func newPublisher(logger *slog.Logger, w messageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("broker", "kafka")),
		writer: w,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	// В библиотеке уже есть retry
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}

	p.logger.Debug("order event published",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
