package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
)

type ExpiredOrderDeleter interface {
	DeleteExpired(ctx context.Context) ([]entities.Order, error)
}

// ExpirySweeper physically removes unpaid checkout orders whose expiry has
// passed. Reads already hide them, so the interval only bounds table growth.
type ExpirySweeper struct {
	logger   *slog.Logger
	orders   ExpiredOrderDeleter
	events   EventPublisher
	interval time.Duration
	clock    func() time.Time
}

func NewExpirySweeper(logger *slog.Logger, orders ExpiredOrderDeleter, events EventPublisher, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		logger:   logger.With(slog.String("service", "expiry")),
		orders:   orders,
		events:   events,
		interval: interval,
		clock:    time.Now,
	}
}

// Start sweeps on every tick until ctx is done.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("failed to sweep expired orders", slog.Any("error", err))
			}
		}
	}
}

func (s *ExpirySweeper) Sweep(ctx context.Context) (int, error) {
	expired, err := s.orders.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ordersAbandoned.WithLabelValues(SourceExpiry).Add(float64(len(expired)))
	s.logger.Info("expired orders removed", slog.Int("count", len(expired)))

	if s.events == nil {
		return len(expired), nil
	}
	now := s.clock().UTC()
	for _, o := range expired {
		if err := s.events.Publish(ctx, entities.NewOrderEvent(entities.EventOrderAbandoned, o, SourceExpiry, now)); err != nil {
			s.logger.Error("failed to publish order event", slog.String("order_id", o.ID), slog.Any("error", err))
		}
	}
	return len(expired), nil
}
