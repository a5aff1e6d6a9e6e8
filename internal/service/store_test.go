package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/service"
	txMocks "github.com/SergeyBogomolovv/storefront-order-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memStore повторяет семантику postgres-репозитория: истекшие заказы не видны,
// MarkPaid срабатывает только для неоплаченных.
type memStore struct {
	mu         sync.Mutex
	clock      *testClock
	orders     map[string]entities.Order
	cartClears map[string]int
}

func newMemStore(clock *testClock) *memStore {
	return &memStore{
		clock:      clock,
		orders:     make(map[string]entities.Order),
		cartClears: make(map[string]int),
	}
}

func (m *memStore) visible(o entities.Order) bool {
	return o.ExpiresAt == nil || o.ExpiresAt.After(m.clock.Now())
}

func (m *memStore) CreateOrder(_ context.Context, o entities.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.ID]; ok {
		return o.ID, entities.ErrOrderExists
	}
	m.orders[o.ID] = o
	return o.ID, nil
}

func (m *memStore) GetOrder(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || !m.visible(o) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (m *memStore) UpdateOrder(_ context.Context, id string, u entities.OrderUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || !m.visible(o) {
		return entities.ErrOrderNotFound
	}
	if u.Payment != nil {
		o.Payment = *u.Payment
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.ClearExpiry {
		o.ExpiresAt = nil
	}
	m.orders[id] = o
	return nil
}

func (m *memStore) MarkPaid(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || !m.visible(o) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if o.Payment {
		return o, entities.ErrAlreadyPaid
	}
	o.Payment = true
	o.ExpiresAt = nil
	m.orders[id] = o
	return o, nil
}

func (m *memStore) DeleteOrder(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Payment {
		return entities.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *memStore) OrdersByUser(_ context.Context, userID string, filter entities.OrderFilter) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entities.Order
	for _, o := range m.orders {
		if o.UserID != userID || !m.visible(o) {
			continue
		}
		if !filter.IncludeUnsettled && !o.Settled() {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *memStore) ListOrders(_ context.Context, limit, offset int) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entities.Order
	for _, o := range m.orders {
		if m.visible(o) {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *memStore) DeleteExpired(_ context.Context) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted []entities.Order
	for id, o := range m.orders {
		if !o.Payment && o.ExpiresAt != nil && !o.ExpiresAt.After(m.clock.Now()) {
			deleted = append(deleted, o)
			delete(m.orders, id)
		}
	}
	return deleted, nil
}

func (m *memStore) ClearCart(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cartClears[userID]++
	return nil
}

func (m *memStore) clears(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cartClears[userID]
}

func (m *memStore) raw(id string) (entities.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	return o, ok
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.OrderEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e entities.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []entities.OrderEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	var types []entities.OrderEventType
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).
		Maybe()
	return tx
}

func testConfig(clock *testClock) service.Config {
	return service.Config{
		Currency:         "usd",
		DeliveryCharge:   decimal.NewFromInt(10),
		CheckoutOrderTTL: 24 * time.Hour,
		Clock:            clock.Now,
	}
}

func placeOrder(userID string) entities.PlaceOrder {
	return entities.PlaceOrder{
		UserID: userID,
		Items: []entities.Item{
			{Name: "Shirt", Price: decimal.NewFromInt(50), Size: "M", Quantity: 1},
			{Name: "Socks", Price: decimal.RequireFromString("24.5"), Size: "L", Quantity: 2},
		},
		Amount:  decimal.NewFromInt(109),
		Address: entities.Address{"city": "Pune"},
	}
}

// rawOrder is placeOrder as the payment widget sends it.
func rawOrder(userID string) entities.RawOrder {
	return entities.RawOrder{
		UserID: userID,
		Items: []json.RawMessage{
			json.RawMessage(`{"name":"Shirt","price":50,"size":"M","quantity":1}`),
			json.RawMessage(`{"name":"Socks","price":24.5,"size":"L","quantity":2}`),
		},
		Amount:  decimal.NewFromInt(109),
		Address: entities.Address{"city": "Pune"},
	}
}
