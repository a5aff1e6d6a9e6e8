package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	Items         []byte          `db:"items"`
	Address       []byte          `db:"address"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Payment       bool            `db:"payment"`
	Status        string          `db:"status"`
	Date          time.Time       `db:"date"`
	ExpiresAt     sql.NullTime    `db:"expires_at"`
}

var orderColumns = []string{
	"id", "user_id", "items", "address", "amount",
	"payment_method", "payment", "status", "date", "expires_at",
}

func OrderFromEntity(o entities.Order) (Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, fmt.Errorf("failed to marshal items: %w", err)
	}

	address := o.Address
	if address == nil {
		address = entities.Address{}
	}
	addr, err := json.Marshal(address)
	if err != nil {
		return Order{}, fmt.Errorf("failed to marshal address: %w", err)
	}

	return Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		Address:       addr,
		Amount:        o.Amount,
		PaymentMethod: string(o.PaymentMethod),
		Payment:       o.Payment,
		Status:        o.Status,
		Date:          o.Date,
		ExpiresAt:     nullTime(o.ExpiresAt),
	}, nil
}

func OrderToEntity(o Order) (entities.Order, error) {
	var items []entities.Item
	if err := json.Unmarshal(o.Items, &items); err != nil {
		return entities.Order{}, fmt.Errorf("failed to unmarshal items of order %s: %w", o.ID, err)
	}

	var address entities.Address
	if err := json.Unmarshal(o.Address, &address); err != nil {
		return entities.Order{}, fmt.Errorf("failed to unmarshal address of order %s: %w", o.ID, err)
	}

	return entities.Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		Address:       address,
		Amount:        o.Amount,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		Payment:       o.Payment,
		Status:        o.Status,
		Date:          o.Date,
		ExpiresAt:     nullTimeToPtr(o.ExpiresAt),
	}, nil
}

func OrdersToEntities(rows []Order) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
