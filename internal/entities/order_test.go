package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem_KeepsSnapshot(t *testing.T) {
	raw := json.RawMessage(`{"_id":"p1","name":"Shirt","price":25.5,"image":["a.png"],"size":"M","quantity":2}`)

	item, err := entities.ParseItem(raw)
	require.NoError(t, err)

	assert.Equal(t, "Shirt", item.Name)
	assert.True(t, decimal.RequireFromString("25.5").Equal(item.Price))
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, 2, item.Quantity)

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestParseItem_Invalid(t *testing.T) {
	_, err := entities.ParseItem(json.RawMessage(`{"quantity":"two"}`))
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}

func TestRawOrder_Parse(t *testing.T) {
	raw := entities.RawOrder{
		UserID:  "user-1",
		Items:   []json.RawMessage{json.RawMessage(`{"name":"Shirt","price":50,"size":"M","quantity":1}`)},
		Amount:  decimal.NewFromInt(60),
		Address: entities.Address{"city": "Pune"},
	}

	order, err := raw.Parse()
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Shirt", order.Items[0].Name)
	assert.NoError(t, order.Validate())

	raw.Items = append(raw.Items, json.RawMessage(`"oops"`))
	_, err = raw.Parse()
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	assert.Contains(t, err.Error(), "item 1")
}

func TestOrder_Settled(t *testing.T) {
	testCases := []struct {
		name  string
		order entities.Order
		want  bool
	}{
		{name: "cod unpaid", order: entities.Order{PaymentMethod: entities.PaymentCOD}, want: true},
		{name: "stripe unpaid", order: entities.Order{PaymentMethod: entities.PaymentStripe}, want: false},
		{name: "stripe paid", order: entities.Order{PaymentMethod: entities.PaymentStripe, Payment: true}, want: true},
		{name: "razorpay paid", order: entities.Order{PaymentMethod: entities.PaymentRazorpay, Payment: true}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.order.Settled())
		})
	}
}

func TestPlaceOrder_Validate(t *testing.T) {
	item := entities.Item{Name: "Shirt", Price: decimal.NewFromInt(10), Quantity: 1}

	testCases := []struct {
		name    string
		in      entities.PlaceOrder
		wantErr bool
	}{
		{
			name: "valid",
			in:   entities.PlaceOrder{UserID: "u1", Items: []entities.Item{item}, Amount: decimal.NewFromInt(20)},
		},
		{
			name:    "missing user",
			in:      entities.PlaceOrder{Items: []entities.Item{item}, Amount: decimal.NewFromInt(20)},
			wantErr: true,
		},
		{
			name:    "no items",
			in:      entities.PlaceOrder{UserID: "u1", Amount: decimal.NewFromInt(20)},
			wantErr: true,
		},
		{
			name:    "negative amount",
			in:      entities.PlaceOrder{UserID: "u1", Items: []entities.Item{item}, Amount: decimal.NewFromInt(-1)},
			wantErr: true,
		},
		{
			name: "zero quantity",
			in: entities.PlaceOrder{
				UserID: "u1",
				Items:  []entities.Item{{Name: "Shirt", Price: decimal.NewFromInt(10)}},
				Amount: decimal.NewFromInt(20),
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(10900), entities.MinorUnits(decimal.NewFromInt(109)))
	assert.Equal(t, int64(1999), entities.MinorUnits(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(1), entities.MinorUnits(decimal.RequireFromString("0.005")))
}
