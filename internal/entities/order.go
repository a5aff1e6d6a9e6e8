package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCOD      PaymentMethod = "COD"
	PaymentStripe   PaymentMethod = "Stripe"
	PaymentRazorpay PaymentMethod = "Razorpay"
)

const DefaultStatus = "Order Placed"

// Item is a product snapshot as the storefront sent it. Snapshot keeps the
// original object so that fields this service does not know about survive.
type Item struct {
	Name     string
	Price    decimal.Decimal
	Size     string
	Quantity int
	Snapshot json.RawMessage
}

type Address map[string]any

type Order struct {
	ID            string
	UserID        string
	Items         []Item
	Address       Address
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Payment       bool
	Status        string
	Date          time.Time

	// nil значит заказ не истекает
	ExpiresAt *time.Time
}

// Settled reports whether the order shows up in the user's order history.
func (o Order) Settled() bool {
	return o.Payment || o.PaymentMethod == PaymentCOD
}

type OrderUpdate struct {
	Payment     *bool
	Status      *string
	ClearExpiry bool
}

func (u OrderUpdate) Empty() bool {
	return u.Payment == nil && u.Status == nil && !u.ClearExpiry
}

type OrderFilter struct {
	IncludeUnsettled bool
}

// PlaceOrder is the checkout submission shared by every payment method.
type PlaceOrder struct {
	UserID  string
	Items   []Item
	Amount  decimal.Decimal
	Address Address
}

// RawOrder is a PlaceOrder whose items have not been parsed yet.
type RawOrder struct {
	UserID  string
	Items   []json.RawMessage
	Amount  decimal.Decimal
	Address Address
}

func (r RawOrder) Parse() (PlaceOrder, error) {
	items := make([]Item, 0, len(r.Items))
	for i, raw := range r.Items {
		item, err := ParseItem(raw)
		if err != nil {
			return PlaceOrder{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	return PlaceOrder{
		UserID:  r.UserID,
		Items:   items,
		Amount:  r.Amount,
		Address: r.Address,
	}, nil
}

func (p PlaceOrder) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidOrder)
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidOrder)
	}
	for i, it := range p.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d has quantity %d", ErrInvalidOrder, i, it.Quantity)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("%w: item %d has negative price", ErrInvalidOrder, i)
		}
	}
	return nil
}

type itemFields struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Size     string          `json:"size"`
	Quantity int             `json:"quantity"`
}

// ParseItem decodes the typed view of an item and keeps the raw snapshot.
func ParseItem(raw json.RawMessage) (Item, error) {
	var f itemFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return Item{
		Name:     f.Name,
		Price:    f.Price,
		Size:     f.Size,
		Quantity: f.Quantity,
		Snapshot: append(json.RawMessage(nil), raw...),
	}, nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	if len(i.Snapshot) > 0 {
		return i.Snapshot, nil
	}
	return json.Marshal(itemFields{Name: i.Name, Price: i.Price, Size: i.Size, Quantity: i.Quantity})
}

func (i *Item) UnmarshalJSON(data []byte) error {
	item, err := ParseItem(data)
	if err != nil {
		return err
	}
	*i = item
	return nil
}

// MinorUnits converts a major-unit amount to the gateway's integer minor units.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyPaid      = errors.New("order already paid")
	ErrOrderExists      = errors.New("order already exists")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInvalidSignature = errors.New("signature verification failed")
	ErrMalformedEvent   = errors.New("malformed notification payload")
)
