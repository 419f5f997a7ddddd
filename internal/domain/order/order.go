package order

import (
	"fmt"
	"time"

	"github.com/aidynbek/paysim/internal/domain/errors"
)

// Status represents the order status. Orders have a single-state lifecycle:
// they are created pending and never transition.
type Status string

const (
	StatusPending Status = "pending"
)

// DefaultCurrency is applied by clients when no currency is supplied.
const DefaultCurrency = "KZT"

// Order represents a requested amount/currency awaiting payment.
type Order struct {
	ID          string
	Amount      float64
	Currency    string
	Status      Status
	CreatedAt   time.Time
	Description string
	Customer    map[string]any
}

// New creates an order with the given sequence number. IDs follow the
// "order_<N>" format with N monotonically increasing per process.
func New(seq int64, amount float64, currency, description string, customer map[string]any) (*Order, error) {
	if amount <= 0 {
		return nil, errors.NewValidationError("amount", "amount must be greater than 0")
	}
	if customer == nil {
		customer = make(map[string]any)
	}

	return &Order{
		ID:          fmt.Sprintf("order_%d", seq),
		Amount:      amount,
		Currency:    currency,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
		Description: description,
		Customer:    customer,
	}, nil
}
