package payment

import (
	"fmt"
	"time"

	"github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/aidynbek/paysim/internal/domain/order"
)

// Status represents the payment status in the state machine
type Status string

const (
	StatusPending  Status = "pending"
	StatusRefunded Status = "refunded"
)

// DefaultMethod is applied when the client supplies no payment method.
const DefaultMethod = "card"

// Payment represents an attempt to settle an order. Amount and currency are
// copied from the order at creation time and never track later changes.
type Payment struct {
	ID             string
	OrderID        string
	Amount         float64
	Currency       string
	Status         Status
	CreatedAt      time.Time
	PaymentMethod  string
	RefundedAmount *float64
	RefundedAt     *time.Time
}

// New creates a payment for the given order with the next sequence number.
// IDs follow the "payment_<M>" format with M monotonically increasing.
func New(seq int64, o *order.Order, method string) *Payment {
	if method == "" {
		method = DefaultMethod
	}

	return &Payment{
		ID:            fmt.Sprintf("payment_%d", seq),
		OrderID:       o.ID,
		Amount:        o.Amount,
		Currency:      o.Currency,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
		PaymentMethod: method,
	}
}

// CanTransitionTo checks if the payment can transition to the given status
func (p *Payment) CanTransitionTo(newStatus Status) bool {
	transitions := map[Status][]Status{
		StatusPending:  {StatusRefunded},
		StatusRefunded: {}, // Terminal state
	}

	allowed, exists := transitions[p.Status]
	if !exists {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// Refund transitions the payment to refunded and returns the resulting
// Refund record. When amount is nil the full payment amount is refunded.
// The refund amount must not exceed the payment amount; no lower bound is
// enforced. A refunded payment cannot be refunded again, so the payment is
// left untouched on any error.
func (p *Payment) Refund(amount *float64) (*Refund, error) {
	if !p.CanTransitionTo(StatusRefunded) {
		return nil, errors.NewInvalidStatus("Payment already refunded")
	}

	refundAmount := p.Amount
	if amount != nil {
		refundAmount = *amount
	}
	if refundAmount > p.Amount {
		return nil, errors.NewValidationError("amount", "Refund amount cannot exceed payment amount")
	}

	now := time.Now().UTC()
	p.Status = StatusRefunded
	p.RefundedAmount = &refundAmount
	p.RefundedAt = &now

	return &Refund{
		ID:        fmt.Sprintf("refund_%s", p.ID),
		PaymentID: p.ID,
		Amount:    refundAmount,
		Currency:  p.Currency,
		Status:    RefundStatusCompleted,
		CreatedAt: now,
	}, nil
}

// IsTerminal checks if the payment is in a terminal state
func (p *Payment) IsTerminal() bool {
	return p.Status == StatusRefunded
}
