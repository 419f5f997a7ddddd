package payment

import "time"

// RefundStatusCompleted is the only refund status: refunds complete
// synchronously or not at all.
const RefundStatusCompleted = "completed"

// Refund is a one-time reversal record produced when a payment is refunded.
// It is a value object derived from the payment, never stored: the mutated
// payment carries the lasting evidence (refunded_amount, refunded_at).
type Refund struct {
	ID        string
	PaymentID string
	Amount    float64
	Currency  string
	Status    string
	CreatedAt time.Time
}
