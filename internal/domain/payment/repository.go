package payment

import "context"

// Repository defines the interface for payment storage
type Repository interface {
	// Create stores a new payment
	Create(ctx context.Context, payment *Payment) error

	// GetByID retrieves a payment by ID
	GetByID(ctx context.Context, id string) (*Payment, error)

	// Update persists changes to an existing payment (refund mutation)
	Update(ctx context.Context, payment *Payment) error

	// NextSeq allocates the next payment sequence number, starting at 1.
	// Sequence numbers are never reused.
	NextSeq(ctx context.Context) (int64, error)
}
