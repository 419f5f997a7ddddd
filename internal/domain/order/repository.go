package order

import "context"

// Repository defines the interface for order storage. The simulator ships an
// in-memory implementation; the sequence is generated by the store so a
// concurrent-safe or external store can be swapped in without touching the
// engine.
type Repository interface {
	// Create stores a new order
	Create(ctx context.Context, order *Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id string) (*Order, error)

	// NextSeq allocates the next order sequence number, starting at 1.
	// Sequence numbers are never reused.
	NextSeq(ctx context.Context) (int64, error)
}
