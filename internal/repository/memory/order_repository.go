package memory

import (
	"context"
	"sync"
	"sync/atomic"

	domainErrors "github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/aidynbek/paysim/internal/domain/order"
)

// OrderRepository is the in-memory order store. The map is guarded by a
// RWMutex and the sequence by an atomic counter so the engine stays correct
// under Go's concurrent request handling. State is volatile and resets on
// process restart.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	seq    atomic.Int64
}

// NewOrderRepository creates an empty in-memory order store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*order.Order),
	}
}

// Create stores a new order.
func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

// GetByID retrieves an order by ID.
func (r *OrderRepository) GetByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domainErrors.NewNotFound("Order", id)
	}
	return o, nil
}

// NextSeq allocates the next order sequence number, starting at 1.
func (r *OrderRepository) NextSeq(_ context.Context) (int64, error) {
	return r.seq.Add(1), nil
}
