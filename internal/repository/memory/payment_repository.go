package memory

import (
	"context"
	"sync"
	"sync/atomic"

	domainErrors "github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/aidynbek/paysim/internal/domain/payment"
)

// PaymentRepository is the in-memory payment store.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*payment.Payment
	seq      atomic.Int64
}

// NewPaymentRepository creates an empty in-memory payment store.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[string]*payment.Payment),
	}
}

// Create stores a new payment.
func (r *PaymentRepository) Create(_ context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = p
	return nil
}

// GetByID retrieves a payment by ID. The caller receives a copy so the
// stored entity is only mutated through Update.
func (r *PaymentRepository) GetByID(_ context.Context, id string) (*payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, domainErrors.NewNotFound("Payment", id)
	}
	cp := *p
	return &cp, nil
}

// Update persists changes to an existing payment.
func (r *PaymentRepository) Update(_ context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; !ok {
		return domainErrors.NewNotFound("Payment", p.ID)
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

// NextSeq allocates the next payment sequence number, starting at 1.
func (r *PaymentRepository) NextSeq(_ context.Context) (int64, error) {
	return r.seq.Add(1), nil
}
