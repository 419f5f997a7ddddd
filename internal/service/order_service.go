package service

import (
	"context"

	"github.com/aidynbek/paysim/internal/domain/audit"
	domainErrors "github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/aidynbek/paysim/internal/domain/order"
	"github.com/aidynbek/paysim/internal/observability"
)

// OrderService handles order creation and retrieval.
type OrderService struct {
	orders  order.Repository
	audit   audit.Log
	metrics *observability.Metrics
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders order.Repository, auditLog audit.Log, metrics *observability.Metrics) *OrderService {
	return &OrderService{
		orders:  orders,
		audit:   auditLog,
		metrics: metrics,
	}
}

// CreateOrderInput holds the input for creating an order. Amount and
// Currency are pointers so a missing field can be told apart from a zero
// value: both are required, but only a present non-positive amount is a
// value error.
type CreateOrderInput struct {
	Amount      *float64
	Currency    *string
	Description string
	Customer    map[string]any
}

// CreateOrder allocates the next order ID and stores a pending order.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*order.Order, error) {
	if in.Amount == nil || in.Currency == nil {
		return nil, domainErrors.NewValidationError("body", "amount and currency are required")
	}

	seq, err := s.orders.NextSeq(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.New(seq, *in.Amount, *in.Currency, in.Description, in.Customer)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	_ = s.audit.Append(ctx, audit.NewEvent(o.ID, audit.EventOrderCreated, map[string]any{
		"amount":   o.Amount,
		"currency": o.Currency,
	}))
	s.metrics.OrdersCreated.Inc()

	return o, nil
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	return s.orders.GetByID(ctx, id)
}
