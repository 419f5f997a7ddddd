package service

import (
	"context"
	"sync"

	"github.com/aidynbek/paysim/internal/domain/audit"
	"github.com/aidynbek/paysim/internal/domain/order"
	"github.com/aidynbek/paysim/internal/domain/payment"
	"github.com/aidynbek/paysim/internal/observability"
)

// PaymentService handles payment creation, retrieval and refunds.
type PaymentService struct {
	payments payment.Repository
	orders   order.Repository
	audit    audit.Log
	metrics  *observability.Metrics

	// refundMu serializes read-check-mutate refund sequences so two
	// concurrent refunds of the same payment cannot both pass the status
	// check. A single lock suffices at this operation count.
	refundMu sync.Mutex
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	payments payment.Repository,
	orders order.Repository,
	auditLog audit.Log,
	metrics *observability.Metrics,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		orders:   orders,
		audit:    auditLog,
		metrics:  metrics,
	}
}

// CreatePayment allocates the next payment ID for an existing order,
// copying amount and currency from the order. The payment method defaults
// to "card" when absent.
func (s *PaymentService) CreatePayment(ctx context.Context, orderID, method string) (*payment.Payment, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	seq, err := s.payments.NextSeq(ctx)
	if err != nil {
		return nil, err
	}

	p := payment.New(seq, o, method)
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	_ = s.audit.Append(ctx, audit.NewEvent(p.ID, audit.EventPaymentCreated, map[string]any{
		"order_id": p.OrderID,
		"amount":   p.Amount,
		"currency": p.Currency,
		"method":   p.PaymentMethod,
	}))
	s.metrics.PaymentsCreated.Inc()

	return p, nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, id string) (*payment.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

// RefundPayment refunds a pending payment, in full when amount is nil. The
// payment transitions to refunded exactly once; the returned Refund record
// is not persisted.
func (s *PaymentService) RefundPayment(ctx context.Context, paymentID string, amount *float64) (*payment.Refund, error) {
	s.refundMu.Lock()
	defer s.refundMu.Unlock()

	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	r, err := p.Refund(amount)
	if err != nil {
		s.metrics.RefundsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}

	_ = s.audit.Append(ctx, audit.NewEvent(p.ID, audit.EventPaymentRefunded, map[string]any{
		"refund_id":       r.ID,
		"refunded_amount": r.Amount,
	}))
	s.metrics.RefundsTotal.WithLabelValues("completed").Inc()

	return r, nil
}
