package controller

import (
	"time"

	"github.com/aidynbek/paysim/internal/domain/order"
	"github.com/aidynbek/paysim/internal/domain/payment"
)

// --- Request DTOs ---
// Required fields are pointers so "missing" and "zero" stay distinguishable:
// a missing amount is a validation error, a supplied amount of 0 a different one.

// CreateOrderRequest holds the input for creating an order.
type CreateOrderRequest struct {
	Amount      *float64       `json:"amount" validate:"required,gt=0"`
	Currency    *string        `json:"currency" validate:"required"`
	Description string         `json:"description"`
	Customer    map[string]any `json:"customer"`
}

// CreatePaymentRequest holds the optional input for creating a payment.
type CreatePaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// RefundRequest holds the optional input for refunding a payment. A nil
// amount refunds the full payment amount. No lower bound is enforced.
type RefundRequest struct {
	Amount *float64 `json:"amount"`
}

// --- Response DTOs ---

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID          string         `json:"id"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Description string         `json:"description"`
	Customer    map[string]any `json:"customer"`
}

// PaymentResponse represents a payment in API responses. The refund fields
// appear only once the payment has been refunded.
type PaymentResponse struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	PaymentMethod  string     `json:"payment_method"`
	RefundedAmount *float64   `json:"refunded_amount,omitempty"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
}

// RefundResponse represents a refund in API responses.
type RefundResponse struct {
	ID        string    `json:"id"`
	PaymentID string    `json:"payment_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Conversion helpers ---

// FromOrder converts a domain order to API response.
func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:          o.ID,
		Amount:      o.Amount,
		Currency:    o.Currency,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		Description: o.Description,
		Customer:    o.Customer,
	}
}

// FromPayment converts a domain payment to API response.
func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:             p.ID,
		OrderID:        p.OrderID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		PaymentMethod:  p.PaymentMethod,
		RefundedAmount: p.RefundedAmount,
		RefundedAt:     p.RefundedAt,
	}
}

// FromRefund converts a domain refund to API response.
func FromRefund(r *payment.Refund) *RefundResponse {
	return &RefundResponse{
		ID:        r.ID,
		PaymentID: r.PaymentID,
		Amount:    r.Amount,
		Currency:  r.Currency,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
