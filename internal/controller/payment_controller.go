package controller

import (
	"net/http"

	"github.com/aidynbek/paysim/internal/service"
	"github.com/go-chi/chi/v5"
)

// PaymentController handles payment-related HTTP requests.
type PaymentController struct {
	paymentService *service.PaymentService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// Create handles POST /orders/{id}/payments. The body is optional: without
// one the payment method defaults to "card".
func (h *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	decodeOptional(r, &req)

	p, err := h.paymentService.CreatePayment(r.Context(), chi.URLParam(r, "id"), req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromPayment(p))
}

// Get handles GET /payments/{id}
func (h *PaymentController) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.paymentService.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromPayment(p))
}

// Refund handles POST /payments/{id}/refund. The body is optional: without
// one the full payment amount is refunded.
func (h *PaymentController) Refund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	decodeOptional(r, &req)

	refund, err := h.paymentService.RefundPayment(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromRefund(refund))
}
