package controller

import (
	"net/http"

	"github.com/aidynbek/paysim/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderController handles order-related HTTP requests.
type OrderController struct {
	orderService *service.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Create handles POST /orders
func (h *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeRequired(r, &req); err != nil {
		writeError(w, err)
		return
	}

	o, err := h.orderService.CreateOrder(r.Context(), service.CreateOrderInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Customer:    req.Customer,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromOrder(o))
}

// Get handles GET /orders/{id}
func (h *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromOrder(o))
}
