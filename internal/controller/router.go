package controller

import (
	"time"

	"github.com/aidynbek/paysim/internal/config"
	customMW "github.com/aidynbek/paysim/internal/middleware"
	"github.com/aidynbek/paysim/internal/observability"
	"github.com/aidynbek/paysim/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	OrderService   *service.OrderService
	PaymentService *service.PaymentService
	Metrics        *observability.Metrics
	Latency        config.LatencyConfig
	CORSConfig     config.CORSConfig
	EnableTracing  bool
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if deps.EnableTracing {
		r.Use(customMW.Tracing())
	}
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController()
	orderH := NewOrderController(deps.OrderService)
	paymentH := NewPaymentController(deps.PaymentService)

	r.Get("/health", healthH.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Gateway routes carry the injected latency; health and metrics don't.
	r.Group(func(r chi.Router) {
		r.Use(customMW.Latency(deps.Latency.Min, deps.Latency.Max, deps.Metrics))

		r.Post("/orders", orderH.Create)
		r.Get("/orders/{id}", orderH.Get)
		r.Post("/orders/{id}/payments", paymentH.Create)
		r.Get("/payments/{id}", paymentH.Get)
		r.Post("/payments/{id}/refund", paymentH.Refund)
	})

	return r
}
