package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aidynbek/paysim/internal/bootstrap"
	"github.com/aidynbek/paysim/internal/controller"
	"github.com/aidynbek/paysim/internal/repository/memory"
	"github.com/aidynbek/paysim/internal/service"
)

func main() {
	app, err := bootstrap.New("paysim-server", "paysim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Repositories ---
	orderRepo := memory.NewOrderRepository()
	paymentRepo := memory.NewPaymentRepository()
	auditLog := memory.NewAuditLog()

	// --- Services ---
	orderService := service.NewOrderService(orderRepo, auditLog, app.Metrics)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, auditLog, app.Metrics)

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		OrderService:   orderService,
		PaymentService: paymentService,
		Metrics:        app.Metrics,
		Latency:        app.Config.Latency,
		CORSConfig:     app.Config.Server.CORS,
		EnableTracing:  app.Config.Observability.EnableTracing,
	})

	// --- HTTP server ---
	addr := app.Config.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}

	go func() {
		app.Logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	app.Logger.Info().Msg("Server exited")
}
