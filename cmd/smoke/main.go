// Command smoke runs a full order/payment/refund scenario against a running
// gateway simulator and reports pass/fail. It exercises the same client the
// test suites use, so it doubles as a deployment check.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aidynbek/paysim/internal/bootstrap"
	"github.com/aidynbek/paysim/pkg/apiclient"
	"github.com/rs/zerolog"
)

func main() {
	app, err := bootstrap.New("paysim-smoke", "paysim_smoke")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	client := apiclient.New(app.Config.Client)
	ctx := context.Background()

	if err := client.WaitReady(ctx); err != nil {
		app.Logger.Fatal().Err(err).Str("base_url", app.Config.Client.BaseURL).Msg("Server not ready")
	}

	if err := run(ctx, app.Logger, client); err != nil {
		app.Logger.Fatal().Err(err).Msg("Smoke test failed")
	}
	app.Logger.Info().Msg("Smoke test passed")
}

func run(ctx context.Context, logger zerolog.Logger, client *apiclient.Client) error {
	// Create an order.
	res, err := client.CreateOrder(ctx, 6000, "KZT", map[string]any{"description": "smoke test order"})
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusCreated {
		return fmt.Errorf("create order: expected 201, got %d: %s", res.StatusCode, res.Body)
	}
	var order struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
		Status string  `json:"status"`
	}
	if err := res.JSON(&order); err != nil {
		return err
	}
	logger.Info().Str("order_id", order.ID).Dur("elapsed", res.Elapsed).Msg("Order created")

	// Pay it.
	res, err = client.CreatePayment(ctx, order.ID, "card")
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusCreated {
		return fmt.Errorf("create payment: expected 201, got %d: %s", res.StatusCode, res.Body)
	}
	var payment struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
	}
	if err := res.JSON(&payment); err != nil {
		return err
	}
	if payment.Amount != order.Amount {
		return fmt.Errorf("payment amount %v does not match order amount %v", payment.Amount, order.Amount)
	}
	logger.Info().Str("payment_id", payment.ID).Dur("elapsed", res.Elapsed).Msg("Payment created")

	// Partial refund.
	half := payment.Amount / 2
	res, err = client.RefundPayment(ctx, payment.ID, &half)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusCreated {
		return fmt.Errorf("refund: expected 201, got %d: %s", res.StatusCode, res.Body)
	}
	logger.Info().Str("payment_id", payment.ID).Float64("amount", half).Msg("Payment refunded")

	// A second refund must be rejected.
	res, err = client.RefundPayment(ctx, payment.ID, nil)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("double refund: expected 400, got %d: %s", res.StatusCode, res.Body)
	}
	logger.Info().Msg("Double refund rejected as expected")

	return nil
}
