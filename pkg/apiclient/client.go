// Package apiclient is the HTTP test client for the gateway simulator.
// It measures per-call elapsed time so suites can assert on response
// latency, and fails fast through a circuit breaker when the server is
// unreachable.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aidynbek/paysim/internal/config"
	"github.com/aidynbek/paysim/pkg/retry"
	"github.com/sony/gobreaker/v2"
)

// Result holds a completed API call: status, raw body and elapsed time.
type Result struct {
	StatusCode int
	Body       []byte
	Elapsed    time.Duration
}

// JSON unmarshals the response body into v.
func (r *Result) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client is a thin HTTP client for the gateway API. The bearer token is
// sent on every request; the server accepts it without validating.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*Result]

	healthRetry retry.Config
}

// New creates a client from the client section of the configuration.
func New(cfg config.ClientConfig) *Client {
	threshold := cfg.BreakerThreshold
	if threshold == 0 {
		threshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker[*Result](gobreaker.Settings{
		Name:    "apiclient",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		healthRetry: retry.Config{
			MaxAttempts: cfg.HealthRetries,
			Delay:       cfg.HealthRetryDelay,
		},
	}
}

// Do performs a request against the API. A nil payload sends no body and
// no Content-Type header. Non-2xx responses are valid results, not errors;
// only transport failures count against the circuit breaker.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*Result, error) {
	return c.breaker.Execute(func() (*Result, error) {
		return c.do(ctx, method, path, payload)
	})
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*Result, error) {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       buf.Bytes(),
		Elapsed:    elapsed,
	}, nil
}

// CreateOrder creates an order. Extra fields (description, customer) are
// merged into the request body.
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency string, extra map[string]any) (*Result, error) {
	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
	}
	for k, v := range extra {
		payload[k] = v
	}
	return c.Do(ctx, http.MethodPost, "/orders", payload)
}

// GetOrder retrieves an order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Result, error) {
	return c.Do(ctx, http.MethodGet, "/orders/"+orderID, nil)
}

// CreatePayment creates a payment for an order. An empty method omits the
// body entirely so the server applies its default.
func (c *Client) CreatePayment(ctx context.Context, orderID, method string) (*Result, error) {
	var payload any
	if method != "" {
		payload = map[string]any{"payment_method": method}
	}
	return c.Do(ctx, http.MethodPost, "/orders/"+orderID+"/payments", payload)
}

// GetPayment retrieves a payment by ID.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Result, error) {
	return c.Do(ctx, http.MethodGet, "/payments/"+paymentID, nil)
}

// RefundPayment refunds a payment. A nil amount sends no body, refunding
// the full payment amount.
func (c *Client) RefundPayment(ctx context.Context, paymentID string, amount *float64) (*Result, error) {
	var payload any
	if amount != nil {
		payload = map[string]any{"amount": *amount}
	}
	return c.Do(ctx, http.MethodPost, "/payments/"+paymentID+"/refund", payload)
}

// WaitReady polls /health until the server answers 200, using the
// configured retry budget.
func (c *Client) WaitReady(ctx context.Context) error {
	_, err := retry.DoWithResult(ctx, c.healthRetry, func() (*Result, error) {
		res, err := c.do(ctx, http.MethodGet, "/health", nil)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("health returned %d", res.StatusCode)
		}
		return res, nil
	})
	return err
}
