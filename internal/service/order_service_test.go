package service_test

import (
	"context"
	"testing"

	"github.com/aidynbek/paysim/internal/domain/audit"
	domainErrors "github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/aidynbek/paysim/internal/observability"
	"github.com/aidynbek/paysim/internal/repository/memory"
	"github.com/aidynbek/paysim/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engine struct {
	orders   *service.OrderService
	payments *service.PaymentService
	audit    *memory.AuditLog
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	orderRepo := memory.NewOrderRepository()
	paymentRepo := memory.NewPaymentRepository()
	auditLog := memory.NewAuditLog()
	metrics := observability.NewMetrics("test", prometheus.NewRegistry())

	return &engine{
		orders:   service.NewOrderService(orderRepo, auditLog, metrics),
		payments: service.NewPaymentService(paymentRepo, orderRepo, auditLog, metrics),
		audit:    auditLog,
	}
}

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func TestCreateOrder_Success(t *testing.T) {
	e := newEngine(t)

	o, err := e.orders.CreateOrder(context.Background(), service.CreateOrderInput{
		Amount:      floatPtr(1000),
		Currency:    stringPtr("KZT"),
		Description: "test order",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_1", o.ID)
	assert.Equal(t, 1000.0, o.Amount)
	assert.Equal(t, "KZT", o.Currency)

	events, err := e.audit.ByEntity(context.Background(), o.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventOrderCreated, events[0].Type)
}

func TestCreateOrder_MonotonicIDs(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		o, err := e.orders.CreateOrder(ctx, service.CreateOrderInput{
			Amount:   floatPtr(float64(i * 100)),
			Currency: stringPtr("KZT"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"order_1", "order_2", "order_3", "order_4", "order_5"}[i-1], o.ID)
	}
}

func TestCreateOrder_MissingFields(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   service.CreateOrderInput
	}{
		{"missing amount", service.CreateOrderInput{Currency: stringPtr("KZT")}},
		{"missing currency", service.CreateOrderInput{Amount: floatPtr(1000)}},
		{"missing both", service.CreateOrderInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.orders.CreateOrder(ctx, tt.in)
			require.Error(t, err)
			var validationErr *domainErrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreateOrder_NonPositiveAmount(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	for _, amount := range []float64{0, -5} {
		_, err := e.orders.CreateOrder(ctx, service.CreateOrderInput{
			Amount:   floatPtr(amount),
			Currency: stringPtr("KZT"),
		})
		require.Error(t, err)
		var validationErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	e := newEngine(t)

	_, err := e.orders.GetOrder(context.Background(), "order_nonexistent_999")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestGetOrder_ReturnsStoredOrder(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	created, err := e.orders.CreateOrder(ctx, service.CreateOrderInput{
		Amount:   floatPtr(2000),
		Currency: stringPtr("KZT"),
	})
	require.NoError(t, err)

	got, err := e.orders.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}
