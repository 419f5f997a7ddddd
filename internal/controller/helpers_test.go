package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		payload      any
		expectedBody string
	}{
		{
			name:         "simple map",
			status:       http.StatusOK,
			payload:      map[string]string{"status": "ok"},
			expectedBody: `{"status":"ok"}`,
		},
		{
			name:         "error envelope",
			status:       http.StatusBadRequest,
			payload:      ErrorResponse{Error: ErrorBody{Code: "VALIDATION_ERROR", Message: "amount is required"}},
			expectedBody: `{"error":{"code":"VALIDATION_ERROR","message":"amount is required"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSON(w, tt.status, tt.payload)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

func TestWriteError_ValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, domainErrors.NewValidationError("amount", "amount must be greater than 0"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, domainErrors.CodeValidationError, body.Code)
	assert.Equal(t, "amount must be greater than 0", body.Message)
}

func TestWriteError_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            domainErrors.NewNotFound("Order", "order_99"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   domainErrors.CodeNotFound,
		},
		{
			name:           "invalid status",
			err:            domainErrors.NewInvalidStatus("Payment already refunded"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainErrors.CodeInvalidStatus,
		},
		{
			name:           "invalid request",
			err:            domainErrors.NewInvalidRequest("Request body is required"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainErrors.CodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteError_UnknownError_FallbackToInternalServerError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, errors.New("unexpected error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, domainErrors.CodeInternal, body.Code)
	assert.Equal(t, "internal server error", body.Message)
}

func TestDecodeRequired_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{"amount":1000,"currency":"KZT"}`))

	var dst CreateOrderRequest
	require.NoError(t, decodeRequired(req, &dst))
	require.NotNil(t, dst.Amount)
	assert.Equal(t, 1000.0, *dst.Amount)
	require.NotNil(t, dst.Currency)
	assert.Equal(t, "KZT", *dst.Currency)
}

func TestDecodeRequired_BodyMissing(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"whitespace", "   "},
		{"invalid JSON", "{not json"},
		{"null", "null"},
		{"empty object", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/orders", strings.NewReader(tt.body))

			var dst CreateOrderRequest
			err := decodeRequired(req, &dst)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidRequest)
		})
	}
}

func TestDecodeRequired_MissingField(t *testing.T) {
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{"currency":"KZT"}`))

	var dst CreateOrderRequest
	err := decodeRequired(req, &dst)
	require.Error(t, err)

	var validationErr *domainErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestDecodeRequired_NonPositiveAmount(t *testing.T) {
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{"amount":0,"currency":"KZT"}`))

	var dst CreateOrderRequest
	err := decodeRequired(req, &dst)
	require.Error(t, err)

	var validationErr *domainErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "greater than 0")
}

func TestDecodeOptional_AbsentBodyLeavesDefaults(t *testing.T) {
	req := httptest.NewRequest("POST", "/payments/payment_1/refund", strings.NewReader(""))

	var dst RefundRequest
	decodeOptional(req, &dst)
	assert.Nil(t, dst.Amount)
}

func TestDecodeOptional_ParsesBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/payments/payment_1/refund", strings.NewReader(`{"amount":3000}`))

	var dst RefundRequest
	decodeOptional(req, &dst)
	require.NotNil(t, dst.Amount)
	assert.Equal(t, 3000.0, *dst.Amount)
}

func TestDecodeOptional_GarbageBodyIgnored(t *testing.T) {
	req := httptest.NewRequest("POST", "/payments/payment_1/refund", strings.NewReader("{not json"))

	var dst CreatePaymentRequest
	decodeOptional(req, &dst)
	assert.Empty(t, dst.PaymentMethod)
}
