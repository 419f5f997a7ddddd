// Package check provides response-assertion helpers for API tests built on
// the apiclient result type.
package check

import (
	"strings"
	"testing"
	"time"

	"github.com/aidynbek/paysim/pkg/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Decode unmarshals the response body into a generic map, failing the test
// on malformed JSON.
func Decode(t testing.TB, res *apiclient.Result) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, res.JSON(&data), "response body should be valid JSON: %s", res.Body)
	return data
}

// Status asserts the response status code.
func Status(t testing.TB, res *apiclient.Result, want int) {
	t.Helper()
	require.Equal(t, want, res.StatusCode, "unexpected status, body: %s", res.Body)
}

// ResponseTime asserts the call completed within the acceptable bound.
func ResponseTime(t testing.TB, res *apiclient.Result, max time.Duration) {
	t.Helper()
	assert.LessOrEqual(t, res.Elapsed, max, "response time %s exceeds %s", res.Elapsed, max)
}

// Fields asserts the JSON body contains every named field.
func Fields(t testing.TB, res *apiclient.Result, fields ...string) {
	t.Helper()
	data := Decode(t, res)
	for _, f := range fields {
		assert.Contains(t, data, f, "response should contain %q", f)
	}
}

// FieldValue asserts a field equals the expected value. JSON numbers decode
// as float64, so pass float64 for numeric expectations.
func FieldValue(t testing.TB, res *apiclient.Result, field string, want any) {
	t.Helper()
	data := Decode(t, res)
	assert.Equal(t, want, data[field], "unexpected value for %q", field)
}

// FieldPrefix asserts a string field starts with the given prefix.
func FieldPrefix(t testing.TB, res *apiclient.Result, field, prefix string) {
	t.Helper()
	data := Decode(t, res)
	value, ok := data[field].(string)
	require.True(t, ok, "field %q should be a string, got %T", field, data[field])
	assert.True(t, strings.HasPrefix(value, prefix), "expected %q to start with %q, got %q", field, prefix, value)
}

// ErrorCode asserts the body carries the uniform error envelope with the
// expected code and a non-empty message.
func ErrorCode(t testing.TB, res *apiclient.Result, wantCode string) {
	t.Helper()
	data := Decode(t, res)
	envelope, ok := data["error"].(map[string]any)
	require.True(t, ok, "response should contain an error envelope: %s", res.Body)
	assert.Equal(t, wantCode, envelope["code"])
	assert.NotEmpty(t, envelope["message"])
}
