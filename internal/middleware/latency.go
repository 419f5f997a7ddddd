package middleware

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/aidynbek/paysim/internal/observability"
)

// Latency injects a random processing delay into every request, bounded by
// [min, max], to emulate realistic gateway timing for test calibration.
// The delay is a pure sleep with no cancellation semantics; the client's
// own timeout is the only bound.
func Latency(min, max time.Duration, m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := min
			if max > min {
				d += rand.N(max - min)
			}
			if d > 0 {
				time.Sleep(d)
			}
			if m != nil {
				m.InjectedLatency.Observe(d.Seconds())
			}

			next.ServeHTTP(w, r)
		})
	}
}
