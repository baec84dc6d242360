// Package middleware holds the mux middleware shared by all routes.
package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bookcore/appointment-service/pkg/metrics"
)

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics observes request count, duration and in-flight gauge per
// route template.
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			m.IncInFlight()
			defer m.DecInFlight()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			m.ObserveHTTPRequest(r.Method, route, recorder.status, time.Since(start))
		})
	}
}
