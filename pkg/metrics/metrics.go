// Package metrics holds the Prometheus collectors shared by the HTTP
// middleware and the database wrapper.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles all collectors of the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	dbQueryDuration *prometheus.HistogramVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge
}

// New registers the collectors on the default registry.
func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		httpInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served.",
			ConstLabels: labels,
		}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		dbOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the pool.",
			ConstLabels: labels,
		}),
		dbInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),
		dbIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle connections in the pool.",
			ConstLabels: labels,
		}),
		dbWaitCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_wait_total",
			Help:        "Total number of connection waits.",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncInFlight marks a request as started.
func (m *Metrics) IncInFlight() { m.httpInFlight.Inc() }

// DecInFlight marks a request as finished.
func (m *Metrics) DecInFlight() { m.httpInFlight.Dec() }

// ObserveDBQuery records one database round trip.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats publishes connection pool stats.
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}
