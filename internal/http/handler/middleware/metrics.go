package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the request collectors with reg.
func NewMetricsMiddleware(reg prometheus.Registerer) *MetricsMiddleware {
	m := &MetricsMiddleware{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "quill_http_requests_total", Help: "HTTP requests handled"},
			[]string{"method", "route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quill_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Metrics labels each request with the mux pattern that served it, so path
// parameters do not blow up label cardinality.
func (m *MetricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			m.duration.WithLabelValues(r.Method, routeLabel(r)).Observe(seconds)
		}))

		next.ServeHTTP(rec, r)

		timer.ObserveDuration()
		m.requests.WithLabelValues(r.Method, routeLabel(r), strconv.Itoa(rec.status)).Inc()
	})
}

func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return unmatchedRoute
	}
	return r.Pattern
}
