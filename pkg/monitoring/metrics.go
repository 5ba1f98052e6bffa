package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Payment transition metrics
	paymentTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_transitions_total",
			Help: "Total number of appointment payment transitions",
		},
		[]string{"outcome", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		paymentTransitionsTotal,
	)
}

// RecordPaymentTransition counts a payment state transition by outcome
// (paid, failed, refunded) and method (online, cash, webhook).
func RecordPaymentTransition(outcome, method string) {
	paymentTransitionsTotal.WithLabelValues(outcome, method).Inc()
}

// Handler returns the prometheus scrape endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware records request counts and latencies per route template.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tmpl
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(wrapper.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder captures the response status code for metrics
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}
