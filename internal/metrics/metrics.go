package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	cartActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savory_cart_actions_total",
			Help: "Cart actions applied, by action type.",
		},
		[]string{"action"},
	)

	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savory_orders_placed_total",
			Help: "Orders placed successfully, by order type.",
		},
		[]string{"order_type"},
	)

	simulatedFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savory_simulated_failures_total",
			Help: "Injected failures of the simulated backend, by operation.",
		},
		[]string{"operation"},
	)

	corruptStateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savory_corrupt_state_recovered_total",
			Help: "Stored values that failed to decode and were reset, by key.",
		},
		[]string{"key"},
	)

	signInRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "savory_signin_rate_limited_total",
			Help: "Sign-in attempts rejected by the rate limiter.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordCartAction(action string) {
	cartActionsTotal.WithLabelValues(action).Inc()
}

func RecordOrderPlaced(orderType string) {
	ordersPlacedTotal.WithLabelValues(orderType).Inc()
}

func RecordSimulatedFailure(operation string) {
	simulatedFailuresTotal.WithLabelValues(operation).Inc()
}

func RecordCorruptState(key string) {
	corruptStateTotal.WithLabelValues(key).Inc()
}

func RecordSignInRateLimited() {
	signInRateLimitedTotal.Inc()
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware must wrap the ServeMux directly so the matched pattern is
// visible on the request once routing is done.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			pathPattern := r.Pattern
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
