package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendora_operation_requests_total",
		Help: "API requests by operation and response status.",
	}, []string{"operation", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vendora_operation_duration_seconds",
		Help:    "API request duration by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// instrument records per-operation request metrics around a handler.
func instrument(operation string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		requestsTotal.WithLabelValues(operation, strconv.Itoa(wrapped.status)).Inc()
		requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
