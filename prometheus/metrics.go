package prometheus

import (
	"time"

	"catering-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Chat event metrics
	ChatEventsCounter *prometheus.CounterVec

	// Cart metrics
	CartOperationsCounter *prometheus.CounterVec

	// Order metrics
	OrdersCreatedCounter prometheus.Counter
	OrderTotalHistogram  prometheus.Histogram

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ChatEventsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_chat_events_total",
			Help: "Total number of inbound chat events",
		},
		[]string{"kind"},
	)

	CartOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	OrdersCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_orders_created_total",
			Help: "Total number of orders created",
		},
	)

	OrderTotalHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_order_total_price",
			Help:    "Distribution of order totals",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
	)

	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database
// operation when deferred.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordChatEvent increments the counter for inbound chat events
func RecordChatEvent(kind string) {
	if ChatEventsCounter == nil {
		return
	}
	ChatEventsCounter.WithLabelValues(kind).Inc()
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	if CartOperationsCounter == nil {
		return
	}
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordOrderCreated increments the order counter and records the total
func RecordOrderCreated(total int) {
	if OrdersCreatedCounter == nil {
		return
	}
	OrdersCreatedCounter.Inc()
	OrderTotalHistogram.Observe(float64(total))
}
