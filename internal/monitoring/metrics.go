// Package monitoring exposes Prometheus metrics for the catalog service.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector handles metrics collection and reporting
type MetricsCollector struct {
	registry *prometheus.Registry

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	itemsGenerated  prometheus.Counter
	recipesCreated  prometheus.Counter
	wsClients       prometheus.Gauge
}

// NewMetricsCollector creates a new metrics collector with its own registry.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	itemsGenerated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "grocery_items_generated_total",
			Help: "Shopping-list items generated from meal plans",
		},
	)

	recipesCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "local_recipes_created_total",
			Help: "User-added recipes stored",
		},
	)

	wsClients := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_clients",
			Help: "Connected shopping-list feed clients",
		},
	)

	registry.MustRegister(requestCount, requestDuration, itemsGenerated, recipesCreated, wsClients)

	return &MetricsCollector{
		registry:        registry,
		requestCount:    requestCount,
		requestDuration: requestDuration,
		itemsGenerated:  itemsGenerated,
		recipesCreated:  recipesCreated,
		wsClients:       wsClients,
	}
}

// RecordRequest records one handled HTTP request.
func (mc *MetricsCollector) RecordRequest(method, path string, status int, duration time.Duration) {
	mc.requestCount.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	mc.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordItemsGenerated records shopping-list items created by generation.
func (mc *MetricsCollector) RecordItemsGenerated(n int) {
	mc.itemsGenerated.Add(float64(n))
}

// RecordRecipeCreated records a stored user-added recipe.
func (mc *MetricsCollector) RecordRecipeCreated() {
	mc.recipesCreated.Inc()
}

// ClientConnected adjusts the websocket client gauge.
func (mc *MetricsCollector) ClientConnected(delta int) {
	mc.wsClients.Add(float64(delta))
}

// Handler returns an HTTP handler serving the collector's registry.
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}
