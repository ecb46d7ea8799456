// Package metrics holds the Prometheus collectors for the service.
//
// Every Collector owns its registry, so tests and multiple servers in one
// process never collide on registration. A nil *Collector is valid and
// records nothing, which is how METRICS_ENABLED=false is implemented.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache tiers and outcomes used as label values.
const (
	TierMemory = "memory"
	TierStore  = "store"

	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Collector holds all Prometheus metrics for the application.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	// Upstream metrics
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	// Cache metrics
	cacheLookups *prometheus.CounterVec
	storeWrites  *prometheus.CounterVec
}

// NewCollector creates a collector with the given namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of PokéAPI requests by resource and status",
			},
			[]string{"resource", "status"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "PokéAPI request duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
			},
			[]string{"resource"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Record cache lookups by tier and result",
			},
			[]string{"tier", "result"},
		),
		storeWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_writes_total",
				Help:      "Writes to the persisted record cache by result",
			},
			[]string{"result"},
		),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.upstreamRequests,
		c.upstreamDuration,
		c.cacheLookups,
		c.storeWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveUpstream records one PokéAPI call. A zero status means no response
// arrived.
func (c *Collector) ObserveUpstream(resource string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	label := "network_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	c.upstreamRequests.WithLabelValues(resource, label).Inc()
	c.upstreamDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a lookup against one cache tier.
func (c *Collector) ObserveCacheLookup(tier, result string) {
	if c == nil {
		return
	}
	c.cacheLookups.WithLabelValues(tier, result).Inc()
}

// ObserveStoreWrite records a write-through to the persisted tier.
func (c *Collector) ObserveStoreWrite(err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = ResultError
	}
	c.storeWrites.WithLabelValues(result).Inc()
}
