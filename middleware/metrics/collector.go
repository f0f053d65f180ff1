// Package metrics tracks per-request counters for the HTTP API.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestKey identifies a class of completed requests.
type RequestKey struct {
	Method   string
	Endpoint string
	Status   int
}

// String formats the key as "METHOD:endpoint:status".
func (k RequestKey) String() string {
	return fmt.Sprintf("%s:%s:%d", k.Method, k.Endpoint, k.Status)
}

// Stats is a point-in-time snapshot of the collector.
type Stats struct {
	UptimeSeconds   float64          `json:"uptime_seconds"`
	TotalRequests   int64            `json:"total_requests"`
	AverageDuration float64          `json:"average_duration"`
	RequestCounts   map[string]int64 `json:"request_counts"`
}

// Collector provides thread-safe request counting. Counts only grow.
type Collector struct {
	mu            sync.Mutex
	counts        map[RequestKey]int64
	durationTotal time.Duration
	samples       int64
	startTime     time.Time
	now           func() time.Time

	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Option configures a Collector.
type Option func(*Collector)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		c.now = now
	}
}

// NewCollector creates a collector with its own Prometheus registry.
func NewCollector(namespace string, opts ...Option) *Collector {
	c := &Collector{
		counts: make(map[RequestKey]int64),
		now:    time.Now,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "endpoint", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"method", "endpoint"},
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startTime = c.now()

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		c.requests,
		c.duration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return c
}

// Track records one completed request.
func (c *Collector) Track(method, endpoint string, status int, duration time.Duration) {
	key := RequestKey{Method: method, Endpoint: endpoint, Status: status}

	c.mu.Lock()
	c.counts[key]++
	c.durationTotal += duration
	c.samples++
	c.mu.Unlock()

	c.requests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Stats returns a snapshot of the counters.
func (c *Collector) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts := make(map[string]int64, len(c.counts))
	var total int64
	for key, n := range c.counts {
		counts[key.String()] = n
		total += n
	}

	var avg float64
	if c.samples > 0 {
		avg = c.durationTotal.Seconds() / float64(c.samples)
	}

	return Stats{
		UptimeSeconds:   c.now().Sub(c.startTime).Seconds(),
		TotalRequests:   total,
		AverageDuration: avg,
		RequestCounts:   counts,
	}
}

// Count returns the number of requests recorded for key.
func (c *Collector) Count(key RequestKey) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key]
}

// Handler exposes the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
