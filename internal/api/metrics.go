package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thenoetrevino/kanban/internal/services/board"
)

// Metrics tracks HTTP and board operation statistics on its own registry
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	operations      *prometheus.CounterVec
	opDuration      *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with Go and process collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kanban",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kanban",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kanban",
			Name:      "board_operations_total",
			Help:      "Board service operations by name and outcome.",
		}, []string{"op", "outcome"}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kanban",
			Name:      "board_operation_duration_seconds",
			Help:      "Board service operation latency, including storage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.operations,
		m.opDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records every request after it completes
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// RecordOperation implements board.Recorder
func (m *Metrics) RecordOperation(op string, err error, elapsed time.Duration) {
	m.operations.WithLabelValues(op, outcome(err)).Inc()
	m.opDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// outcome buckets an operation error into a low-cardinality label
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, board.ErrValidation):
		return "validation"
	case errors.Is(err, board.ErrNotFound):
		return "not_found"
	case errors.Is(err, board.ErrReferential):
		return "referential"
	case errors.Is(err, board.ErrStorageTimeout):
		return "timeout"
	default:
		return "error"
	}
}

var _ board.Recorder = (*Metrics)(nil)
