// Package metrics defines Prometheus metrics for costar.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "costar_queries_total",
		Help: "Total collaboration queries answered, labelled by answer kind.",
	}, []string{"kind"})

	QueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "costar_query_errors_total",
		Help: "Total queries that failed, labelled by error type.",
	}, []string{"type"})

	BFSDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "costar_bfs_duration_seconds",
		Help:    "Time spent in the reference BFS while building an oracle.",
		Buckets: prometheus.DefBuckets,
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "costar_graph_nodes",
		Help: "Node count of the active collaboration graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "costar_graph_edges",
		Help: "Edge count of the active collaboration graph.",
	})

	ReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "costar_reloads_total",
		Help: "Dataset reloads, labelled by status (ok|error).",
	}, []string{"status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "costar_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "costar_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "costar_http_errors_total",
		Help: "Total HTTP error responses by error code",
	}, []string{"code"})
)
