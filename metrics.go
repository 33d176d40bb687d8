package weave

import (
	"github.com/xraph/weave/internal/metrics"
)

// MetricsRecorder receives registry activity. Pass one to WithMetrics.
type MetricsRecorder = metrics.Recorder

// MetricsCollector records registry activity in Prometheus metrics.
type MetricsCollector = metrics.Collector

// DefaultMetricsNamespace prefixes metric names when no namespace is configured.
const DefaultMetricsNamespace = metrics.DefaultNamespace

var (
	// NewMetricsCollector registers the registry metrics with a Prometheus registerer.
	NewMetricsCollector = metrics.NewCollector
	// NewNoOpMetricsRecorder discards everything.
	NewNoOpMetricsRecorder = metrics.NewNoOpRecorder
)
