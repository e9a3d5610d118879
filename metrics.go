package utid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    generateCounter   prometheus.Counter
//	    generateHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGenerate(duration time.Duration, err error) {
//	    p.generateCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordGenerate is called after each generate operation.
	// duration is the total time taken, err is nil if successful.
	RecordGenerate(duration time.Duration, err error)

	// RecordDecompose is called after each decompose operation.
	RecordDecompose(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(time.Duration, error)  {}
func (NoopMetricsCollector) RecordDecompose(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount       atomic.Int64
	GenerateErrors      atomic.Int64
	GenerateTotalNanos  atomic.Int64
	DecomposeCount      atomic.Int64
	DecomposeErrors     atomic.Int64
	DecomposeTotalNanos atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
	}
}

// RecordDecompose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecompose(duration time.Duration, err error) {
	b.DecomposeCount.Add(1)
	b.DecomposeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecomposeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:     b.GenerateCount.Load(),
		GenerateErrors:    b.GenerateErrors.Load(),
		GenerateAvgNanos:  b.getAvgGenerateNanos(),
		DecomposeCount:    b.DecomposeCount.Load(),
		DecomposeErrors:   b.DecomposeErrors.Load(),
		DecomposeAvgNanos: b.getAvgDecomposeNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgGenerateNanos() int64 {
	count := b.GenerateCount.Load()
	if count == 0 {
		return 0
	}
	return b.GenerateTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgDecomposeNanos() int64 {
	count := b.DecomposeCount.Load()
	if count == 0 {
		return 0
	}
	return b.DecomposeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateCount     int64
	GenerateErrors    int64
	GenerateAvgNanos  int64
	DecomposeCount    int64
	DecomposeErrors   int64
	DecomposeAvgNanos int64
}
