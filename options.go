package utid

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

type options struct {
	clock            clockwork.Clock
	source           Source
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Composer construction.
type Option func(*options)

// WithClock configures the clock for every timestamp segment that was not
// given its own via TimestampSegment.WithClock. Pass a fake clock in tests
// to script time; nil means the process wall clock.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSource configures the randomness source for every random segment that
// was not given its own via RandomSegment.WithSource. Pass a seeded or
// scripted Source in tests for deterministic identifiers; nil means the
// process-wide generator.
func WithSource(source Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// Generate and Decompose. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &utid.BasicMetricsCollector{}
//	c, _ := utid.New(segments, utid.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Generated: %d, Avg latency: %dns\n", stats.GenerateCount, stats.GenerateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := utid.NewJSONLogger(slog.LevelInfo)
//	c, _ := utid.New(segments, utid.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
