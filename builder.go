// Package utid provides a segmented identifier composition library.
//
// This file implements the fluent builder API for assembling identifier layouts.
// Builders are immutable - each method returns a new builder with the updated configuration.
package utid

import (
	"time"

	"github.com/jonboulle/clockwork"
	"lukechampine.com/uint128"
)

// Compose creates a new layout builder.
//
// The builder is immutable - each method returns a new builder with the updated
// configuration. This ensures thread-safety and prevents accidental state sharing.
// Segments are appended most-significant first.
//
// Example:
//
//	c, err := utid.Compose().
//	    Timestamp(41, utid.Milliseconds, utid.TwitterEpoch).
//	    Constant(10, 42).
//	    Random(12).
//	    Build()
func Compose() Builder {
	return Builder{}
}

// Builder is an immutable fluent builder for creating Composer instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	segments []Segment
	clock    clockwork.Clock
	source   Source
	logger   *Logger
	metrics  MetricsCollector
}

// Segment appends a pre-configured segment to the layout.
func (b Builder) Segment(s Segment) Builder {
	segments := make([]Segment, len(b.segments), len(b.segments)+1)
	copy(segments, b.segments)
	b.segments = append(segments, s)
	return b
}

// Timestamp appends a timestamp segment counting unit ticks since epoch.
func (b Builder) Timestamp(width int, unit Unit, epoch time.Time) Builder {
	return b.Segment(Timestamp(width, unit, epoch))
}

// Random appends a segment of uniformly distributed bits.
func (b Builder) Random(width int) Builder {
	return b.Segment(Random(width))
}

// Constant appends a fixed-value segment.
func (b Builder) Constant(width int, value uint64) Builder {
	return b.Segment(Constant(width, value))
}

// Constant128 appends a fixed-value segment for values above 64 bits.
func (b Builder) Constant128(width int, value uint128.Uint128) Builder {
	return b.Segment(Constant128(width, value))
}

// Clock sets the clock for timestamp segments without one of their own.
func (b Builder) Clock(clock clockwork.Clock) Builder {
	b.clock = clock
	return b
}

// Source sets the randomness source for random segments without one of their own.
func (b Builder) Source(source Source) Builder {
	b.source = source
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the Composer.
func (b Builder) Build() (*Composer, error) {
	var optFns []Option
	if b.clock != nil {
		optFns = append(optFns, WithClock(b.clock))
	}
	if b.source != nil {
		optFns = append(optFns, WithSource(b.source))
	}
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}

	return New(b.segments, optFns...)
}

// MustBuild creates the Composer, panicking on error.
func (b Builder) MustBuild() *Composer {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
