package utid

import (
	"fmt"
	"time"

	"lukechampine.com/uint128"
)

// Composer packs an ordered list of segments into 128-bit identifiers and
// unpacks stored identifiers back into per-segment values.
//
// The segment order is most-significant first: the first segment ends up in
// the identifier's high bits. A Composer is immutable after New and safe for
// concurrent use; concurrent Generate calls do not interfere as long as the
// configured clock and Source are themselves safe for concurrent use (the
// defaults are).
type Composer struct {
	segments []Segment
	width    int
	metrics  MetricsCollector
	logger   *Logger
}

// New builds a Composer from segments, ordered most-significant first.
//
// Construction fails with an ErrOverflow-kind error when the list is empty,
// a width falls outside [1, MaxWidth], a timestamp unit is not positive, or
// the widths sum beyond MaxWidth. The slice is copied; Composer-level
// WithClock and WithSource options fill in segments that were not given
// their own collaborator, with the per-segment setting winning.
func New(segments []Segment, optFns ...Option) (*Composer, error) {
	opts := applyOptions(optFns)

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: layout needs at least one segment", ErrOverflow)
	}

	width := 0
	owned := make([]Segment, len(segments))
	for i, seg := range segments {
		if seg == nil {
			return nil, fmt.Errorf("utid: segment %d is nil", i)
		}
		w := seg.Width()
		if w < 1 || w > MaxWidth {
			return nil, fmt.Errorf("%w: segment %d width %d outside [1, %d]", ErrOverflow, i, w, MaxWidth)
		}
		width += w

		switch s := seg.(type) {
		case TimestampSegment:
			if s.unit <= 0 {
				return nil, fmt.Errorf("%w: segment %d unit must be positive, got %v", ErrOverflow, i, time.Duration(s.unit))
			}
			if s.clock == nil && opts.clock != nil {
				seg = s.WithClock(opts.clock)
			}
		case RandomSegment:
			if s.source == nil && opts.source != nil {
				seg = s.WithSource(opts.source)
			}
		}
		owned[i] = seg
	}
	if width > MaxWidth {
		return nil, fmt.Errorf("%w: segment widths sum to %d, exceeding %d", ErrOverflow, width, MaxWidth)
	}

	return &Composer{
		segments: owned,
		width:    width,
		metrics:  opts.metricsCollector,
		logger:   opts.logger,
	}, nil
}

// Generate produces a fresh identifier by encoding every segment and packing
// the raw values at their bit offsets. The first segment failure aborts with
// no partial identifier.
func (c *Composer) Generate() (ID, error) {
	start := time.Now()
	id, err := c.generate()
	duration := time.Since(start)
	c.metrics.RecordGenerate(duration, err)
	c.logger.LogGenerate(id, err)
	return id, err
}

func (c *Composer) generate() (ID, error) {
	var acc uint128.Uint128
	shift := 0
	for i := len(c.segments) - 1; i >= 0; i-- {
		seg := c.segments[i]
		raw, err := seg.Encode()
		if err != nil {
			return ID{}, fmt.Errorf("segment %d: %w", i, err)
		}
		// Encode of the built-in segments never exceeds Bound, but custom
		// Segment implementations get re-checked before merging.
		if bound := seg.Bound(); raw.Cmp(bound) > 0 {
			return ID{}, fmt.Errorf("segment %d: %w", i, newOverflowError(seg.Width(), raw, bound))
		}
		acc = acc.Or(raw.Lsh(uint(shift)))
		shift += seg.Width()
	}
	return ID{n: acc}, nil
}

// Decompose unpacks an identifier produced by a compatible layout into one
// Value per segment, in the layout's most-significant-first order.
//
// Decoding is defensive: bits above the layout's summed width mean the
// identifier cannot have come from this layout, and an ErrOverflow-kind
// error is returned. Mismatches that leave the high bits clean are not
// detectable and remain the caller's responsibility.
func (c *Composer) Decompose(id ID) ([]Value, error) {
	start := time.Now()
	values, err := c.decompose(id)
	duration := time.Since(start)
	c.metrics.RecordDecompose(duration, err)
	c.logger.LogDecompose(id, len(values), err)
	return values, err
}

func (c *Composer) decompose(id ID) ([]Value, error) {
	rest := id.n
	values := make([]Value, len(c.segments))
	for i := len(c.segments) - 1; i >= 0; i-- {
		seg := c.segments[i]
		raw := rest.And(seg.Bound())

		v := Value{Segment: seg, Raw: raw}
		if ts, ok := seg.(TimestampSegment); ok {
			v.Instant = ts.Decode(raw)
		}
		values[i] = v

		rest = rest.Rsh(uint(seg.Width()))
	}
	if !rest.IsZero() {
		return nil, fmt.Errorf("%w: identifier has bits above the %d-bit layout", ErrOverflow, c.width)
	}
	return values, nil
}

// Width returns the summed segment widths.
func (c *Composer) Width() int { return c.width }

// Bound returns the largest identifier the layout can produce, 2^Width - 1.
func (c *Composer) Bound() ID {
	return ID{n: segmentBound(c.width)}
}

// Segments returns a copy of the layout, most-significant first.
func (c *Composer) Segments() []Segment {
	segments := make([]Segment, len(c.segments))
	copy(segments, c.segments)
	return segments
}

// Value is one decoded segment value.
type Value struct {
	// Segment is the layout segment the value was extracted for.
	Segment Segment

	// Raw is the bits the segment occupied in the identifier.
	Raw uint128.Uint128

	// Instant is the decoded absolute instant. It is set only for timestamp
	// segments; random and constant segments decode to Raw itself.
	Instant time.Time
}

// Uint64 returns the low 64 bits of Raw, which is the whole value for
// segments up to 64 bits wide.
func (v Value) Uint64() uint64 {
	return v.Raw.Lo
}
