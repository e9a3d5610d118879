package utid

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"lukechampine.com/uint128"
)

// TimestampSegment encodes the number of unit ticks elapsed since an epoch.
//
// Encoding truncates toward zero, so an identifier generated 1999 µs after
// the epoch carries raw value 1 at millisecond granularity. Decoding maps
// the raw tick count back to the absolute instant epoch + ticks*unit; the
// truncation is the only lossy step.
type TimestampSegment struct {
	width int
	unit  Unit
	epoch time.Time
	clock clockwork.Clock
}

// Timestamp returns a segment of the given width counting unit ticks elapsed
// since epoch. The width must be in [1, MaxWidth] and the unit positive;
// both are validated when the segment is handed to New.
func Timestamp(width int, unit Unit, epoch time.Time) TimestampSegment {
	return TimestampSegment{width: width, unit: unit, epoch: epoch}
}

// WithClock returns a copy of the segment that reads time from clock.
// A nil clock means the process wall clock.
func (s TimestampSegment) WithClock(clock clockwork.Clock) TimestampSegment {
	s.clock = clock
	return s
}

// Width returns the number of bits the segment occupies.
func (s TimestampSegment) Width() int { return s.width }

// Unit returns the configured granularity.
func (s TimestampSegment) Unit() Unit { return s.unit }

// Epoch returns the instant the segment measures elapsed time from.
func (s TimestampSegment) Epoch() time.Time { return s.epoch }

// Bound returns the largest raw tick count representable in Width bits.
func (s TimestampSegment) Bound() uint128.Uint128 {
	return segmentBound(s.width)
}

// Latest returns the latest absolute instant the segment can represent:
// epoch + Bound() ticks, capped at the maximum duration Go can represent.
func (s TimestampSegment) Latest() time.Time {
	return s.epoch.Add(s.unit.Duration(s.Bound()))
}

// Encode returns the elapsed tick count. It fails with ErrOverflow when the
// clock reads before the epoch or when the elapsed time exceeds Bound(),
// meaning the epoch is too old for the declared width.
func (s TimestampSegment) Encode() (uint128.Uint128, error) {
	now := s.now()
	elapsed := now.Sub(s.epoch)
	if elapsed < 0 {
		return uint128.Zero, fmt.Errorf("%w: clock %v precedes epoch %v", ErrOverflow, now, s.epoch)
	}
	raw := uint128.From64(uint64(s.unit.Ticks(elapsed)))
	if bound := s.Bound(); raw.Cmp(bound) > 0 {
		return uint128.Zero, newOverflowError(s.width, raw, bound)
	}
	return raw, nil
}

// Decode maps a raw tick count back to the absolute instant it was encoded
// from, up to the granularity's truncation.
func (s TimestampSegment) Decode(raw uint128.Uint128) time.Time {
	return s.epoch.Add(s.unit.Duration(raw))
}

func (s TimestampSegment) now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return time.Now()
}
