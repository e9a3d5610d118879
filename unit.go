package utid

import (
	"math"
	"time"

	"lukechampine.com/uint128"
)

// Unit is the granularity at which a Timestamp segment counts elapsed time.
// Its value is the length of one tick, so any positive duration works as a
// unit (sonyflake's 10 ms tick, for example). Zero or negative units are
// rejected at Composer construction.
type Unit time.Duration

// Canonical granularities.
const (
	Nanoseconds  = Unit(time.Nanosecond)
	Microseconds = Unit(time.Microsecond)
	Milliseconds = Unit(time.Millisecond)
	Seconds      = Unit(time.Second)
)

// Ticks converts d to a whole number of ticks, truncating toward zero.
// The unit must be positive.
func (u Unit) Ticks(d time.Duration) int64 {
	return int64(d / time.Duration(u))
}

// Duration converts a tick count back to a duration. Tick counts beyond what
// time.Duration can represent saturate at the maximum duration (~292 years
// at nanosecond resolution) instead of wrapping.
func (u Unit) Duration(ticks uint128.Uint128) time.Duration {
	if u <= 0 {
		return 0
	}
	maxTicks := uint64(math.MaxInt64 / int64(u))
	if ticks.Hi != 0 || ticks.Lo > maxTicks {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ticks.Lo) * time.Duration(u)
}

// String returns "s", "ms", "us" or "ns" for the canonical granularities and
// the duration notation for everything else.
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	default:
		return time.Duration(u).String()
	}
}
