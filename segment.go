package utid

import (
	"lukechampine.com/uint128"
)

// MaxWidth is the bit capacity of a composed identifier. Segment widths must
// sum to at most MaxWidth.
const MaxWidth = 128

// Segment is one bit-field within a composed identifier. A segment owns a
// fixed width and a rule for producing its raw value on each Generate call.
//
// The built-in kinds are TimestampSegment, RandomSegment and
// ConstantSegment. Custom implementations are allowed; Encode must return a
// value within Bound or Generate fails with ErrOverflow.
type Segment interface {
	// Width returns the number of bits the segment occupies, in [1, MaxWidth].
	Width() int

	// Bound returns the largest raw value representable in Width bits,
	// 2^width - 1. For the full 128-bit width this is the unsigned maximum.
	Bound() uint128.Uint128

	// Encode produces the raw value for one Generate call.
	Encode() (uint128.Uint128, error)
}

// segmentBound computes 2^width - 1 without overflow. The width must already
// be validated to [1, MaxWidth].
func segmentBound(width int) uint128.Uint128 {
	return uint128.Max.Rsh(uint(MaxWidth - width))
}
