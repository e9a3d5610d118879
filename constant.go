package utid

import (
	"lukechampine.com/uint128"
)

// ConstantSegment encodes a fixed value on every Generate call. Constants
// are the usual carrier for node, shard or datacenter identifiers baked into
// a layout.
type ConstantSegment struct {
	width int
	value uint128.Uint128
}

// Constant returns a segment of the given width carrying a fixed value.
// The width must be in [1, MaxWidth]; it is validated when the segment is
// handed to New. A value that needs more than width bits is reported as
// ErrOverflow by Encode, never silently truncated.
func Constant(width int, value uint64) ConstantSegment {
	return ConstantSegment{width: width, value: uint128.From64(value)}
}

// Constant128 is Constant for values above 64 bits.
func Constant128(width int, value uint128.Uint128) ConstantSegment {
	return ConstantSegment{width: width, value: value}
}

// Width returns the number of bits the segment occupies.
func (s ConstantSegment) Width() int { return s.width }

// Value returns the configured constant.
func (s ConstantSegment) Value() uint128.Uint128 { return s.value }

// Bound returns the largest raw value representable in Width bits.
func (s ConstantSegment) Bound() uint128.Uint128 {
	return segmentBound(s.width)
}

// Encode returns the configured value, or ErrOverflow if it exceeds Bound().
func (s ConstantSegment) Encode() (uint128.Uint128, error) {
	if bound := s.Bound(); s.value.Cmp(bound) > 0 {
		return uint128.Zero, newOverflowError(s.width, s.value, bound)
	}
	return s.value, nil
}

// Decode is the identity: the raw bits are the value.
func (s ConstantSegment) Decode(raw uint128.Uint128) uint128.Uint128 {
	return raw
}
