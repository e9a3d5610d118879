package utid

import (
	"lukechampine.com/uint128"
)

// RandomSegment encodes Width uniformly distributed bits on every Generate
// call. Masking whole 64-bit words from the Source to the declared width
// yields a uniform draw over [0, Bound()], so encoding never fails.
type RandomSegment struct {
	width  int
	source Source
}

// Random returns a segment of the given width filled with uniformly
// distributed bits. The width must be in [1, MaxWidth]; it is validated when
// the segment is handed to New.
func Random(width int) RandomSegment {
	return RandomSegment{width: width}
}

// WithSource returns a copy of the segment drawing from src. A nil source
// means the process-wide generator, which is safe for concurrent use.
func (s RandomSegment) WithSource(src Source) RandomSegment {
	s.source = src
	return s
}

// Width returns the number of bits the segment occupies.
func (s RandomSegment) Width() int { return s.width }

// Bound returns the largest raw value representable in Width bits.
func (s RandomSegment) Bound() uint128.Uint128 {
	return segmentBound(s.width)
}

// Encode draws a uniform value in [0, Bound()].
func (s RandomSegment) Encode() (uint128.Uint128, error) {
	src := s.source
	if src == nil {
		src = processSource{}
	}
	raw := uint128.From64(src.Uint64())
	if s.width > 64 {
		raw.Hi = src.Uint64()
	}
	return raw.And(s.Bound()), nil
}

// Decode is the identity: the raw bits are the value.
func (s RandomSegment) Decode(raw uint128.Uint128) uint128.Uint128 {
	return raw
}
