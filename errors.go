package utid

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

var (
	// ErrOverflow is returned when a raw value would exceed the bits reserved
	// for it: a Constant value too large for its width, a Timestamp whose
	// elapsed time no longer fits, or a layout whose widths sum beyond the
	// 128-bit container. Every width or range violation satisfies
	// errors.Is(err, ErrOverflow).
	ErrOverflow = errors.New("segment overflow")
)

// OverflowError reports the raw value that did not fit a segment's width.
//
// It unwraps to ErrOverflow; use errors.As to recover the offending value
// and bound.
type OverflowError struct {
	Width int
	Value uint128.Uint128
	Bound uint128.Uint128
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("segment overflow: value %s exceeds %s (width %d)", e.Value, e.Bound, e.Width)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// newOverflowError builds the typed carrier for a raw value/bound violation.
func newOverflowError(width int, value, bound uint128.Uint128) *OverflowError {
	return &OverflowError{Width: width, Value: value, Bound: bound}
}
