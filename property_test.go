package utid_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
	"pgregory.net/rapid"

	"github.com/itanoss/utid"
	"github.com/itanoss/utid/utidtest"
)

// TestComposer_RecomposeProperty checks that for arbitrary layouts of
// constant and random segments, decomposing a generated identifier yields
// in-bound raw values that pack back into the identical identifier.
func TestComposer_RecomposeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 6).Draw(t, "segments")

		remaining := utid.MaxWidth
		segments := make([]utid.Segment, 0, count)
		for i := 0; i < count; i++ {
			maxWidth := remaining - (count - i - 1)
			width := rapid.IntRange(1, maxWidth).Draw(t, fmt.Sprintf("width%d", i))
			remaining -= width

			if rapid.Bool().Draw(t, fmt.Sprintf("constant%d", i)) {
				bound := uint64(math.MaxUint64)
				if width < 64 {
					bound = uint64(1)<<width - 1
				}
				value := rapid.Uint64Range(0, bound).Draw(t, fmt.Sprintf("value%d", i))
				segments = append(segments, utid.Constant(width, value))
			} else {
				segments = append(segments, utid.Random(width))
			}
		}

		seed := rapid.Int64().Draw(t, "seed")
		composer, err := utid.New(segments, utid.WithSource(utidtest.NewRNG(seed)))
		require.NoError(t, err)

		id, err := composer.Generate()
		require.NoError(t, err)
		require.True(t, id.Cmp(composer.Bound()) <= 0)

		values, err := composer.Decompose(id)
		require.NoError(t, err)
		require.Len(t, values, count)

		acc := uint128.Zero
		for i, v := range values {
			seg := segments[i]
			require.True(t, v.Raw.Cmp(seg.Bound()) <= 0,
				"segment %d raw %s beyond bound %s", i, v.Raw, seg.Bound())

			if cs, ok := seg.(utid.ConstantSegment); ok {
				require.True(t, v.Raw.Equals(cs.Value()))
			}

			acc = acc.Lsh(uint(seg.Width())).Or(v.Raw)
		}

		require.True(t, acc.Equals(id.Uint128()),
			"recomposed %s does not match identifier %s", acc, id.Uint128())

		parsed, err := utid.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

// TestID_CodecProperty checks that every byte, hex and decimal conversion is
// a faithful roundtrip for arbitrary 128-bit values.
func TestID_CodecProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Uint64().Draw(t, "lo")
		hi := rapid.Uint64().Draw(t, "hi")

		id := utid.FromUint128(uint128.New(lo, hi))

		require.Equal(t, id, utid.FromBytes(id.Bytes()))
		require.Equal(t, id, utid.FromUUID(id.UUID()))

		parsed, err := utid.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)

		require.Len(t, id.Hex(), 32)
	})
}
