package utid

import "time"

// Preset layouts for well-known identifier shapes. The composer never picks
// a layout on its own; these helpers only save the caller the bit counting
// for the common ones. Each returns a fresh []Segment for New or
// Builder.Segment.

var (
	// TwitterEpoch is the epoch of the original snowflake deployment,
	// 2010-11-04T01:42:54.657Z.
	TwitterEpoch = time.UnixMilli(1288834974657).UTC()

	// SonyflakeEpoch is the default sonyflake start time, 2014-09-01T00:00:00Z.
	SonyflakeEpoch = time.Date(2014, time.September, 1, 0, 0, 0, 0, time.UTC)

	// UnixEpoch is 1970-01-01T00:00:00Z, the epoch of ULID and UUIDv7
	// timestamps.
	UnixEpoch = time.UnixMilli(0).UTC()
)

// SnowflakeLayout returns the classic snowflake shape: 41 bits of
// milliseconds since TwitterEpoch, a 10-bit constant node id and 12 random
// bits where the original keeps a per-process sequence. The composer does
// not coordinate uniqueness across processes; random low bits make
// same-millisecond collisions unlikely rather than impossible.
//
// A node above 10 bits is reported by Generate as ErrOverflow.
func SnowflakeLayout(node uint64) []Segment {
	return []Segment{
		Timestamp(41, Milliseconds, TwitterEpoch),
		Constant(10, node),
		Random(12),
	}
}

// SonyflakeLayout returns the sonyflake shape: 39 bits of 10 ms ticks since
// SonyflakeEpoch, 8 random bits in place of the sequence and a 16-bit
// constant machine id.
func SonyflakeLayout(machine uint16) []Segment {
	return []Segment{
		Timestamp(39, Unit(10*time.Millisecond), SonyflakeEpoch),
		Random(8),
		Constant(16, uint64(machine)),
	}
}

// ULIDLayout returns the ULID shape: 48 bits of milliseconds since the Unix
// epoch followed by 80 random bits.
func ULIDLayout() []Segment {
	return []Segment{
		Timestamp(48, Milliseconds, UnixEpoch),
		Random(80),
	}
}

// UUIDv7Layout returns the RFC 9562 UUIDv7 shape: 48 bits of milliseconds
// since the Unix epoch, the version nibble, 12 random bits, the variant bits
// and 62 more random bits. ID.UUID of a generated identifier is a conformant
// UUIDv7.
func UUIDv7Layout() []Segment {
	return []Segment{
		Timestamp(48, Milliseconds, UnixEpoch),
		Constant(4, 0b0111),
		Random(12),
		Constant(2, 0b10),
		Random(62),
	}
}
