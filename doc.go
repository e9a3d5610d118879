// Package utid composes fixed-width integer identifiers out of ordered
// bit-field segments, and decomposes them back into their per-segment values.
//
// An identifier layout is an ordered list of segments, most-significant
// first. Each segment owns a fixed number of bits and a rule for producing
// its raw value: elapsed time since an epoch (Timestamp), uniformly drawn
// bits (Random), or a configured constant (Constant). The Composer packs the
// segment values into one dense 128-bit integer and unpacks a stored
// identifier losslessly.
//
// # Quick Start
//
// Classic snowflake shape (41-bit milliseconds, 10-bit node, 12-bit random):
//
//	c, err := utid.Compose().
//	    Timestamp(41, utid.Milliseconds, utid.TwitterEpoch).
//	    Constant(10, 42).   // node id baked into the layout
//	    Random(12).
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
//	id, err := c.Generate()
//
// Recover the per-segment values later:
//
//	values, err := c.Decompose(id)
//	values[0].Instant  // when the identifier was generated
//	values[1].Uint64() // 42
//
// # Segments
//
// Three segment kinds cover the usual identifier shapes:
//
//   - Timestamp(width, unit, epoch): unit ticks elapsed since epoch,
//     truncated toward zero. Fails with ErrOverflow once the elapsed time no
//     longer fits the declared width.
//   - Random(width): width uniformly distributed bits. Never fails.
//   - Constant(width, value): a fixed value such as a node or shard id.
//     Fails with ErrOverflow if the value needs more than width bits.
//
// Widths must sum to at most 128. Well-known layouts (snowflake, sonyflake,
// ULID, UUIDv7) ship as presets; see SnowflakeLayout and friends.
//
// # Determinism and Testing
//
// Segments read external state through narrow, injectable collaborators: a
// clockwork.Clock for timestamps and a Source for randomness. Production
// defaults are the real clock and a concurrency-safe process-wide generator.
// Tests substitute a fake clock and a scripted Source:
//
//	clock := clockwork.NewFakeClockAt(epoch.Add(5 * time.Second))
//	c, _ := utid.New(segments, utid.WithClock(clock), utid.WithSource(utidtest.Seq(7)))
//
// # Error Handling
//
// Every width or range violation unwraps to ErrOverflow. Generation is
// atomic: the first failing segment aborts Generate with no partial
// identifier. An overflow is a configuration or clock-drift fault (epoch too
// old for the declared width), not a transient condition to retry.
//
// # Concurrency
//
// A Composer is immutable after construction and safe for concurrent use.
// Generate and Decompose are synchronous and non-blocking; the defaults for
// both collaborators are safe for concurrent callers.
package utid
