// Package utidtest provides testing utilities for utid.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic utid.Source implementations so that layouts
// containing random segments can be exercised with known bit patterns.
//
// # Deterministic Randomness
//
//	rng := utidtest.NewRNG(42)
//	composer, _ := utid.New(segments, utid.WithSource(rng))
//
// # Scripted Draws
//
//	src := utidtest.Seq(0x1111, 0x2222) // replays values, then repeats the last
//	src := utidtest.Const(0xFFFF)       // always the same word
//
// # Fake Clocks
//
// Timestamp segments take their time from a clockwork.Clock, so tests pair a
// scripted source with a fake clock:
//
//	clock := clockwork.NewFakeClockAt(epoch.Add(1234 * time.Millisecond))
//	composer, _ := utid.New(segments, utid.WithClock(clock), utid.WithSource(src))
package utidtest
