package utidtest

import (
	"math/rand"
	"sync"

	"github.com/itanoss/utid"
)

// Compile-time checks that every helper satisfies utid.Source.
var (
	_ utid.Source = (*RNG)(nil)
	_ utid.Source = (*SeqSource)(nil)
	_ utid.Source = ConstSource(0)
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// SeqSource replays a fixed sequence of words and then repeats the last one.
// It is thread-safe.
type SeqSource struct {
	mu     sync.Mutex
	values []uint64
	next   int
	draws  int
}

// Seq creates a SeqSource that yields the given words in order. Once the
// sequence is exhausted the last word repeats forever; an empty sequence
// yields zero.
func Seq(values ...uint64) *SeqSource {
	return &SeqSource{values: values}
}

// Uint64 returns the next scripted word.
func (s *SeqSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draws++

	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}

	return v
}

// Draws returns how many words have been drawn so far.
func (s *SeqSource) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}

// Reset rewinds the sequence to its first word and clears the draw count.
func (s *SeqSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
	s.draws = 0
}

// ConstSource yields the same word on every draw.
type ConstSource uint64

// Const creates a ConstSource that always yields v.
func Const(v uint64) ConstSource {
	return ConstSource(v)
}

// Uint64 returns the constant word.
func (c ConstSource) Uint64() uint64 {
	return uint64(c)
}
