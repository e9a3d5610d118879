package utid

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies uniformly distributed 64-bit words for random segments.
// It is deliberately the same shape as math/rand/v2's Source, so any of its
// generators plugs in directly. Sources shared across concurrent Generate
// calls must be safe for concurrent use.
type Source interface {
	Uint64() uint64
}

// processSource is the default Source: the process-wide math/rand/v2
// generator, which is safe for concurrent use.
type processSource struct{}

func (processSource) Uint64() uint64 { return rand.Uint64() }

// CryptoSource draws words from crypto/rand. Use it when identifiers must be
// unpredictable; the default source is seeded randomly but not
// cryptographically strong.
type CryptoSource struct{}

// Uint64 implements Source.
func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read is documented to never fail.
		panic(err)
	}
	return binary.BigEndian.Uint64(b[:])
}
