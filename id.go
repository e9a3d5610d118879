package utid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"lukechampine.com/uint128"
)

// ID is a composed 128-bit identifier. It is an immutable, comparable value;
// the zero ID is all zero bits.
//
// The byte form is 16 bytes big-endian, so byte-wise comparison preserves
// numeric order and, for layouts with a leading timestamp segment,
// chronological order.
type ID struct {
	n uint128.Uint128
}

// FromUint64 returns the ID holding v in its low 64 bits.
func FromUint64(v uint64) ID {
	return ID{n: uint128.From64(v)}
}

// FromUint128 returns the ID holding v.
func FromUint128(v uint128.Uint128) ID {
	return ID{n: v}
}

// FromBytes returns the ID encoded in b, big-endian.
func FromBytes(b [16]byte) ID {
	return ID{n: uint128.New(
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[0:8]),
	)}
}

// FromUUID returns the ID carrying the UUID's 128 bits.
func FromUUID(u uuid.UUID) ID {
	return FromBytes([16]byte(u))
}

// Parse parses a decimal identifier as produced by String.
func Parse(s string) (ID, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok || i.Sign() < 0 || i.BitLen() > MaxWidth {
		return ID{}, fmt.Errorf("utid: invalid identifier %q", s)
	}
	return ID{n: uint128.FromBig(i)}, nil
}

// Uint128 returns the identifier's 128-bit value.
func (id ID) Uint128() uint128.Uint128 { return id.n }

// Uint64 returns the low 64 bits and whether the identifier fits in them.
func (id ID) Uint64() (uint64, bool) {
	return id.n.Lo, id.n.Hi == 0
}

// Bytes returns the 16-byte big-endian representation.
func (id ID) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], id.n.Hi)
	binary.BigEndian.PutUint64(b[8:16], id.n.Lo)
	return b
}

// UUID returns the identifier's bits as a UUID. Whether the result is a
// conformant UUID depends on the layout; see UUIDv7Layout.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id.Bytes())
}

// Big returns the identifier as a new big.Int.
func (id ID) Big() *big.Int {
	return id.n.Big()
}

// Hex returns the 32-character lower-case hex form.
func (id ID) Hex() string {
	b := id.Bytes()
	return hex.EncodeToString(b[:])
}

// String returns the decimal form.
func (id ID) String() string {
	return id.n.String()
}

// Cmp returns -1, 0 or 1 depending on whether id is numerically below,
// equal to or above other.
func (id ID) Cmp(other ID) int {
	return id.n.Cmp(other.n)
}

// IsZero reports whether all bits are zero.
func (id ID) IsZero() bool {
	return id.n.IsZero()
}
