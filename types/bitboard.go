package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"lukechampine.com/uint128"
)

const (
	// Files and Ranks are the board dimensions.
	Files = 9
	Ranks = 9

	// TotalSquares is the number of on-board bit indices (0-80).
	TotalSquares = Files * Ranks

	// TotalBits is the width of a Bitboard.
	TotalBits = 128
)

var (
	// ErrInvalidBitboard represents an unparsable bitboard literal.
	ErrInvalidBitboard = errors.New("invalid bitboard")

	Empty = Bitboard{}
	Full  = Bitboard{v: uint128.Max}
)

// Bitboard is an immutable 128-bit set of bit indices, bit 0 being the least
// significant. Only indices 0-80 map onto the 9x9 board.
type Bitboard struct {
	v uint128.Uint128
}

func New(lo, hi uint64) Bitboard {
	return Bitboard{v: uint128.New(lo, hi)}
}

func From64(v uint64) Bitboard {
	return Bitboard{v: uint128.From64(v)}
}

func FromUint128(u uint128.Uint128) Bitboard {
	return Bitboard{v: u}
}

// FromBits returns a Bitboard with every given index set. It panics if an
// index is outside 0-127.
func FromBits(idx ...uint8) Bitboard {
	var bb Bitboard
	for _, i := range idx {
		bb = bb.With(i)
	}
	return bb
}

// Parse reads a decimal or 0x/0b/0o prefixed literal.
func Parse(s string) (Bitboard, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty, fmt.Errorf("%w: empty literal", ErrInvalidBitboard)
	}
	i, ok := new(big.Int).SetString(s, 0)
	switch {
	case !ok:
		return Empty, fmt.Errorf("%w: malformed literal %q", ErrInvalidBitboard, s)
	case i.Sign() < 0:
		return Empty, fmt.Errorf("%w: negative literal %q", ErrInvalidBitboard, s)
	case i.BitLen() > TotalBits:
		return Empty, fmt.Errorf("%w: literal %q overflows %d bits", ErrInvalidBitboard, s, TotalBits)
	}
	return Bitboard{v: uint128.FromBig(i)}, nil
}

func (bb Bitboard) Uint128() uint128.Uint128 {
	return bb.v
}

func (bb Bitboard) Lo() uint64 {
	return bb.v.Lo
}

func (bb Bitboard) Hi() uint64 {
	return bb.v.Hi
}

func (bb Bitboard) IsEmpty() bool {
	return bb.v.IsZero()
}

func (bb Bitboard) Equals(o Bitboard) bool {
	return bb.v.Equals(o.v)
}

func (bb Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{v: bb.v.And(o.v)}
}

func (bb Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{v: bb.v.Or(o.v)}
}

func (bb Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{v: bb.v.Xor(o.v)}
}

func (bb Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{v: uint128.New(bb.v.Lo&^o.v.Lo, bb.v.Hi&^o.v.Hi)}
}

func (bb Bitboard) Not() Bitboard {
	return Bitboard{v: uint128.New(^bb.v.Lo, ^bb.v.Hi)}
}

// Lsh shifts towards the most significant bit; bits shifted past 127 are lost.
func (bb Bitboard) Lsh(n uint) Bitboard {
	if n >= TotalBits {
		return Empty
	}
	return Bitboard{v: bb.v.Lsh(n)}
}

func (bb Bitboard) Rsh(n uint) Bitboard {
	if n >= TotalBits {
		return Empty
	}
	return Bitboard{v: bb.v.Rsh(n)}
}

// Has reports whether bit i is set. It panics if i is outside 0-127.
func (bb Bitboard) Has(i uint8) bool {
	return !bb.And(bit(i)).IsEmpty()
}

func (bb Bitboard) With(i uint8) Bitboard {
	return bb.Or(bit(i))
}

func (bb Bitboard) Without(i uint8) Bitboard {
	return bb.AndNot(bit(i))
}

// ClearLowest returns bb with its least significant set bit cleared (x & (x-1)).
func (bb Bitboard) ClearLowest() Bitboard {
	if bb.IsEmpty() {
		return bb
	}
	return Bitboard{v: bb.v.And(bb.v.SubWrap64(1))}
}

// String returns the hex representation, e.g. 0x1ff.
func (bb Bitboard) String() string {
	if bb.v.Hi == 0 {
		return fmt.Sprintf("0x%x", bb.v.Lo)
	}
	return fmt.Sprintf("0x%x%016x", bb.v.Hi, bb.v.Lo)
}

// Dump renders the on-board bits with file 9 on the left and rank a on top.
func (bb Bitboard) Dump(sym ...rune) string {
	s := "#"
	if len(sym) == 1 {
		s = string(sym[0])
	}
	builder := strings.Builder{}
	for rank := Ranks - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %c |", rune('i'-rank)))
		for file := Files - 1; file >= 0; file-- {
			if bb.Has(uint8(rank*Files + file)) {
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ---------------------------\n    ")
	for file := Files - 1; file >= 0; file-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d ", file+1))
	}
	return builder.String()
}

func bit(i uint8) Bitboard {
	if i >= TotalBits {
		panic(fmt.Sprintf("bit index out of range: %d", i))
	}
	return Bitboard{v: uint128.From64(1).Lsh(uint(i))}
}
