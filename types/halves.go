package types

// HalfBits is the width of one Half.
const HalfBits = 64

// Half is one 64-bit word of a Bitboard together with the bit offset of its
// least significant bit within the full 128-bit value.
type Half struct {
	Bits   uint64
	Offset uint8
}

// Halves splits bb into its low (offset 0) and high (offset 64) words.
func (bb Bitboard) Halves() [2]Half {
	return [2]Half{
		{Bits: bb.v.Lo, Offset: 0},
		{Bits: bb.v.Hi, Offset: HalfBits},
	}
}

// Lowest returns the least significant non-zero half. ok is false when bb is
// empty.
func (bb Bitboard) Lowest() (h Half, ok bool) {
	if bb.v.Lo != 0 {
		return Half{Bits: bb.v.Lo, Offset: 0}, true
	}
	if bb.v.Hi != 0 {
		return Half{Bits: bb.v.Hi, Offset: HalfBits}, true
	}
	return Half{}, false
}

// Highest returns the most significant non-zero half.
func (bb Bitboard) Highest() (h Half, ok bool) {
	if bb.v.Hi != 0 {
		return Half{Bits: bb.v.Hi, Offset: HalfBits}, true
	}
	if bb.v.Lo != 0 {
		return Half{Bits: bb.v.Lo, Offset: 0}, true
	}
	return Half{}, false
}
