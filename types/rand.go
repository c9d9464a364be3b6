package types

type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator. A zero seed would lock xorshift at zero, so it is
// replaced with a fixed non-zero constant.
func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	r.s = seed
}

func (r *PseudoRand) SparseUint64() uint64 {
	//nolint:staticcheck // SA4000 intentional
	return r.Uint64() & r.Uint64() & r.Uint64()
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func (r *PseudoRand) Bitboard() Bitboard {
	return New(r.Uint64(), r.Uint64())
}

// SparseBitboard averages 16 set bits out of 128.
func (r *PseudoRand) SparseBitboard() Bitboard {
	return New(r.SparseUint64(), r.SparseUint64())
}

// BoardBitboard returns a random subset of the 81 on-board squares.
func (r *PseudoRand) BoardBitboard() Bitboard {
	return New(r.Uint64(), r.Uint64()&(1<<(TotalSquares-HalfBits)-1))
}
