package bitops

import (
	"math/bits"

	"github.com/daystram/bitshogi/platform"
	"github.com/daystram/bitshogi/types"
)

// BitScanImpl is one member of the bit scan family. Forward and Reverse return
// false for an empty bitboard.
type BitScanImpl struct {
	Strategy platform.BitScanStrategy
	Forward  func(types.Bitboard) (uint8, bool)
	Reverse  func(types.Bitboard) (uint8, bool)
}

var bitScanImpls = [...]BitScanImpl{
	platform.BitScanHardware: {
		Strategy: platform.BitScanHardware,
		Forward:  BitScanForwardHardware,
		Reverse:  BitScanReverseHardware,
	},
	platform.BitScanDeBruijn: {
		Strategy: platform.BitScanDeBruijn,
		Forward:  BitScanForwardDeBruijn,
		Reverse:  BitScanReverseDeBruijn,
	},
	platform.BitScanSoftware: {
		Strategy: platform.BitScanSoftware,
		Forward:  BitScanForwardSoftware,
		Reverse:  BitScanReverseSoftware,
	},
}

// BestBitScan returns the strategy preferred by the detected capabilities.
func BestBitScan() BitScanImpl {
	return BitScanImplFor(hw.PreferredBitScan)
}

func BitScanImplFor(s platform.BitScanStrategy) BitScanImpl {
	return bitScanImpls[s]
}

func BitScanForwardHardware(bb types.Bitboard) (uint8, bool) {
	if !hw.HasBitScan {
		return BitScanForwardDeBruijn(bb)
	}
	h, ok := bb.Lowest()
	if !ok {
		return 0, false
	}
	return h.Offset + uint8(bits.TrailingZeros64(h.Bits)), true
}

func BitScanReverseHardware(bb types.Bitboard) (uint8, bool) {
	if !hw.HasBitScan {
		return BitScanReverseDeBruijn(bb)
	}
	h, ok := bb.Highest()
	if !ok {
		return 0, false
	}
	return h.Offset + uint8(63-bits.LeadingZeros64(h.Bits)), true
}

func BitScanForwardDeBruijn(bb types.Bitboard) (uint8, bool) {
	h, ok := bb.Lowest()
	if !ok {
		return 0, false
	}
	return h.Offset + deBruijnIndex[deBruijnHash(h.Bits&-h.Bits)], true
}

// BitScanReverseDeBruijn smears the highest set bit downwards so that
// x ^ (x >> 1) isolates it, then hashes it like the forward scan.
func BitScanReverseDeBruijn(bb types.Bitboard) (uint8, bool) {
	h, ok := bb.Highest()
	if !ok {
		return 0, false
	}
	x := h.Bits
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return h.Offset + deBruijnIndex[deBruijnHash(x^(x>>1))], true
}

func BitScanForwardSoftware(bb types.Bitboard) (uint8, bool) {
	for _, h := range bb.Halves() {
		for i := uint8(0); i < types.HalfBits; i++ {
			if h.Bits&(1<<i) != 0 {
				return h.Offset + i, true
			}
		}
	}
	return 0, false
}

func BitScanReverseSoftware(bb types.Bitboard) (uint8, bool) {
	halves := bb.Halves()
	for j := len(halves) - 1; j >= 0; j-- {
		h := halves[j]
		for i := int(types.HalfBits) - 1; i >= 0; i-- {
			if h.Bits&(1<<uint(i)) != 0 {
				return h.Offset + uint8(i), true
			}
		}
	}
	return 0, false
}
