package bitops

import (
	"math/bits"

	"github.com/daystram/bitshogi/platform"
	"github.com/daystram/bitshogi/types"
)

// All position enumerations yield indices in ascending order. The Append
// variants reuse dst so callers on the hot path can avoid allocation.
type PositionsImpl struct {
	Strategy  platform.PositionsStrategy
	Positions func(types.Bitboard) []uint8
	Append    func([]uint8, types.Bitboard) []uint8
}

var positionsImpls = [...]PositionsImpl{
	platform.PositionsTable: {
		Strategy:  platform.PositionsTable,
		Positions: PositionsTable,
		Append:    AppendPositionsTable,
	},
	platform.PositionsDeBruijn: {
		Strategy:  platform.PositionsDeBruijn,
		Positions: PositionsDeBruijn,
		Append:    AppendPositionsDeBruijn,
	},
	platform.PositionsOptimized: {
		Strategy:  platform.PositionsOptimized,
		Positions: PositionsOptimized,
		Append:    AppendPositionsOptimized,
	},
}

func PositionsImplFor(s platform.PositionsStrategy) PositionsImpl {
	return positionsImpls[s]
}

func PositionsTable(bb types.Bitboard) []uint8 {
	return AppendPositionsTable(make([]uint8, 0, PopCountHardware(bb)), bb)
}

func PositionsDeBruijn(bb types.Bitboard) []uint8 {
	return AppendPositionsDeBruijn(make([]uint8, 0, PopCountHardware(bb)), bb)
}

func PositionsOptimized(bb types.Bitboard) []uint8 {
	return AppendPositionsOptimized(make([]uint8, 0, PopCountHardware(bb)), bb)
}

// AppendPositionsTable walks each half a nibble at a time, expanding each
// nibble through the 4-bit position table.
func AppendPositionsTable(dst []uint8, bb types.Bitboard) []uint8 {
	for _, h := range bb.Halves() {
		base := h.Offset
		for x := h.Bits; x != 0; x >>= 4 {
			nib := x & 0xF
			for k := uint8(0); k < nibblePopCount[nib]; k++ {
				dst = append(dst, base+nibblePositions[nib][k])
			}
			base += 4
		}
	}
	return dst
}

func AppendPositionsDeBruijn(dst []uint8, bb types.Bitboard) []uint8 {
	for v := bb; ; v = v.ClearLowest() {
		i, ok := BitScanForwardDeBruijn(v)
		if !ok {
			return dst
		}
		dst = append(dst, i)
	}
}

func AppendPositionsOptimized(dst []uint8, bb types.Bitboard) []uint8 {
	for _, h := range bb.Halves() {
		for x := h.Bits; x != 0; x &= x - 1 {
			dst = append(dst, h.Offset+uint8(bits.TrailingZeros64(x)))
		}
	}
	return dst
}
