package bitops

import (
	"math/bits"

	"github.com/daystram/bitshogi/platform"
	"github.com/daystram/bitshogi/types"
)

const (
	swarM1  uint64 = 0x5555555555555555
	swarM2  uint64 = 0x3333333333333333
	swarM4  uint64 = 0x0f0f0f0f0f0f0f0f
	swarH01 uint64 = 0x0101010101010101
)

var hw = platform.Get()

// PopCountImpl is one member of the population count family.
type PopCountImpl struct {
	Strategy platform.PopCountStrategy
	PopCount func(types.Bitboard) uint32
}

var popCountImpls = [...]PopCountImpl{
	platform.PopCountHardware: {Strategy: platform.PopCountHardware, PopCount: PopCountHardware},
	platform.PopCountSWAR:     {Strategy: platform.PopCountSWAR, PopCount: PopCountSWAR},
	platform.PopCountTable:    {Strategy: platform.PopCountTable, PopCount: PopCountTable},
	platform.PopCountNaive:    {Strategy: platform.PopCountNaive, PopCount: PopCountNaive},
}

// BestPopCount returns the strategy preferred by the detected capabilities.
func BestPopCount() PopCountImpl {
	return PopCountImplFor(hw.PreferredPopCount)
}

func PopCountImplFor(s platform.PopCountStrategy) PopCountImpl {
	return popCountImpls[s]
}

// PopCountHardware uses the native population count instruction on each half,
// falling back to SWAR when the CPU lacks one.
func PopCountHardware(bb types.Bitboard) uint32 {
	if !hw.HasPopCount {
		return PopCountSWAR(bb)
	}
	return uint32(bits.OnesCount64(bb.Lo()) + bits.OnesCount64(bb.Hi()))
}

func PopCountSWAR(bb types.Bitboard) uint32 {
	return swar64(bb.Lo()) + swar64(bb.Hi())
}

func swar64(x uint64) uint32 {
	x -= (x >> 1) & swarM1
	x = (x & swarM2) + ((x >> 2) & swarM2)
	x = (x + (x >> 4)) & swarM4
	return uint32((x * swarH01) >> 56)
}

// PopCountTable consumes the value a nibble at a time until nothing is left.
func PopCountTable(bb types.Bitboard) uint32 {
	var n uint32
	for v := bb; !v.IsEmpty(); v = v.Rsh(4) {
		n += uint32(nibblePopCount[v.Lo()&0xF])
	}
	return n
}

func PopCountNaive(bb types.Bitboard) uint32 {
	var n uint32
	for v := bb; !v.IsEmpty(); v = v.ClearLowest() {
		n++
	}
	return n
}
