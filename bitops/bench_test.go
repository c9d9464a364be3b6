package bitops

import (
	"testing"

	"github.com/daystram/bitshogi/platform"
	"github.com/daystram/bitshogi/types"
)

var (
	sinkCount uint32
	sinkIndex uint8
)

func benchBoards(sparse bool) []types.Bitboard {
	r := types.NewPseudoRand(1)
	bbs := make([]types.Bitboard, 256)
	for i := range bbs {
		if sparse {
			bbs[i] = r.SparseBitboard()
		} else {
			bbs[i] = r.Bitboard()
		}
	}
	return bbs
}

func benchPopCount(b *testing.B, s platform.PopCountStrategy, sparse bool) {
	bbs := benchBoards(sparse)
	f := PopCountImplFor(s).PopCount
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkCount += f(bbs[i&0xFF])
	}
}

func BenchmarkPopCountHardware(b *testing.B) { benchPopCount(b, platform.PopCountHardware, false) }
func BenchmarkPopCountSWAR(b *testing.B) { benchPopCount(b, platform.PopCountSWAR, false) }
func BenchmarkPopCountTable_Dense(b *testing.B) { benchPopCount(b, platform.PopCountTable, false) }
func BenchmarkPopCountTable_Sparse(b *testing.B) { benchPopCount(b, platform.PopCountTable, true) }
func BenchmarkPopCountNaive_Sparse(b *testing.B) { benchPopCount(b, platform.PopCountNaive, true) }

func benchBitScan(b *testing.B, s platform.BitScanStrategy) {
	bbs := benchBoards(true)
	impl := BitScanImplFor(s)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, _ := impl.Forward(bbs[i&0xFF])
		r, _ := impl.Reverse(bbs[i&0xFF])
		sinkIndex += f ^ r
	}
}

func BenchmarkBitScanHardware(b *testing.B) { benchBitScan(b, platform.BitScanHardware) }
func BenchmarkBitScanDeBruijn(b *testing.B) { benchBitScan(b, platform.BitScanDeBruijn) }
func BenchmarkBitScanSoftware(b *testing.B) { benchBitScan(b, platform.BitScanSoftware) }

func benchPositions(b *testing.B, s platform.PositionsStrategy, sparse bool) {
	bbs := benchBoards(sparse)
	f := PositionsImplFor(s).Append
	buf := make([]uint8, 0, types.TotalBits)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = f(buf[:0], bbs[i&0xFF])
	}
}

func BenchmarkPositionsTable_Sparse(b *testing.B) {
	benchPositions(b, platform.PositionsTable, true)
}

func BenchmarkPositionsDeBruijn_Sparse(b *testing.B) {
	benchPositions(b, platform.PositionsDeBruijn, true)
}

func BenchmarkPositionsOptimized_Dense(b *testing.B) {
	benchPositions(b, platform.PositionsOptimized, false)
}

func BenchmarkBitIterator(b *testing.B) {
	bbs := benchBoards(false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := Bits(bbs[i&0xFF])
		for {
			idx, ok := it.Next()
			if !ok {
				break
			}
			sinkIndex ^= idx
		}
	}
}
