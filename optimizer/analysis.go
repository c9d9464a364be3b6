package optimizer

import (
	"github.com/daystram/bitshogi/geometry"
	"github.com/daystram/bitshogi/types"
	"golang.org/x/exp/constraints"
)

// GeometricAnalysis breaks a bitboard down by line. Bits outside the 81
// board squares count towards Total but not towards any line.
type GeometricAnalysis struct {
	Total          uint32                     `json:"total"`
	MinBit         uint8                      `json:"min_bit"`
	MaxBit         uint8                      `json:"max_bit"`
	RankCounts     [geometry.Ranks]uint32     `json:"rank_counts"`
	FileCounts     [geometry.Files]uint32     `json:"file_counts"`
	DiagonalCounts [geometry.Diagonals]uint32 `json:"diagonal_counts"`
}

func (o *Optimizer) AnalyzeGeometry(bb types.Bitboard) GeometricAnalysis {
	a := GeometricAnalysis{
		Total: o.PopCount(bb),
	}
	if a.Total == 0 {
		return a
	}
	a.MinBit, _ = o.BitScanForward(bb)
	a.MaxBit, _ = o.BitScanReverse(bb)

	board := bb.And(geometry.BoardMask)
	for i := uint8(0); i < geometry.Ranks; i++ {
		a.RankCounts[i] = o.PopCount(board.And(geometry.RankMask(i)))
		a.FileCounts[i] = o.PopCount(board.And(geometry.FileMask(i)))
	}
	for d := uint8(0); d < geometry.Diagonals; d++ {
		a.DiagonalCounts[d] = o.PopCount(board.And(geometry.DiagonalMask(d)))
	}
	return a
}

func AnalyzeGeometry(bb types.Bitboard) GeometricAnalysis {
	return Default().AnalyzeGeometry(bb)
}

func (a GeometricAnalysis) IsEmpty() bool {
	return a.Total == 0
}

// DensestRank returns the rank with the most set bits, preferring the lowest
// index on ties.
func (a GeometricAnalysis) DensestRank() (uint8, uint32) {
	return argmax(a.RankCounts[:])
}

func (a GeometricAnalysis) DensestFile() (uint8, uint32) {
	return argmax(a.FileCounts[:])
}

func (a GeometricAnalysis) DensestDiagonal() (uint8, uint32) {
	return argmax(a.DiagonalCounts[:])
}

// HasFullLine reports whether any rank, file or stored diagonal is fully
// occupied.
func (a GeometricAnalysis) HasFullLine() bool {
	for i := 0; i < int(geometry.Ranks); i++ {
		if a.RankCounts[i] == uint32(geometry.Files) || a.FileCounts[i] == uint32(geometry.Ranks) {
			return true
		}
	}
	for d, n := range a.DiagonalCounts {
		if n == uint32(geometry.DiagonalMask(uint8(d)).Uint128().OnesCount()) {
			return true
		}
	}
	return false
}

func argmax[T constraints.Ordered](xs []T) (uint8, T) {
	var best uint8
	for i := range xs {
		if xs[i] > xs[best] {
			best = uint8(i)
		}
	}
	return best, xs[best]
}
