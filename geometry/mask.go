package geometry

import (
	"fmt"

	"github.com/daystram/bitshogi/position"
	"github.com/daystram/bitshogi/types"
)

const (
	Ranks     = position.MaxComponentScalar
	Files     = position.MaxComponentScalar
	Diagonals = 2*position.MaxComponentScalar - 3

	// diagonalOffset maps rank-file in [-7, 7] onto a diagonal index.
	diagonalOffset = int(position.MaxComponentScalar) - 2
)

var (
	// BoardMask holds the 81 on-board bits.
	BoardMask = newMask(0xFFFFFFFFFFFFFFFF, 0x1FFFF)

	maskRank = [Ranks]types.Bitboard{
		newMask(0x00000000000001FF, 0x00000),
		newMask(0x000000000003FE00, 0x00000),
		newMask(0x0000000007FC0000, 0x00000),
		newMask(0x0000000FF8000000, 0x00000),
		newMask(0x00001FF000000000, 0x00000),
		newMask(0x003FE00000000000, 0x00000),
		newMask(0x7FC0000000000000, 0x00000),
		newMask(0x8000000000000000, 0x000FF),
		newMask(0x0000000000000000, 0x1FF00),
	}
	maskFile = [Files]types.Bitboard{
		newMask(0x8040201008040201, 0x00100),
		newMask(0x0080402010080402, 0x00201),
		newMask(0x0100804020100804, 0x00402),
		newMask(0x0201008040201008, 0x00804),
		newMask(0x0402010080402010, 0x01008),
		newMask(0x0804020100804020, 0x02010),
		newMask(0x1008040201008040, 0x04020),
		newMask(0x2010080402010080, 0x08040),
		newMask(0x4020100804020100, 0x10080),
	}
	// maskDiagonal[d] holds the squares where rank-file == d-7. The two
	// single-square corner diagonals are left out.
	maskDiagonal = [Diagonals]types.Bitboard{
		newMask(0x0000000000020080, 0x00000),
		newMask(0x0000000004010040, 0x00000),
		newMask(0x0000000802008020, 0x00000),
		newMask(0x0000100401004010, 0x00000),
		newMask(0x0020080200802008, 0x00000),
		newMask(0x4010040100401004, 0x00000),
		newMask(0x2008020080200802, 0x00080),
		newMask(0x1004010040100401, 0x10040),
		newMask(0x0802008020080200, 0x08020),
		newMask(0x0401004010040000, 0x04010),
		newMask(0x0200802008000000, 0x02008),
		newMask(0x0100401000000000, 0x01004),
		newMask(0x0080200000000000, 0x00802),
		newMask(0x0040000000000000, 0x00401),
		newMask(0x8000000000000000, 0x00200),
	}
)

func newMask(lo, hi uint64) types.Bitboard {
	return types.New(lo, hi)
}

// RankMask returns the nine squares of rank 0 (rank i) through 8 (rank a).
func RankMask(rank uint8) types.Bitboard {
	if rank >= Ranks {
		panic(fmt.Sprintf("rank %d out of range", rank))
	}
	return maskRank[rank]
}

// FileMask returns the nine squares of file 0 (file 1) through 8 (file 9).
func FileMask(file uint8) types.Bitboard {
	if file >= Files {
		panic(fmt.Sprintf("file %d out of range", file))
	}
	return maskFile[file]
}

func DiagonalMask(d uint8) types.Bitboard {
	if d >= Diagonals {
		panic(fmt.Sprintf("diagonal %d out of range", d))
	}
	return maskDiagonal[d]
}

func SquareMask(sq uint8) types.Bitboard {
	mustSquare(sq)
	return types.FromBits(sq)
}

func SquareFromRankFile(rank, file uint8) uint8 {
	return position.CoordsToBit(rank, file)
}

func RankOfSquare(sq uint8) uint8 {
	mustSquare(sq)
	return sq / Files
}

func FileOfSquare(sq uint8) uint8 {
	mustSquare(sq)
	return sq % Files
}

// DiagonalOfSquare reports which diagonal mask holds sq. The two corner
// squares 9i and 1a sit on no stored diagonal.
func DiagonalOfSquare(sq uint8) (uint8, bool) {
	d := int(RankOfSquare(sq)) - int(FileOfSquare(sq)) + diagonalOffset
	if d < 0 || d >= int(Diagonals) {
		return 0, false
	}
	return uint8(d), true
}

func SameRank(a, b uint8) bool {
	return RankOfSquare(a) == RankOfSquare(b)
}

func SameFile(a, b uint8) bool {
	return FileOfSquare(a) == FileOfSquare(b)
}

// SameDiagonal reports whether a and b share a diagonal in either direction.
func SameDiagonal(a, b uint8) bool {
	dr := int(RankOfSquare(a)) - int(RankOfSquare(b))
	df := int(FileOfSquare(a)) - int(FileOfSquare(b))
	return dr == df || dr == -df
}

func mustSquare(sq uint8) {
	if sq >= position.TotalSquares {
		panic(fmt.Sprintf("square %d out of range", sq))
	}
}
