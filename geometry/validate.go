package geometry

import (
	"github.com/daystram/bitshogi/types"
)

// ValidateMasks rebuilds every rank, file and diagonal mask square by square
// and compares it against the stored table. It also checks that masks of the
// same kind never overlap and that ranks and files each tile the board.
func ValidateMasks() bool {
	var ranks [Ranks]types.Bitboard
	var files [Files]types.Bitboard
	var diagonals [Diagonals]types.Bitboard
	board := types.Empty
	for r := uint8(0); r < Ranks; r++ {
		for f := uint8(0); f < Files; f++ {
			sq := r*Files + f
			ranks[r] = ranks[r].With(sq)
			files[f] = files[f].With(sq)
			if d := int(r) - int(f) + diagonalOffset; d >= 0 && d < int(Diagonals) {
				diagonals[d] = diagonals[d].With(sq)
			}
			board = board.With(sq)
		}
	}

	if board != BoardMask {
		return false
	}
	if ranks != maskRank || files != maskFile || diagonals != maskDiagonal {
		return false
	}
	return tiles(maskRank[:], BoardMask) && tiles(maskFile[:], BoardMask) && tiles(maskDiagonal[:], types.Empty)
}

// tiles reports whether masks are pairwise disjoint and, when cover is not
// empty, whether their union equals cover.
func tiles(masks []types.Bitboard, cover types.Bitboard) bool {
	union := types.Empty
	for _, m := range masks {
		if !union.And(m).IsEmpty() {
			return false
		}
		union = union.Or(m)
	}
	return cover.IsEmpty() || union == cover
}
