package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/bitshogi/position"
	"github.com/daystram/bitshogi/types"
)

var (
	drawLabel = color.New(color.Bold)
	drawLight = color.New(color.FgBlack, color.BgHiGreen)
	drawDark  = color.New(color.FgBlack, color.BgGreen)
	drawSet   = color.New(color.FgBlack, color.BgHiYellow, color.Bold)
)

// drawBitboard renders the 81 board squares in diagram orientation, rank a
// on top and file 9 on the left. Bits above 80 are not shown.
func drawBitboard(bb types.Bitboard) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString("   ")
	for col := uint8(0); col < position.MaxComponentScalar; col++ {
		file := position.MaxComponentScalar - 1 - col
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", position.NotationComponentFile(file)))
	}
	_, _ = builder.WriteString("\n")
	for row := uint8(0); row < position.MaxComponentScalar; row++ {
		for col := uint8(0); col < position.MaxComponentScalar; col++ {
			bit := position.SquareToBit(position.Square{Row: row, Col: col})
			cell := drawDark
			if (row+col)%2 == 0 {
				cell = drawLight
			}
			sym := " "
			if bb.Has(bit) {
				cell, sym = drawSet, "*"
			}
			if col == 0 {
				_, _ = builder.WriteString("   ")
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		rank := position.MaxComponentScalar - 1 - row
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s", position.NotationComponentRank(rank)))
		if row < position.MaxComponentScalar-1 {
			_, _ = builder.WriteString("\n")
		}
	}
	return builder.String()
}
