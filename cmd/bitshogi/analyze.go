package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sugawarayuuta/sonnet"

	"github.com/daystram/bitshogi/optimizer"
	"github.com/daystram/bitshogi/position"
	"github.com/daystram/bitshogi/types"
)

var errNoSquares = errors.New("no squares given")

func analyze(args []string, asJSON bool) error {
	bb, err := parseBitboard(args)
	if err != nil {
		return err
	}
	o := optimizer.NewOptimizer(&optimizer.OptimizerConfig{
		Logger: func(a ...any) { log.Println(a...) },
	})
	a := o.AnalyzeGeometry(bb)

	if asJSON {
		b, err := sonnet.Marshal(a)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	log.Println("============ analyze:", bb)
	fmt.Println(drawBitboard(bb))
	fmt.Println(bb.Dump())

	names := make([]string, 0, a.Total)
	for _, i := range o.AllBitPositions(bb) {
		if i < position.TotalSquares {
			names = append(names, position.BitToSquareName(i))
		} else {
			names = append(names, fmt.Sprintf("#%d", i))
		}
	}
	fmt.Println("squares:", strings.Join(names, " "))
	if a.IsEmpty() {
		fmt.Println("total: 0")
	} else {
		fmt.Printf("total: %d min: %d max: %d\n", a.Total, a.MinBit, a.MaxBit)
	}
	r, rn := a.DensestRank()
	f, fn := a.DensestFile()
	d, dn := a.DensestDiagonal()
	fmt.Printf("densest rank: %s (%d) file: %s (%d) diagonal: %d (%d)\n",
		position.NotationComponentRank(r), rn, position.NotationComponentFile(f), fn, d, dn)
	fmt.Println("full line:", a.HasFullLine())
	o.LogReport()
	return nil
}

// parseBitboard accepts square names such as 5e, or whole bitboards written
// as integer literals such as 0x1ff.
func parseBitboard(args []string) (types.Bitboard, error) {
	if len(args) == 0 {
		return types.Empty, errNoSquares
	}
	bb := types.Empty
	for _, arg := range args {
		if len(arg) > 2 {
			v, err := types.Parse(arg)
			if err != nil {
				return types.Empty, err
			}
			bb = bb.Or(v)
			continue
		}
		sq, err := position.SquareNameToBit(arg)
		if err != nil {
			return types.Empty, err
		}
		bb = bb.With(sq)
	}
	return bb, nil
}
