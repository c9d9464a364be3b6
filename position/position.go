package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the number of files and of ranks on the board.
	MaxComponentScalar uint8 = 9

	// TotalSquares is the number of valid bit indices (0-80).
	TotalSquares = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is a board square in diagram orientation: Row 0 is rank a at the
// top, Col 0 is file 9 on the left.
type Square struct {
	Row, Col uint8
}

func (s Square) String() string {
	return BitToSquareName(SquareToBit(s))
}

// BitToCoords splits a bit index into rank (0 = rank i) and file (0 = file 1).
func BitToCoords(bit uint8) (rank, file uint8) {
	mustBit(bit)
	return bit / MaxComponentScalar, bit % MaxComponentScalar
}

func CoordsToBit(rank, file uint8) uint8 {
	mustComponent("rank", rank)
	mustComponent("file", file)
	return rank*MaxComponentScalar + file
}

func BitToSquare(bit uint8) Square {
	rank, file := BitToCoords(bit)
	return Square{
		Row: MaxComponentScalar - 1 - rank,
		Col: MaxComponentScalar - 1 - file,
	}
}

func SquareToBit(s Square) uint8 {
	mustComponent("row", s.Row)
	mustComponent("col", s.Col)
	return CoordsToBit(MaxComponentScalar-1-s.Row, MaxComponentScalar-1-s.Col)
}

// BitToSquareName returns the file digit followed by the rank letter, e.g.
// bit 0 is "1i" and bit 40 is "5e".
func BitToSquareName(bit uint8) string {
	rank, file := BitToCoords(bit)
	return NotationComponentFile(file) + NotationComponentRank(rank)
}

func SquareNameToBit(n string) (uint8, error) {
	if len(n) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	file, err := notationToFile(n[0])
	if err != nil {
		return 0, err
	}
	rank, err := notationToRank(n[1])
	if err != nil {
		return 0, err
	}
	return CoordsToBit(rank, file), nil
}

func NotationComponentFile(file uint8) string {
	if file >= MaxComponentScalar {
		return ""
	}
	return string(rune('1' + file))
}

func NotationComponentRank(rank uint8) string {
	if rank >= MaxComponentScalar {
		return ""
	}
	return string(rune('i' - rank))
}

func notationToFile(f byte) (uint8, error) {
	if f < '1' || f > '9' {
		return 0, fmt.Errorf("%w: file %q", ErrInvalidNotation, f)
	}
	return f - '1', nil
}

func notationToRank(r byte) (uint8, error) {
	if r < 'a' || r > 'i' {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidNotation, r)
	}
	return 'i' - r, nil
}

func mustBit(bit uint8) {
	if bit >= TotalSquares {
		panic(fmt.Sprintf("square index out of range: %d", bit))
	}
}

func mustComponent(name string, v uint8) {
	if v >= MaxComponentScalar {
		panic(fmt.Sprintf("%s out of range: %d", name, v))
	}
}
