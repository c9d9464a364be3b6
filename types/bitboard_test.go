package types

import (
	"errors"
	"strings"
	"testing"
)

func TestBitboardOperators(t *testing.T) {
	t.Parallel()
	a := New(0b1100, 0b01)
	b := New(0b1010, 0b11)
	tests := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{name: "and", got: a.And(b), want: New(0b1000, 0b01)},
		{name: "or", got: a.Or(b), want: New(0b1110, 0b11)},
		{name: "xor", got: a.Xor(b), want: New(0b0110, 0b10)},
		{name: "and not", got: a.AndNot(b), want: New(0b0100, 0b00)},
		{name: "not", got: Empty.Not(), want: Full},
		{name: "lsh across halves", got: From64(1 << 63).Lsh(1), want: New(0, 1)},
		{name: "rsh across halves", got: New(0, 1).Rsh(1), want: From64(1 << 63)},
		{name: "lsh overflow", got: Full.Lsh(128), want: Empty},
		{name: "rsh overflow", got: Full.Rsh(200), want: Empty},
		{name: "lsh zero", got: a.Lsh(0), want: a},
		{name: "clear lowest", got: New(0, 0b110).ClearLowest(), want: New(0, 0b100)},
		{name: "clear lowest empty", got: Empty.ClearLowest(), want: Empty},
		{name: "from bits", got: FromBits(0, 64, 127), want: New(1, 1|1<<63)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !tt.got.Equals(tt.want) {
				t.Errorf("unexpected result: got=%v want=%v", tt.got, tt.want)
			}
		})
	}
}

func TestBitboardHas(t *testing.T) {
	t.Parallel()
	for i := 0; i < TotalBits; i++ {
		bb := Empty.With(uint8(i))
		if !bb.Has(uint8(i)) {
			t.Fatalf("bit %d not set", i)
		}
		if bb.Without(uint8(i)) != Empty {
			t.Fatalf("bit %d not cleared", i)
		}
	}
}

func TestBitboardHasPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for bit 128")
		}
	}()
	Empty.Has(128)
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		literal string
		want    Bitboard
		wantErr error
	}{
		{name: "decimal", literal: "10", want: From64(0b1010)},
		{name: "hex", literal: "0x1ff", want: From64(0x1ff)},
		{name: "hex high half", literal: "0x10000000000000000", want: New(0, 1)},
		{name: "padded", literal: "  3 ", want: From64(3)},
		{name: "empty", literal: "", wantErr: ErrInvalidBitboard},
		{name: "garbage", literal: "5e", wantErr: ErrInvalidBitboard},
		{name: "negative", literal: "-1", wantErr: ErrInvalidBitboard},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.literal)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if got, want := From64(0x1ff).String(), "0x1ff"; got != want {
		t.Errorf("unexpected result: got=%v want=%v", got, want)
	}
	if got, want := New(1, 1).String(), "0x10000000000000001"; got != want {
		t.Errorf("unexpected result: got=%v want=%v", got, want)
	}
}

func TestHalves(t *testing.T) {
	t.Parallel()
	bb := New(0xAA, 0x55)
	h := bb.Halves()
	if h[0].Bits != 0xAA || h[0].Offset != 0 || h[1].Bits != 0x55 || h[1].Offset != 64 {
		t.Errorf("unexpected halves: %+v", h)
	}

	if _, ok := Empty.Lowest(); ok {
		t.Errorf("empty bitboard has a lowest half")
	}
	if _, ok := Empty.Highest(); ok {
		t.Errorf("empty bitboard has a highest half")
	}
	if lo, _ := New(0, 4).Lowest(); lo.Offset != 64 {
		t.Errorf("unexpected lowest offset: got=%d want=64", lo.Offset)
	}
	if hi, _ := From64(4).Highest(); hi.Offset != 0 {
		t.Errorf("unexpected highest offset: got=%d want=0", hi.Offset)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	// 1i is bit 0, drawn in the bottom-right corner.
	lines := strings.Split(FromBits(0, 80).Dump(), "\n")
	if !strings.HasPrefix(lines[0], " a | # ") {
		t.Errorf("unexpected top row: %q", lines[0])
	}
	if !strings.HasSuffix(lines[8], " # ") {
		t.Errorf("unexpected bottom row: %q", lines[8])
	}
}

func TestPseudoRandDeterministic(t *testing.T) {
	t.Parallel()
	r1, r2 := NewPseudoRand(7), NewPseudoRand(7)
	for i := 0; i < 100; i++ {
		if r1.Bitboard() != r2.Bitboard() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	r := NewPseudoRand(0)
	for i := 0; i < 100; i++ {
		if bb := r.BoardBitboard(); bb.Hi()>>(TotalSquares-HalfBits) != 0 {
			t.Fatalf("off-board bits set: %v", bb)
		}
	}
}
