package bitops

import (
	"slices"
	"testing"

	"github.com/daystram/bitshogi/types"
)

func TestPositionsStrategiesAgree(t *testing.T) {
	t.Parallel()
	for _, bb := range samples() {
		want := PositionsOptimized(bb)
		if got := PositionsTable(bb); !slices.Equal(got, want) {
			t.Fatalf("unexpected table positions: bb=%v got=%v want=%v", bb, got, want)
		}
		if got := PositionsDeBruijn(bb); !slices.Equal(got, want) {
			t.Fatalf("unexpected debruijn positions: bb=%v got=%v want=%v", bb, got, want)
		}
		if len(want) != int(PopCountNaive(bb)) {
			t.Fatalf("unexpected length: bb=%v got=%d want=%d", bb, len(want), PopCountNaive(bb))
		}
		if len(want) > 0 {
			first, _ := BitScanForwardSoftware(bb)
			last, _ := BitScanReverseSoftware(bb)
			if want[0] != first || want[len(want)-1] != last {
				t.Fatalf("unexpected ends: bb=%v got=(%d,%d) want=(%d,%d)", bb, want[0], want[len(want)-1], first, last)
			}
		}
	}
}

func TestPositionsConcrete(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		bb   types.Bitboard
		want []uint8
	}{
		{name: "empty", bb: types.Empty, want: []uint8{}},
		{name: "0b1010", bb: types.From64(0b1010), want: []uint8{1, 3}},
		{name: "halves", bb: types.FromBits(0, 63, 64, 127), want: []uint8{0, 63, 64, 127}},
		{name: "nibble boundary", bb: types.FromBits(3, 4, 67, 68), want: []uint8{3, 4, 67, 68}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for name, f := range map[string]func(types.Bitboard) []uint8{
				"table":     PositionsTable,
				"debruijn":  PositionsDeBruijn,
				"optimized": PositionsOptimized,
			} {
				if got := f(tt.bb); !slices.Equal(got, tt.want) {
					t.Errorf("unexpected result: strategy=%s got=%v want=%v", name, got, tt.want)
				}
			}
		})
	}
}

func TestAppendPositionsReusesBuffer(t *testing.T) {
	t.Parallel()
	buf := make([]uint8, 0, types.TotalBits)
	bb := types.New(0xF0F0, 0x0F)
	allocs := testing.AllocsPerRun(100, func() {
		buf = AppendPositionsOptimized(buf[:0], bb)
		buf = AppendPositionsTable(buf[:0], bb)
		buf = AppendPositionsDeBruijn(buf[:0], bb)
	})
	if allocs != 0 {
		t.Errorf("unexpected allocations: got=%v want=0", allocs)
	}
}

func TestBitIterator(t *testing.T) {
	t.Parallel()
	for _, bb := range samples() {
		it := Bits(bb)
		if it.Len() != int(PopCountNaive(bb)) {
			t.Fatalf("unexpected len: bb=%v got=%d", bb, it.Len())
		}
		var got []uint8
		for i := range it.Seq() {
			got = append(got, i)
		}
		if want := PositionsOptimized(bb); !slices.Equal(got, want) && len(want) > 0 {
			t.Fatalf("unexpected forward order: bb=%v got=%v want=%v", bb, got, want)
		}
		if it.Len() != 0 {
			t.Fatalf("iterator not exhausted: bb=%v", bb)
		}

		rit := BitsRev(bb)
		var rev []uint8
		for i := range rit.Seq() {
			rev = append(rev, i)
		}
		slices.Reverse(rev)
		if want := PositionsOptimized(bb); !slices.Equal(rev, want) && len(want) > 0 {
			t.Fatalf("unexpected reverse order: bb=%v got=%v want=%v", bb, rev, want)
		}
	}
}

func TestBitIteratorPeekSkip(t *testing.T) {
	t.Parallel()
	it := Bits(types.FromBits(2, 5, 70, 100))

	if i, ok := it.Peek(); !ok || i != 2 {
		t.Fatalf("unexpected peek: got=(%d,%v) want=2", i, ok)
	}
	if it.Len() != 4 {
		t.Fatalf("peek consumed a bit: len=%d", it.Len())
	}
	if n := it.Skip(2); n != 2 {
		t.Fatalf("unexpected skip: got=%d want=2", n)
	}
	if i, ok := it.Next(); !ok || i != 70 {
		t.Fatalf("unexpected next: got=(%d,%v) want=70", i, ok)
	}
	if n := it.Skip(10); n != 1 {
		t.Fatalf("unexpected capped skip: got=%d want=1", n)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("exhausted iterator yielded a bit")
	}
	if _, ok := it.Peek(); ok {
		t.Fatalf("exhausted iterator peeked a bit")
	}

	rit := BitsRev(types.FromBits(2, 5, 70, 100))
	if i, ok := rit.Peek(); !ok || i != 100 {
		t.Fatalf("unexpected reverse peek: got=(%d,%v) want=100", i, ok)
	}
	if n := rit.Skip(3); n != 3 {
		t.Fatalf("unexpected reverse skip: got=%d want=3", n)
	}
	if i, ok := rit.Next(); !ok || i != 2 {
		t.Fatalf("unexpected reverse next: got=(%d,%v) want=2", i, ok)
	}
	if n := rit.Skip(1); n != 0 {
		t.Fatalf("unexpected skip on exhausted: got=%d want=0", n)
	}
}

func TestBitIteratorDoubleEnded(t *testing.T) {
	t.Parallel()
	bb := types.FromBits(1, 3, 64, 90, 127)
	it := Bits(bb)
	var front, back []uint8
	for it.Len() > 0 {
		if i, ok := it.Next(); ok {
			front = append(front, i)
		}
		if i, ok := it.NextBack(); ok {
			back = append(back, i)
		}
	}
	if want := []uint8{1, 3, 64}; !slices.Equal(front, want) {
		t.Errorf("unexpected front: got=%v want=%v", front, want)
	}
	if want := []uint8{127, 90}; !slices.Equal(back, want) {
		t.Errorf("unexpected back: got=%v want=%v", back, want)
	}

	rit := BitsRev(bb)
	if i, _ := rit.NextBack(); i != 1 {
		t.Errorf("unexpected reverse back: got=%d want=1", i)
	}
	if i, _ := rit.Next(); i != 127 {
		t.Errorf("unexpected reverse front: got=%d want=127", i)
	}
	if rit.Len() != 3 {
		t.Errorf("unexpected remaining: got=%d want=3", rit.Len())
	}
	if want := types.FromBits(3, 64, 90); rit.Remaining() != want {
		t.Errorf("unexpected remaining bits: got=%v want=%v", rit.Remaining(), want)
	}
}

func TestBitsFrom(t *testing.T) {
	t.Parallel()
	bb := types.FromBits(0, 10, 63, 64, 100)
	tests := []struct {
		start uint8
		want  []uint8
	}{
		{start: 0, want: []uint8{0, 10, 63, 64, 100}},
		{start: 10, want: []uint8{10, 63, 64, 100}},
		{start: 11, want: []uint8{63, 64, 100}},
		{start: 64, want: []uint8{64, 100}},
		{start: 101, want: nil},
		{start: 200, want: nil},
	}

	for _, tt := range tests {
		it := BitsFrom(bb, tt.start)
		var got []uint8
		for i := range it.Seq() {
			got = append(got, i)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("unexpected result: start=%d got=%v want=%v", tt.start, got, tt.want)
		}
	}
}

func TestIteratorDoesNotAllocate(t *testing.T) {
	t.Parallel()
	bb := types.New(0xDEADBEEF, 0xCAFE)
	allocs := testing.AllocsPerRun(100, func() {
		it := Bits(bb)
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	})
	if allocs != 0 {
		t.Errorf("unexpected allocations: got=%v want=0", allocs)
	}
}
