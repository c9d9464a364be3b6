package bitops

import (
	"iter"

	"github.com/daystram/bitshogi/types"
)

// BitIterator yields set bit indices from least to most significant. It keeps
// nothing but the bits not yet yielded, so copying it forks the iteration.
type BitIterator struct {
	remaining types.Bitboard
}

func Bits(bb types.Bitboard) BitIterator {
	return BitIterator{remaining: bb}
}

// BitsFrom iterates only over bits at index start or above.
func BitsFrom(bb types.Bitboard, start uint8) BitIterator {
	return BitIterator{remaining: truncateBelow(bb, start)}
}

func (it *BitIterator) Next() (uint8, bool) {
	i, ok := BitScanForwardHardware(it.remaining)
	if ok {
		it.remaining = it.remaining.ClearLowest()
	}
	return i, ok
}

// NextBack takes from the opposite end; it never yields a bit Next already has.
func (it *BitIterator) NextBack() (uint8, bool) {
	i, ok := BitScanReverseHardware(it.remaining)
	if ok {
		it.remaining = it.remaining.Without(i)
	}
	return i, ok
}

func (it *BitIterator) Peek() (uint8, bool) {
	return BitScanForwardHardware(it.remaining)
}

// Skip discards up to n bits and returns how many were discarded.
func (it *BitIterator) Skip(n int) int {
	skipped := 0
	for ; skipped < n && !it.remaining.IsEmpty(); skipped++ {
		it.remaining = it.remaining.ClearLowest()
	}
	return skipped
}

func (it *BitIterator) Len() int {
	return int(PopCountHardware(it.remaining))
}

func (it *BitIterator) Remaining() types.Bitboard {
	return it.remaining
}

// Seq adapts the iterator for range loops, consuming it.
func (it *BitIterator) Seq() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for {
			i, ok := it.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

// ReverseBitIterator yields set bit indices from most to least significant.
type ReverseBitIterator struct {
	remaining types.Bitboard
}

func BitsRev(bb types.Bitboard) ReverseBitIterator {
	return ReverseBitIterator{remaining: bb}
}

func (it *ReverseBitIterator) Next() (uint8, bool) {
	i, ok := BitScanReverseHardware(it.remaining)
	if ok {
		it.remaining = it.remaining.Without(i)
	}
	return i, ok
}

func (it *ReverseBitIterator) NextBack() (uint8, bool) {
	i, ok := BitScanForwardHardware(it.remaining)
	if ok {
		it.remaining = it.remaining.ClearLowest()
	}
	return i, ok
}

func (it *ReverseBitIterator) Peek() (uint8, bool) {
	return BitScanReverseHardware(it.remaining)
}

func (it *ReverseBitIterator) Skip(n int) int {
	skipped := 0
	for ; skipped < n; skipped++ {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	return skipped
}

func (it *ReverseBitIterator) Len() int {
	return int(PopCountHardware(it.remaining))
}

func (it *ReverseBitIterator) Remaining() types.Bitboard {
	return it.remaining
}

func (it *ReverseBitIterator) Seq() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for {
			i, ok := it.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

func truncateBelow(bb types.Bitboard, start uint8) types.Bitboard {
	return bb.Rsh(uint(start)).Lsh(uint(start))
}
