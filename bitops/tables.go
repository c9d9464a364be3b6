package bitops

// NoBit marks an unused slot in nibblePositions.
const NoBit uint8 = 0xFF

const (
	deBruijnMagic uint64 = 0x03f79d71b4cb0a89
	deBruijnShift        = 58
)

var (
	nibblePopCount = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

	nibblePositions = [16][4]uint8{
		{NoBit, NoBit, NoBit, NoBit},
		{0, NoBit, NoBit, NoBit},
		{1, NoBit, NoBit, NoBit},
		{0, 1, NoBit, NoBit},
		{2, NoBit, NoBit, NoBit},
		{0, 2, NoBit, NoBit},
		{1, 2, NoBit, NoBit},
		{0, 1, 2, NoBit},
		{3, NoBit, NoBit, NoBit},
		{0, 3, NoBit, NoBit},
		{1, 3, NoBit, NoBit},
		{0, 1, 3, NoBit},
		{2, 3, NoBit, NoBit},
		{0, 2, 3, NoBit},
		{1, 2, 3, NoBit},
		{0, 1, 2, 3},
	}

	// deBruijnIndex[(b*deBruijnMagic)>>58] == log2(b) for every single-bit b.
	deBruijnIndex = [64]uint8{
		0, 1, 48, 2, 57, 49, 28, 3,
		61, 58, 50, 42, 38, 29, 17, 4,
		62, 55, 59, 36, 53, 51, 43, 22,
		45, 39, 33, 30, 24, 18, 12, 5,
		63, 47, 56, 27, 60, 41, 37, 16,
		54, 35, 52, 21, 44, 32, 23, 11,
		46, 26, 40, 15, 34, 20, 31, 10,
		25, 14, 19, 9, 13, 8, 7, 6,
	}
)

// ValidateLookupTables recomputes both 4-bit tables bit by bit and reports
// whether the stored tables match.
func ValidateLookupTables() bool {
	for n := uint8(0); n < 16; n++ {
		var count uint8
		want := [4]uint8{NoBit, NoBit, NoBit, NoBit}
		for k := uint8(0); k < 4; k++ {
			if n>>k&1 == 1 {
				want[count] = k
				count++
			}
		}
		if nibblePopCount[n] != count || nibblePositions[n] != want {
			return false
		}
	}
	return true
}

// ValidateDeBruijnSequence reports whether every single-bit 64-bit value hashes
// to a distinct table slot holding its own position.
func ValidateDeBruijnSequence() bool {
	var seen [64]bool
	for i := uint8(0); i < 64; i++ {
		idx := deBruijnHash(uint64(1) << i)
		if seen[idx] || deBruijnIndex[idx] != i {
			return false
		}
		seen[idx] = true
	}
	return true
}

func deBruijnHash(isolated uint64) uint8 {
	return uint8((isolated * deBruijnMagic) >> deBruijnShift)
}
