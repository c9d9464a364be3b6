//go:build arm64

package platform

import "golang.org/x/sys/cpu"

// CLZ and RBIT are part of the base arm64 ISA; population count goes through
// the ASIMD CNT instruction.
func probe() (popcnt, bitscan bool) {
	return cpu.ARM64.HasASIMD, true
}
