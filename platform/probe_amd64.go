//go:build amd64

package platform

import "golang.org/x/sys/cpu"

// TZCNT/LZCNT ship alongside BMI1 on every CPU that has it.
func probe() (popcnt, bitscan bool) {
	return cpu.X86.HasPOPCNT, cpu.X86.HasBMI1
}
