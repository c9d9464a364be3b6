// Package platform probes the CPU once for the instructions the bit
// manipulation strategies can take advantage of.
package platform

import (
	"runtime"
	"sync/atomic"
)

// Capabilities is the immutable result of a capability probe.
type Capabilities struct {
	Arch        string `json:"arch"`
	HasPopCount bool   `json:"has_popcount"`
	HasBitScan  bool   `json:"has_bitscan"`

	PreferredPopCount PopCountStrategy `json:"preferred_popcount"`
	PreferredBitScan  BitScanStrategy  `json:"preferred_bitscan"`
}

var cached atomic.Pointer[Capabilities]

// Detect queries the CPU feature flags. Architectures without a feature
// detection mechanism report no hardware acceleration.
func Detect() Capabilities {
	popcnt, bitscan := probe()
	return newCapabilities(runtime.GOARCH, popcnt, bitscan)
}

// Get returns the process-wide capabilities, probing on first use. Concurrent
// first calls may each probe; they store identical values.
func Get() Capabilities {
	if c := cached.Load(); c != nil {
		return *c
	}
	c := Detect()
	cached.CompareAndSwap(nil, &c)
	return *cached.Load()
}

// Software returns a profile without any hardware acceleration.
func Software() Capabilities {
	return newCapabilities(runtime.GOARCH, false, false)
}

func newCapabilities(arch string, popcnt, bitscan bool) Capabilities {
	c := Capabilities{
		Arch:              arch,
		HasPopCount:       popcnt,
		HasBitScan:        bitscan,
		PreferredPopCount: PopCountSWAR,
		PreferredBitScan:  BitScanDeBruijn,
	}
	if popcnt {
		c.PreferredPopCount = PopCountHardware
	}
	if bitscan {
		c.PreferredBitScan = BitScanHardware
	}
	return c
}
