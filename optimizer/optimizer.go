package optimizer

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/daystram/bitshogi/bitops"
	"github.com/daystram/bitshogi/platform"
	"github.com/daystram/bitshogi/types"
)

const (
	// Density thresholds, in set bits across both halves.
	popCountTableMaxDensity     = 16
	positionsTableMaxDensity    = 8
	positionsDeBruijnMaxDensity = 32
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type OptimizerConfig struct {
	DisableAdaptive bool
	Capabilities    *platform.Capabilities
	Logger          func(...any)
}

// Optimizer picks a strategy for every call from the bitboard density and
// the configured capabilities. The strategy only affects cost: every
// strategy returns the same value for the same input.
type Optimizer struct {
	adaptive bool
	caps     platform.Capabilities
	logger   func(...any)

	mu       sync.Mutex
	counters StrategyCounters
}

func NewOptimizer(cfg *OptimizerConfig) *Optimizer {
	if cfg == nil {
		cfg = &OptimizerConfig{}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	caps := platform.Get()
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	}

	return &Optimizer{
		adaptive: !cfg.DisableAdaptive,
		caps:     caps,
		logger:   cfg.Logger,
	}
}

func (o *Optimizer) Capabilities() platform.Capabilities {
	return o.caps
}

func (o *Optimizer) Adaptive() bool {
	return o.adaptive
}

func (o *Optimizer) PopCount(bb types.Bitboard) uint32 {
	s := o.popCountStrategy(bb)
	n := bitops.PopCountImplFor(s).PopCount(bb)
	o.record(func(c *StrategyCounters) { c.PopCount[s]++ })
	return n
}

func (o *Optimizer) BitScanForward(bb types.Bitboard) (uint8, bool) {
	s := o.bitScanStrategy()
	i, ok := bitops.BitScanImplFor(s).Forward(bb)
	o.record(func(c *StrategyCounters) { c.BitScanForward[s]++ })
	return i, ok
}

func (o *Optimizer) BitScanReverse(bb types.Bitboard) (uint8, bool) {
	s := o.bitScanStrategy()
	i, ok := bitops.BitScanImplFor(s).Reverse(bb)
	o.record(func(c *StrategyCounters) { c.BitScanReverse[s]++ })
	return i, ok
}

// AllBitPositions returns the set bit indices in ascending order.
func (o *Optimizer) AllBitPositions(bb types.Bitboard) []uint8 {
	s := o.positionsStrategy(bb)
	pos := bitops.PositionsImplFor(s).Positions(bb)
	o.record(func(c *StrategyCounters) { c.Positions[s]++ })
	return pos
}

func (o *Optimizer) popCountStrategy(bb types.Bitboard) platform.PopCountStrategy {
	switch {
	case !o.adaptive:
		return platform.PopCountTable
	case o.caps.HasPopCount:
		return platform.PopCountHardware
	case density(bb) < popCountTableMaxDensity:
		return platform.PopCountTable
	default:
		return platform.PopCountSWAR
	}
}

func (o *Optimizer) bitScanStrategy() platform.BitScanStrategy {
	if o.adaptive && o.caps.HasBitScan {
		return platform.BitScanHardware
	}
	return platform.BitScanDeBruijn
}

func (o *Optimizer) positionsStrategy(bb types.Bitboard) platform.PositionsStrategy {
	if !o.adaptive {
		return platform.PositionsDeBruijn
	}
	switch d := density(bb); {
	case d <= positionsTableMaxDensity:
		return platform.PositionsTable
	case d <= positionsDeBruijnMaxDensity:
		return platform.PositionsDeBruijn
	default:
		return platform.PositionsOptimized
	}
}

// density counts the two halves separately.
func density(bb types.Bitboard) int {
	return bits.OnesCount64(bb.Lo()) + bits.OnesCount64(bb.Hi())
}

func (o *Optimizer) record(f func(c *StrategyCounters)) {
	o.mu.Lock()
	f(&o.counters)
	o.mu.Unlock()
}

var (
	defaultOnce      sync.Once
	defaultOptimizer *Optimizer
)

// Default returns the process-wide optimizer backing the package functions.
func Default() *Optimizer {
	defaultOnce.Do(func() {
		defaultOptimizer = NewOptimizer(nil)
	})
	return defaultOptimizer
}

func PopCount(bb types.Bitboard) uint32 {
	return Default().PopCount(bb)
}

func BitScanForward(bb types.Bitboard) (uint8, bool) {
	return Default().BitScanForward(bb)
}

func BitScanReverse(bb types.Bitboard) (uint8, bool) {
	return Default().BitScanReverse(bb)
}

func AllBitPositions(bb types.Bitboard) []uint8 {
	return Default().AllBitPositions(bb)
}
