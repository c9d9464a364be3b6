package optimizer

import (
	"strings"

	"github.com/daystram/bitshogi/platform"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Operation uint8

const (
	OperationPopCount Operation = iota
	OperationBitScanForward
	OperationBitScanReverse
	OperationPositions
)

func (op Operation) String() string {
	switch op {
	case OperationPopCount:
		return "popcount"
	case OperationBitScanForward:
		return "bitscan_forward"
	case OperationBitScanReverse:
		return "bitscan_reverse"
	case OperationPositions:
		return "positions"
	default:
		return ""
	}
}

// StrategyCounters counts calls per operation, indexed by the strategy that
// served them. Counters only grow until reset.
type StrategyCounters struct {
	PopCount       [4]uint64 `json:"popcount"`
	BitScanForward [3]uint64 `json:"bitscan_forward"`
	BitScanReverse [3]uint64 `json:"bitscan_reverse"`
	Positions      [3]uint64 `json:"positions"`
}

func (c StrategyCounters) Total(op Operation) uint64 {
	var counts []uint64
	switch op {
	case OperationPopCount:
		counts = c.PopCount[:]
	case OperationBitScanForward:
		counts = c.BitScanForward[:]
	case OperationBitScanReverse:
		counts = c.BitScanReverse[:]
	case OperationPositions:
		counts = c.Positions[:]
	}
	var total uint64
	for _, n := range counts {
		total += n
	}
	return total
}

// Counters returns a snapshot of the telemetry counters.
func (o *Optimizer) Counters() StrategyCounters {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counters
}

func (o *Optimizer) ResetCounters() {
	o.mu.Lock()
	o.counters = StrategyCounters{}
	o.mu.Unlock()
}

func (o *Optimizer) Total(op Operation) uint64 {
	return o.Counters().Total(op)
}

// Report formats the counters as one line per operation.
func (o *Optimizer) Report() string {
	c := o.Counters()
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	_, _ = builder.WriteString(p.Sprintf("%-16s", OperationPopCount))
	for _, s := range platform.PopCountStrategies {
		_, _ = builder.WriteString(p.Sprintf(" %s=%d", s, c.PopCount[s]))
	}
	for _, row := range []struct {
		op     Operation
		counts [3]uint64
	}{
		{OperationBitScanForward, c.BitScanForward},
		{OperationBitScanReverse, c.BitScanReverse},
	} {
		_, _ = builder.WriteString(p.Sprintf("\n%-16s", row.op))
		for _, s := range platform.BitScanStrategies {
			_, _ = builder.WriteString(p.Sprintf(" %s=%d", s, row.counts[s]))
		}
	}
	_, _ = builder.WriteString(p.Sprintf("\n%-16s", OperationPositions))
	for _, s := range platform.PositionsStrategies {
		_, _ = builder.WriteString(p.Sprintf(" %s=%d", s, c.Positions[s]))
	}
	return builder.String()
}

func (o *Optimizer) LogReport() {
	o.logger(o.Report())
}
