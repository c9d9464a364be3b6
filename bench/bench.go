package bench

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bitshogi/bitops"
	"github.com/daystram/bitshogi/optimizer"
	"github.com/daystram/bitshogi/platform"
	"github.com/daystram/bitshogi/types"
)

const DefaultSamples = 100_000

var ErrStrategyMismatch = errors.New("strategy mismatch")

type Config struct {
	Samples  int
	Seed     uint64
	Parallel bool
}

// Run times every strategy over the same sampled bitboards and checks each
// answer against the reference implementation. One line per strategy is
// written to out; out must be drained by the caller.
func Run(cfg *Config, out chan<- string) error {
	if cfg.Samples <= 0 {
		cfg.Samples = DefaultSamples
	}
	samples := newSamples(cfg.Samples, cfg.Seed)
	cases := append(strategyCases(), optimizerCase(out))

	var run runFunc
	if cfg.Parallel {
		run = runParallel
	} else {
		run = runSequential
	}
	return run(cases, samples, out)
}

type sample struct {
	bb          types.Bitboard
	count       uint32
	first, last uint8
	positions   []uint8
	nonEmpty    bool
}

// newSamples cycles through dense, sparse and on-board-only bitboards, all
// drawn from the same seeded generator.
func newSamples(n int, seed uint64) []sample {
	r := types.NewPseudoRand(seed)
	samples := make([]sample, n)
	for i := range samples {
		var bb types.Bitboard
		switch i % 3 {
		case 0:
			bb = r.Bitboard()
		case 1:
			bb = r.SparseBitboard()
		default:
			bb = r.BoardBitboard()
		}
		first, ok := bitops.BitScanForwardSoftware(bb)
		last, _ := bitops.BitScanReverseSoftware(bb)
		samples[i] = sample{
			bb:        bb,
			count:     bitops.PopCountNaive(bb),
			first:     first,
			last:      last,
			positions: bitops.PositionsOptimized(bb),
			nonEmpty:  ok,
		}
	}
	return samples
}

type benchCase struct {
	name string
	// check reports whether the strategy agrees with the reference for s.
	check func(s *sample) bool
	// done, if set, runs after a successful measurement.
	done func()
}

func strategyCases() []benchCase {
	var cases []benchCase
	for _, st := range platform.PopCountStrategies {
		f := bitops.PopCountImplFor(st).PopCount
		cases = append(cases, benchCase{
			name:  "popcount/" + st.String(),
			check: func(s *sample) bool { return f(s.bb) == s.count },
		})
	}
	for _, st := range platform.BitScanStrategies {
		impl := bitops.BitScanImplFor(st)
		cases = append(cases, benchCase{
			name: "bitscan/" + st.String(),
			check: func(s *sample) bool {
				first, ok := impl.Forward(s.bb)
				if ok != s.nonEmpty || first != s.first {
					return false
				}
				last, _ := impl.Reverse(s.bb)
				return last == s.last
			},
		})
	}
	for _, st := range platform.PositionsStrategies {
		f := bitops.PositionsImplFor(st).Positions
		cases = append(cases, benchCase{
			name:  "positions/" + st.String(),
			check: func(s *sample) bool { return slices.Equal(f(s.bb), s.positions) },
		})
	}
	return cases
}

// optimizerCase runs the adaptive dispatcher end to end. Its telemetry
// report is logged to out once the run completes.
func optimizerCase(out chan<- string) benchCase {
	o := optimizer.NewOptimizer(&optimizer.OptimizerConfig{
		Logger: func(a ...any) { out <- fmt.Sprint(a...) },
	})
	return benchCase{
		name: "optimizer/adaptive",
		done: o.LogReport,
		check: func(s *sample) bool {
			first, ok := o.BitScanForward(s.bb)
			last, _ := o.BitScanReverse(s.bb)
			return o.PopCount(s.bb) == s.count &&
				ok == s.nonEmpty && first == s.first && last == s.last &&
				slices.Equal(o.AllBitPositions(s.bb), s.positions)
		},
	}
}

type runFunc func(cases []benchCase, samples []sample, out chan<- string) error

func runSequential(cases []benchCase, samples []sample, out chan<- string) error {
	for _, c := range cases {
		elapsed, bad := measure(c, samples)
		if bad != nil {
			return fmt.Errorf("%w: %s bb=%v", ErrStrategyMismatch, c.name, bad.bb)
		}
		out <- formatResult(c.name, len(samples), elapsed)
		if c.done != nil {
			c.done()
		}
	}
	return nil
}

func runParallel(cases []benchCase, samples []sample, out chan<- string) error {
	var mu sync.Mutex
	var errs []error
	var wg sync.WaitGroup
	for _, c := range cases {
		c := c
		wg.Add(1)
		go func() {
			defer wg.Done()
			elapsed, bad := measure(c, samples)
			if bad != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%w: %s bb=%v", ErrStrategyMismatch, c.name, bad.bb))
				mu.Unlock()
				return
			}
			out <- formatResult(c.name, len(samples), elapsed)
			if c.done != nil {
				c.done()
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

func measure(c benchCase, samples []sample) (time.Duration, *sample) {
	start := time.Now()
	for i := range samples {
		if !c.check(&samples[i]) {
			return time.Since(start), &samples[i]
		}
	}
	return time.Since(start), nil
}

func formatResult(name string, n int, elapsed time.Duration) string {
	return message.NewPrinter(language.English).
		Sprintf("%s n=%d rate=%d/s (%.3fs elapsed)",
			name, n, int(float64(n)/(elapsed+1).Seconds()), elapsed.Seconds())
}
