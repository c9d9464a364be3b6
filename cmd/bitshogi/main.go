package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/daystram/bitshogi/bench"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	diagRun  = flag.Bool("diag", false, "print detected capabilities and selected strategies")
	diagJSON = flag.Bool("diag.json", false, "print diagnostics as JSON in diag mode")

	validateRun = flag.Bool("validate", false, "run table self-checks")

	benchRun      = flag.Bool("bench", false, "run strategy bench mode")
	benchSamples  = flag.Int("bench.samples", bench.DefaultSamples, "number of sampled bitboards in bench mode")
	benchSeed     = flag.Uint64("bench.seed", 1, "sampling seed in bench mode")
	benchParallel = flag.Bool("bench.parallel", false, "measure strategies concurrently in bench mode")

	analyzeRun  = flag.Bool("analyze", false, "analyze the bitboard built from the square names or hex values given as arguments")
	analyzeJSON = flag.Bool("analyze.json", false, "print the analysis as JSON in analyze mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	if *validateRun {
		return validate()
	}
	if *benchRun {
		return runBench(&bench.Config{
			Samples:  *benchSamples,
			Seed:     *benchSeed,
			Parallel: *benchParallel,
		})
	}
	if *analyzeRun {
		return analyze(args, *analyzeJSON)
	}
	if *diagRun || *diagJSON {
		return diag(*diagJSON)
	}

	flag.Usage()
	return nil
}
