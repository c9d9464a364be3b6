package main

import (
	"log"

	"github.com/daystram/bitshogi/bench"
)

func runBench(cfg *bench.Config) error {
	log.Printf("============ bench: samples=%d seed=%d parallel=%v\n", cfg.Samples, cfg.Seed, cfg.Parallel)
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()

	err := bench.Run(cfg, out)
	close(out)
	<-done
	return err
}
