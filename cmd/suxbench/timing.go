package main

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pi/succinct/atomic"
	"github.com/pi/succinct/th"
)

// timed runs repeats passes of query over positions on at most workers
// goroutines and prints the throughput line for unit. A query that panics
// fails the run with the position it was given.
func timed(c config, unit string, positions []uint64, query func(uint64) uint64) error {
	var sink atomic.Counter
	var g errgroup.Group
	g.SetLimit(c.workers)

	start := time.Now()
	for k := 0; k < c.repeats; k++ {
		g.Go(func() (err error) {
			var dummy uint64
			var p uint64
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s at %d: %v", unit, p, r)
				}
			}()
			for _, p = range positions {
				dummy ^= query(p)
			}
			sink.Inc(dummy)
			return nil
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("timing %ss: %w", unit, err)
	}

	ops := float64(c.repeats) * float64(len(positions))
	s := elapsed.Seconds()
	fmt.Printf("%f s, %.02f %ss/s, %.02f ns/%s\n", s, ops/s, unit, float64(elapsed.Nanoseconds())/ops, unit)
	if sink.Get() == 42 {
		fmt.Println("42")
	}
	return nil
}

func header(n uint64) {
	fmt.Printf("Number of bits: %d\n", n)
	fmt.Printf("Number of words: %d\n", n/64)
}

func bitCost(cost, n uint64) {
	fmt.Printf("Bit cost: %d (%.2f%%)\n", cost, float64(cost)*100/float64(n))
}

func memory(m th.AllocMeter, n uint64) {
	fmt.Printf("Allocated: %s\n", m.Report(n))
}
