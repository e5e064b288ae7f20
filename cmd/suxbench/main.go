// Command suxbench times the word primitives and the succinct indexes on
// generated inputs.
//
//	suxbench -mode rank -n 100000000 -d0 0.5
//	suxbench -mode paren -n 10000000 -twist 0.1
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/pi/succinct/broadword"
	"github.com/pi/succinct/th"
)

type config struct {
	n         uint64
	density0  float64
	density1  float64
	twist     float64
	rec       bool
	positions int
	repeats   int
	workers   int
	seed      uint64
	ops       broadword.Ops
	opsName   string
}

var errUsage = errors.New("usage")

func main() {
	mode := flag.String("mode", "", "count | wordselect | rank | select | paren")
	n := flag.Uint64("n", 1<<24, "number of bits (words for count and wordselect)")
	d0 := flag.Float64("d0", 0.5, "density of ones in the first half")
	d1 := flag.Float64("d1", -1, "density of ones in the second half (defaults to -d0)")
	twist := flag.Float64("twist", 1, "parenthesis twist in [0, 1]; 0 nests everything")
	rec := flag.Bool("rec", false, "generate parentheses by recursive partition")
	positions := flag.Int("positions", 1<<20, "number of cached query positions")
	repeats := flag.Int("repeats", 10, "passes over the cached positions")
	workers := flag.Int("workers", 1, "parallel query workers")
	seed := flag.Uint64("seed", 0, "generator seed; 0 keeps the fixed default state")
	ops := flag.String("ops", "", "word ops strategy: hardware | broadword | gogpetri | table")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config{
		n:         *n,
		density0:  *d0,
		density1:  *d1,
		twist:     *twist,
		rec:       *rec,
		positions: *positions,
		repeats:   *repeats,
		workers:   *workers,
		seed:      *seed,
		ops:       broadword.Default(),
		opsName:   broadword.ActiveStrategy().String(),
	}
	if cfg.density1 < 0 {
		cfg.density1 = cfg.density0
	}
	if *ops != "" {
		s, ok := broadword.ParseStrategy(*ops)
		if !ok {
			fail(fmt.Errorf("%w: unknown word ops strategy %q", errUsage, *ops))
		}
		cfg.ops, cfg.opsName = s.Ops(), s.String()
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.positions < 1 || cfg.repeats < 1 || cfg.n == 0 {
		fail(fmt.Errorf("%w: -n, -positions and -repeats must be positive", errUsage))
	}

	slog.Debug("starting", "mode", *mode, "n", cfg.n, "ops", cfg.opsName,
		"overridden", broadword.IsOverridden(), "popcnt", broadword.HasPopcount(), "workers", cfg.workers)

	var err error
	switch *mode {
	case "count":
		err = runCount(cfg)
	case "wordselect":
		err = runWordSelect(cfg)
	case "rank":
		err = runRank(cfg)
	case "select":
		err = runSelect(cfg)
	case "paren":
		err = runParen(cfg)
	default:
		err = fmt.Errorf("%w: -mode count|wordselect|rank|select|paren", errUsage)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	slog.Error("suxbench failed", "err", err)
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(1)
}

func (c config) gen() th.SeqGen {
	g := th.NewSeqGen(th.SgXorShift)
	if c.seed != 0 {
		g.Seed(c.seed)
	}
	return g
}
