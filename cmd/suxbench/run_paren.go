package main

import (
	"fmt"

	"github.com/pi/succinct/balparen"
	"github.com/pi/succinct/bits"
	"github.com/pi/succinct/md"
	"github.com/pi/succinct/th"
)

// maxFarTries bounds the search for a position whose match lies outside
// its word; short or shallow sequences may have few of them.
const maxFarTries = 1 << 10

func runParen(c config) error {
	if c.n < 2 || c.n&1 != 0 {
		return fmt.Errorf("%w: -n must be even and at least 2", errUsage)
	}
	if c.twist < 0 || c.twist > 1 {
		return fmt.Errorf("%w: -twist must be in [0, 1]", errUsage)
	}
	g := c.gen()
	var words []uint64
	if c.rec {
		words = th.ParensRec(g, c.n)
	} else {
		words = th.Parens(g, c.n, c.twist)
	}
	v, err := bits.NewVector(words, c.n)
	if err != nil {
		return err
	}
	header(c.n)
	fmt.Printf("Number of blocks: %d\n", v.NumWords()/balparen.DefaultBlockWords)

	meter := th.StartAlloc()
	m, err := balparen.New(v, nil)
	if err != nil {
		return err
	}
	memory(meter, c.n)
	bitCost(m.BitCount(), c.n)

	// half the positions must match outside their own word
	positions := make([]uint64, c.positions)
	for i := range positions {
		far := g.Next()&1 == 1
		for tries := 0; ; tries++ {
			p := g.Next() % c.n
			if !m.IsOpen(p) {
				continue
			}
			if far && tries < maxFarTries && m.FindClose(p)>>md.WordSizeShift == p>>md.WordSizeShift {
				continue
			}
			positions[i] = p
			break
		}
	}
	m.ResetCounters()

	if err := timed(c, "find", positions, m.FindClose); err != nil {
		return err
	}
	far := m.FarFindClose()
	total := float64(c.repeats) * float64(len(positions))
	fmt.Printf("Far find close: %d (%.02f%%)\n", far, float64(far)*100/total)
	return nil
}
