package main

import (
	"fmt"
	"log/slog"

	"github.com/pi/succinct/bits"
	"github.com/pi/succinct/ranksel"
	"github.com/pi/succinct/th"
)

type bitInput struct {
	v            bits.Vector
	ones0, ones1 uint64
}

func uniformInput(c config) (bitInput, error) {
	words, ones0, ones1 := th.Uniform(c.gen(), c.n, c.density0, c.density1)
	v, err := bits.NewVector(words, c.n)
	if err != nil {
		return bitInput{}, err
	}
	slog.Debug("generated bits", "ones0", ones0, "ones1", ones1)
	return bitInput{v, ones0, ones1}, nil
}

func (c config) options() *ranksel.Options {
	o := ranksel.DefaultOptions()
	o.Ops = c.ops
	return &o
}

func runRank(c config) error {
	if c.density0 < 0 || c.density0 > 1 || c.density1 < 0 || c.density1 > 1 {
		return fmt.Errorf("%w: densities must be in [0, 1]", errUsage)
	}
	in, err := uniformInput(c)
	if err != nil {
		return err
	}
	header(c.n)
	fmt.Printf("Number of blocks: %d\n", in.v.NumWords()/ranksel.DefaultBlockWords)

	meter := th.StartAlloc()
	r, err := ranksel.NewRank(in.v, c.options())
	if err != nil {
		return err
	}
	memory(meter, c.n)
	bitCost(r.BitCount(), c.n)

	g := c.gen()
	positions := make([]uint64, c.positions)
	for i := range positions {
		positions[i] = g.Next() % (c.n + 1)
	}
	return timed(c, "rank", positions, r.Rank)
}

func runSelect(c config) error {
	if c.density0 < 0 || c.density0 > 1 || c.density1 < 0 || c.density1 > 1 {
		return fmt.Errorf("%w: densities must be in [0, 1]", errUsage)
	}
	in, err := uniformInput(c)
	if err != nil {
		return err
	}
	header(c.n)

	meter := th.StartAlloc()
	s, err := ranksel.NewSelect(in.v, c.options())
	if err != nil {
		return err
	}
	memory(meter, c.n)
	bitCost(s.BitCount(), c.n)

	if in.ones0 == 0 || in.ones1 == 0 {
		fmt.Println("Too few ones to measure select speed")
		return nil
	}
	// half the ranks fall in each half of the vector
	g := c.gen()
	positions := make([]uint64, c.positions)
	for i := range positions {
		if i&1 == 1 {
			positions[i] = g.Next() % in.ones0
		} else {
			positions[i] = in.ones0 + g.Next()%in.ones1
		}
	}
	return timed(c, "select", positions, s.Select)
}
