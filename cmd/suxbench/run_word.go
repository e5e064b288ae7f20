package main

import (
	"fmt"

	"github.com/pi/succinct/broadword"
	"github.com/pi/succinct/debug"
)

var countVariants = []struct {
	name  string
	count func(uint64) int
}{
	{"hardware", broadword.CountHardware},
	{"broadword", broadword.CountBroadword},
	{"nomul", broadword.CountNoMul},
	{"table", broadword.CountTable},
	{"table unrolled", broadword.CountTableUnrolled},
}

var selectVariants = []struct {
	name string
	sel  func(uint64, int) int
}{
	{"clear lowest", broadword.SelectClearLowest},
	{"broadword", broadword.SelectBroadword},
	{"gog petri", broadword.SelectGogPetri},
	{"table", broadword.SelectTable},
}

func randomWords(c config) []uint64 {
	g := c.gen()
	words := make([]uint64, c.positions)
	for i := range words {
		words[i] = g.Next()
	}
	return words
}

// runCount times every popcount variant over random words.
func runCount(c config) error {
	words := randomWords(c)
	fmt.Printf("Number of words: %d\n", len(words))
	for _, v := range countVariants {
		fmt.Printf("%s: ", v.name)
		if err := timed(c, "count", words, func(w uint64) uint64 { return uint64(v.count(w)) }); err != nil {
			return err
		}
	}
	return nil
}

// runWordSelect times every select-in-word variant. Each query packs a
// random non-zero word with a rank below its population.
func runWordSelect(c config) error {
	g := c.gen()
	type query struct {
		w uint64
		k int
	}
	queries := make([]query, c.positions)
	for i := range queries {
		w := g.Next()
		for w == 0 {
			w = g.Next()
		}
		queries[i] = query{w, int(g.Next() % uint64(broadword.CountHardware(w)))}
	}
	// timed works on positions; index the query table instead
	idx := make([]uint64, len(queries))
	for i := range idx {
		idx[i] = uint64(i)
	}
	fmt.Printf("Number of words: %d\n", len(queries))
	for _, v := range selectVariants {
		fmt.Printf("%s: ", v.name)
		err := timed(c, "select", idx, func(i uint64) uint64 {
			q := queries[i]
			r := v.sel(q.w, q.k)
			debug.Assert(r == broadword.SelectClearLowest(q.w, q.k), "%s select disagrees on %x/%d", v.name, q.w, q.k)
			return uint64(r)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
