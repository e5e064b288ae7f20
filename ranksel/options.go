package ranksel

import (
	"fmt"

	"github.com/pi/succinct/broadword"
	"github.com/pi/succinct/gut"
)

const (
	DefaultBlockWords = 32
	DefaultSampleOnes = 512

	maxBlockWords = 1 << 16
	maxSampleOnes = 1 << 30
)

// Options tunes the space/time tradeoff of the indexes. Zero fields take
// their defaults.
type Options struct {
	// BlockWords is the number of 64-bit words per cumulative count.
	// A query scans up to BlockWords words. Must be a power of two.
	BlockWords uint64

	// SampleOnes is the inventory sampling rate of Select: the position of
	// every SampleOnes-th one is stored. Must be a power of two.
	SampleOnes uint64

	// Ops computes the word primitives. Defaults to broadword.Default().
	Ops broadword.Ops
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		BlockWords: DefaultBlockWords,
		SampleOnes: DefaultSampleOnes,
		Ops:        broadword.Default(),
	}
}

func (o Options) withDefaults() Options {
	if o.BlockWords == 0 {
		o.BlockWords = DefaultBlockWords
	}
	if o.SampleOnes == 0 {
		o.SampleOnes = DefaultSampleOnes
	}
	if o.Ops == nil {
		o.Ops = broadword.Default()
	}
	return o
}

// Validate reports whether o, after defaults, can build an index.
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, ok := gut.Log2Exact(o.BlockWords); !ok || o.BlockWords > maxBlockWords {
		return fmt.Errorf("%w: block words %d", ErrInvalidOptions, o.BlockWords)
	}
	if _, ok := gut.Log2Exact(o.SampleOnes); !ok || o.SampleOnes > maxSampleOnes {
		return fmt.Errorf("%w: sample ones %d", ErrInvalidOptions, o.SampleOnes)
	}
	return nil
}
