package balparen

import (
	"errors"
	"fmt"

	"github.com/pi/succinct/gut"
)

const (
	DefaultBlockWords = 16
	DefaultNearWords  = 1

	// keeps block minima within int16
	maxBlockWords = 256
	maxNearWords  = 1 << 16
)

// ErrInvalidOptions is returned for options that cannot build a Matcher.
var ErrInvalidOptions = errors.New("invalid options")

// Options tunes block size and the reach of the near path. Zero fields take
// their defaults.
type Options struct {
	// BlockWords is the number of words summarised by one excess minimum.
	// Must be a power of two.
	BlockWords uint64

	// NearWords is how many words after the word of the open parenthesis
	// the near path scans before falling back to the far path.
	NearWords uint64
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{BlockWords: DefaultBlockWords, NearWords: DefaultNearWords}
}

func (o Options) withDefaults() Options {
	if o.BlockWords == 0 {
		o.BlockWords = DefaultBlockWords
	}
	if o.NearWords == 0 {
		o.NearWords = DefaultNearWords
	}
	return o
}

// Validate reports whether o, after defaults, can build a Matcher.
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, ok := gut.Log2Exact(o.BlockWords); !ok || o.BlockWords > maxBlockWords {
		return fmt.Errorf("%w: block words %d", ErrInvalidOptions, o.BlockWords)
	}
	if o.NearWords > maxNearWords {
		return fmt.Errorf("%w: near words %d", ErrInvalidOptions, o.NearWords)
	}
	return nil
}
