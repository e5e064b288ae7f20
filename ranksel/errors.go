package ranksel

import (
	"errors"
	"fmt"
)

var (
	// ErrPopulationOverflow means more ones were counted than the vector
	// has bits.
	ErrPopulationOverflow = errors.New("population exceeds bit length")

	ErrInvalidOptions = errors.New("invalid options")
)

// PopulationError reports the counted population of a vector that failed
// the population check.
type PopulationError struct {
	Ones uint64
	Len  uint64
}

func (e *PopulationError) Error() string {
	return fmt.Sprintf("population %d exceeds bit length %d", e.Ones, e.Len)
}

func (e *PopulationError) Unwrap() error { return ErrPopulationOverflow }
