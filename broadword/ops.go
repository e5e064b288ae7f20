package broadword

import (
	"os"
	"strings"
)

// Ops is one implementation of the word primitives. All implementations
// return identical results for every input.
type Ops interface {
	// Count returns the number of set bits in x.
	Count(x uint64) int
	// Select returns the position of the (k+1)-th set bit of x.
	Select(x uint64, k int) int
}

// Hardware uses the population count and trailing zero count instructions.
type Hardware struct{}

func (Hardware) Count(x uint64) int         { return CountHardware(x) }
func (Hardware) Select(x uint64, k int) int { return SelectClearLowest(x, k) }

// Broadword avoids both instructions and table lookups except for the
// final byte.
type Broadword struct{}

func (Broadword) Count(x uint64) int         { return CountBroadword(x) }
func (Broadword) Select(x uint64, k int) int { return SelectBroadword(x, k) }

type GogPetri struct{}

func (GogPetri) Count(x uint64) int         { return CountNoMul(x) }
func (GogPetri) Select(x uint64, k int) int { return SelectGogPetri(x, k) }

// Table works byte by byte through lookup tables.
type Table struct{}

func (Table) Count(x uint64) int         { return CountTableUnrolled(x) }
func (Table) Select(x uint64, k int) int { return SelectTable(x, k) }

// Strategy names an Ops implementation.
type Strategy uint8

const (
	StrategyHardware Strategy = iota
	StrategyBroadword
	StrategyGogPetri
	StrategyTable
)

// Strategies lists every strategy, in declaration order.
var Strategies = []Strategy{StrategyHardware, StrategyBroadword, StrategyGogPetri, StrategyTable}

func (s Strategy) String() string {
	switch s {
	case StrategyHardware:
		return "hardware"
	case StrategyBroadword:
		return "broadword"
	case StrategyGogPetri:
		return "gogpetri"
	case StrategyTable:
		return "table"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name as printed by String.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hardware":
		return StrategyHardware, true
	case "broadword":
		return StrategyBroadword, true
	case "gogpetri":
		return StrategyGogPetri, true
	case "table":
		return StrategyTable, true
	default:
		return StrategyBroadword, false
	}
}

// Ops returns the implementation for s.
func (s Strategy) Ops() Ops {
	switch s {
	case StrategyHardware:
		return Hardware{}
	case StrategyGogPetri:
		return GogPetri{}
	case StrategyTable:
		return Table{}
	default:
		return Broadword{}
	}
}

// EnvStrategy is the environment variable that overrides the detected
// strategy.
const EnvStrategy = "SUCCINCT_WORDOPS"

// Set once at init, read-only afterwards.
var (
	activeStrategy Strategy
	hasOverride    bool

	// set by the platform init before initStrategy runs
	hasPopcount bool
)

func initStrategy() {
	if override := os.Getenv(EnvStrategy); override != "" {
		if s, ok := ParseStrategy(override); ok {
			hasOverride = true
			activeStrategy = s
			return
		}
	}
	activeStrategy = selectBest()
}

func selectBest() Strategy {
	if hasPopcount {
		return StrategyHardware
	}
	return StrategyBroadword
}

// ActiveStrategy returns the strategy chosen for this process.
func ActiveStrategy() Strategy {
	return activeStrategy
}

// IsOverridden reports whether EnvStrategy picked the active strategy.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcount reports whether the CPU has a population count instruction.
func HasPopcount() bool {
	return hasPopcount
}

// Default returns the Ops of the active strategy.
func Default() Ops {
	return activeStrategy.Ops()
}
