package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi/succinct/broadword"
)

func smallConfig() config {
	return config{
		n:         1 << 14,
		density0:  0.5,
		density1:  0.01,
		twist:     0.2,
		positions: 1 << 10,
		repeats:   2,
		workers:   2,
		ops:       broadword.Default(),
	}
}

func TestModes(t *testing.T) {
	c := smallConfig()
	require.NoError(t, runCount(c))
	require.NoError(t, runWordSelect(c))
	require.NoError(t, runRank(c))
	require.NoError(t, runSelect(c))
	require.NoError(t, runParen(c))

	c.rec = true
	c.seed = 7
	require.NoError(t, runParen(c))

	// no ones in the second half: select timing is skipped
	c.density1 = 0
	require.NoError(t, runSelect(c))
}

func TestUsageErrors(t *testing.T) {
	c := smallConfig()
	c.n = 3
	assert.ErrorIs(t, runParen(c), errUsage)

	c = smallConfig()
	c.twist = 2
	assert.ErrorIs(t, runParen(c), errUsage)

	c = smallConfig()
	c.density0 = 1.5
	assert.ErrorIs(t, runRank(c), errUsage)
	assert.ErrorIs(t, runSelect(c), errUsage)
}

func TestTimedReportsFailingQuery(t *testing.T) {
	c := smallConfig()
	positions := []uint64{1, 2, 3, 4}
	err := timed(c, "rank", positions, func(p uint64) uint64 {
		if p == 3 {
			panic("bad position")
		}
		return p
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank at 3: bad position")

	assert.NoError(t, timed(c, "rank", positions, func(p uint64) uint64 { return p }))
}
