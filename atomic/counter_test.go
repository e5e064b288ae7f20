package atomic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCounter(t *testing.T) {
	var a Counter

	require.EqualValues(t, 0, a.Get())
	require.EqualValues(t, 1, a.Inc(1))
	require.EqualValues(t, 1, a.Get())
	a.Set(3)
	require.EqualValues(t, 3, a.Get())
	require.EqualValues(t, 3, a.Swap(2))
	require.EqualValues(t, 2, a.Get())
	require.EqualValues(t, 2, a.Reset())
	require.EqualValues(t, 0, a.Get())
}

func TestCounterConcurrent(t *testing.T) {
	var a Counter
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				a.Inc(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.EqualValues(t, 8000, a.Get())
}
