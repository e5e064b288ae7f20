package th

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixExcess(words []uint64, n uint64) []int64 {
	e := make([]int64, n)
	var x int64
	for i := uint64(0); i < n; i++ {
		if words[i/64]>>(i%64)&1 == 1 {
			x++
		} else {
			x--
		}
		e[i] = x
	}
	return e
}

func requireBalanced(t *testing.T, words []uint64, n uint64, wrapped bool) {
	t.Helper()
	e := prefixExcess(words, n)
	for i, x := range e[:n-1] {
		require.GreaterOrEqual(t, x, int64(0), "position %d", i)
		if wrapped {
			require.Positive(t, x, "outer pair closed early at %d", i)
		}
	}
	require.Zero(t, e[n-1])
}

func TestParens(t *testing.T) {
	for _, twist := range []float64{0, 0.3, 1} {
		for _, n := range []uint64{2, 4, 130, 4096, 50000} {
			g := NewSeqGen(SgXorShift)
			g.Seed(n)
			requireBalanced(t, Parens(g, n, twist), n, true)
		}
	}

	// twist 0 is one deep nest
	w := Parens(NewSeqGen(SgXorShift), 256, 0)
	assert.Equal(t, []uint64{^uint64(0), ^uint64(0), 0, 0}, w)

	assert.Panics(t, func() { Parens(NewSeqGen(SgXorShift), 3, 1) })
	assert.Panics(t, func() { Parens(NewSeqGen(SgXorShift), 4, 2) })
}

func TestParensRec(t *testing.T) {
	for _, n := range []uint64{2, 4, 6, 1000, 65536} {
		g := NewSeqGen(SgRand)
		g.Seed(n)
		requireBalanced(t, ParensRec(g, n), n, true)
	}
	assert.Panics(t, func() { ParensRec(NewSeqGen(SgRand), 0) })
}

func TestUniform(t *testing.T) {
	const n = 100000
	g := NewSeqGen(SgXorShift)
	w, o0, o1 := Uniform(g, n, 0.9, 0.1)
	var c0, c1 uint64
	for i := uint64(0); i < n; i++ {
		if w[i/64]>>(i%64)&1 == 1 {
			if i < n/2 {
				c0++
			} else {
				c1++
			}
		}
	}
	assert.Equal(t, c0, o0)
	assert.Equal(t, c1, o1)
	assert.InDelta(t, 0.9*n/2, float64(o0), 1000)
	assert.InDelta(t, 0.1*n/2, float64(o1), 1000)

	w, o0, o1 = Uniform(g, 1000, 1, 0)
	assert.EqualValues(t, 500, o0)
	assert.EqualValues(t, 0, o1)
	assert.Len(t, w, 16)

	assert.Panics(t, func() { Uniform(g, 10, -0.5, 0) })
}

func TestSeqGenDeterminism(t *testing.T) {
	for _, sgt := range []int{SgRand, SgXorShift} {
		a, b := NewSeqGen(sgt), NewSeqGen(sgt)
		a.Seed(42)
		b.Seed(42)
		first := make([]uint64, 100)
		for i := range first {
			first[i] = a.Next()
			require.Equal(t, first[i], b.Next())
		}
		a.Reset()
		for i := range first {
			require.Equal(t, first[i], a.Next())
		}
		b.Seed(43)
		assert.NotEqual(t, first[0], b.Next())
	}

	// unseeded xorshift starts from the fixed state
	a, b := NewSeqGen(SgXorShift), NewSeqGen(SgXorShift)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestSeedZeroSurvivesReset(t *testing.T) {
	for _, sgt := range []int{SgRand, SgXorShift} {
		g := NewSeqGen(sgt)
		g.Seed(0)
		first := make([]uint64, 50)
		for i := range first {
			first[i] = g.Next()
		}
		g.Reset()
		for i := range first {
			require.Equal(t, first[i], g.Next(), "type %d value %d", sgt, i)
		}
	}

	// unseeded math/rand starts from seed 1, before and after Reset
	a, b := NewSeqGen(SgRand), NewSeqGen(SgRand)
	b.Seed(1)
	v := a.Next()
	assert.Equal(t, b.Next(), v)
	a.Reset()
	assert.Equal(t, v, a.Next())
}

func TestFloat(t *testing.T) {
	g := NewSeqGen(SgXorShift)
	for i := 0; i < 10000; i++ {
		f := Float(g)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, "100 B", ByteSize(100))
	assert.Equal(t, "1023 B", ByteSize(1023))
	assert.Equal(t, "2.00 KiB", ByteSize(2048))
	assert.Equal(t, "3.00 MiB", ByteSize(3<<20))
	assert.Equal(t, "2.00 GiB", ByteSize(2<<30))
	assert.Equal(t, "5.00 TiB", ByteSize(5<<40))
	assert.Equal(t, "2048.00 TiB", ByteSize(2<<50))
}

func TestAllocMeter(t *testing.T) {
	m := StartAlloc()
	buf := make([]uint64, 1<<16)
	runtime.KeepAlive(buf)
	bytes, objects := m.Since()
	assert.GreaterOrEqual(t, bytes, uint64(8<<16))
	assert.GreaterOrEqual(t, objects, uint64(1))

	assert.Contains(t, m.Report(1<<22), "bits per bit")
	assert.Contains(t, StartAlloc().Report(0), " 0.0000 bits per bit")
}
