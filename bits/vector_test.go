package bits

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	_, err := NewVector(nil, 0)
	assert.NoError(t, err)

	_, err = NewVector([]uint64{1}, 65)
	assert.ErrorIs(t, err, ErrShortVector)

	v, err := NewVector([]uint64{1, 2, 3}, 65)
	require.NoError(t, err)
	assert.EqualValues(t, 65, v.Len())
	assert.EqualValues(t, 2, v.NumWords())
	assert.Len(t, v.Words(), 2)

	assert.Panics(t, func() { MustVector(nil, 1) })
}

func TestVectorTail(t *testing.T) {
	v := MustVector([]uint64{^uint64(0), ^uint64(0)}, 70)
	assert.EqualValues(t, 0x3f, v.TailMask())
	assert.EqualValues(t, 0x3f, v.Word(1))
	assert.EqualValues(t, ^uint64(0), v.Word(0))
	assert.EqualValues(t, 70, v.Count())
	assert.True(t, v.Get(69))
	assert.Panics(t, func() { v.Get(70) })

	v = MustVector([]uint64{^uint64(0)}, 64)
	assert.EqualValues(t, ^uint64(0), v.TailMask())
	assert.EqualValues(t, 64, v.Count())

	assert.EqualValues(t, 0, Vector{}.Count())
}

func TestBuilder(t *testing.T) {
	const N = 1000
	b := NewBuilder(N)
	for i := uint64(0); i < N; i += 3 {
		b.Set(i)
	}
	for i := uint64(0); i < N; i++ {
		assert.Equal(t, i%3 == 0, b.Get(i), "%d", i)
	}
	b.Clear(0)
	assert.False(t, b.Get(0))
	assert.Panics(t, func() { b.Set(N) })

	v := b.Vector()
	assert.EqualValues(t, N, v.Len())
	assert.EqualValues(t, 333, v.Count())
}

func TestBuilderAppend(t *testing.T) {
	b := NewBuilder(0)
	b.AppendString("(()())")
	for i := 0; i < 130; i++ {
		b.Append(i%2 == 0)
	}
	assert.EqualValues(t, 136, b.Len())
	v := b.Vector()
	assert.EqualValues(t, 3, v.NumWords())
	assert.EqualValues(t, 0b001011, v.Word(0)&0x3f)
	assert.True(t, v.Get(6))
	assert.False(t, v.Get(135))
}

func TestRoaring(t *testing.T) {
	rb := roaring.BitmapOf(0, 2, 3, 70, 127)
	v, err := FromRoaring(rb, 128)
	require.NoError(t, err)
	assert.EqualValues(t, 5, v.Count())
	assert.True(t, v.Get(70))
	assert.False(t, v.Get(71))
	assert.True(t, rb.Equals(ToRoaring(v)))

	_, err = FromRoaring(rb, 127)
	assert.ErrorIs(t, err, ErrOutOfRange)

	v, err = FromRoaring(roaring.New(), 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v.Count())
	assert.True(t, ToRoaring(v).IsEmpty())
}
