package bits

//
// Vector: a read-only view over caller-owned words
//

import (
	"errors"
	"fmt"
	mbits "math/bits"

	"github.com/pi/succinct/md"
)

var (
	ErrShortVector = errors.New("word slice shorter than bit length")
	ErrOutOfRange  = errors.New("bit position out of range")
)

// Vector is n bits packed little-endian into 64-bit words: bit i lives in
// words[i/64] at shift i%64. The words are borrowed, never copied or
// written, and must outlive every index built over the Vector. Bits past n
// in the last word are ignored.
type Vector struct {
	words []uint64
	n     uint64
}

// NewVector wraps words as an n-bit vector.
func NewVector(words []uint64, n uint64) (Vector, error) {
	if need := md.WordsFor(n); uint64(len(words)) < need {
		return Vector{}, fmt.Errorf("%w: %d bits need %d words, got %d", ErrShortVector, n, need, len(words))
	}
	return Vector{words: words[:md.WordsFor(n)], n: n}, nil
}

// MustVector is NewVector that panics on error.
func MustVector(words []uint64, n uint64) Vector {
	v, err := NewVector(words, n)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the length in bits.
func (v Vector) Len() uint64 {
	return v.n
}

// NumWords returns ceil(Len()/64).
func (v Vector) NumWords() uint64 {
	return uint64(len(v.words))
}

// Words returns the underlying words. Callers must not modify them.
func (v Vector) Words() []uint64 {
	return v.words
}

// Word returns word i with the bits past Len() cleared.
func (v Vector) Word(i uint64) uint64 {
	w := v.words[i]
	if i == uint64(len(v.words))-1 {
		w &= v.TailMask()
	}
	return w
}

// TailMask masks the valid bits of the last word.
func (v Vector) TailMask() uint64 {
	if len(v.words) == 0 {
		return 0
	}
	return md.LowMask(uint(v.n-(uint64(len(v.words))-1)*md.BitsPerWord))
}

func (v Vector) Get(i uint64) bool {
	if i >= v.n {
		panic("bit vector index out of bounds")
	}
	return (v.words[i>>md.WordSizeShift]>>(i&md.WordMask))&1 == 1
}

// Count returns the number of set bits below Len().
func (v Vector) Count() uint64 {
	var c uint64
	for i := range v.words {
		c += uint64(mbits.OnesCount64(v.Word(uint64(i))))
	}
	return c
}

func (v Vector) String() string {
	return fmt.Sprintf("bits.Vector{len: %d, words: %d}", v.n, len(v.words))
}
