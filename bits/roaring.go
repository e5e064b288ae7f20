package bits

import (
	"fmt"
	mbits "math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/pi/succinct/md"
)

// FromRoaring builds an n-bit vector with the members of rb set. Members
// at or beyond n are an error.
func FromRoaring(rb *roaring.Bitmap, n uint64) (Vector, error) {
	if !rb.IsEmpty() && uint64(rb.Maximum()) >= n {
		return Vector{}, fmt.Errorf("%w: member %d, length %d", ErrOutOfRange, rb.Maximum(), n)
	}
	words := make([]uint64, md.WordsFor(n))
	it := rb.Iterator()
	for it.HasNext() {
		i := uint64(it.Next())
		words[i>>md.WordSizeShift] |= 1 << (i & md.WordMask)
	}
	return Vector{words: words, n: n}, nil
}

// ToRoaring returns the set bits of v as a Roaring bitmap. v must be
// shorter than 2^32 bits.
func ToRoaring(v Vector) *roaring.Bitmap {
	if v.n > 1<<32 {
		panic("bit vector too long for a 32-bit roaring bitmap")
	}
	rb := roaring.New()
	for wi := range v.words {
		w := v.Word(uint64(wi))
		for w != 0 {
			rb.Add(uint32(uint64(wi)<<md.WordSizeShift + uint64(mbits.TrailingZeros64(w))))
			w &= w - 1
		}
	}
	return rb
}
