package broadword

import (
	"math/bits"

	"github.com/pi/succinct/debug"
)

// All Select variants return the position (0..63) of the (k+1)-th set bit
// of x. x must have more than k set bits; otherwise the result is
// meaningless.

// SelectClearLowest skips the low half when it holds too few ones, clears
// the lowest set bit k times and counts trailing zeros.
func SelectClearLowest(x uint64, k int) int {
	debug.Assert(k >= 0 && bits.OnesCount64(x) > k, "select %d in %#x", k, x)
	if low := bits.OnesCount32(uint32(x)); k >= low {
		k -= low
		x &= 0xffffffff00000000
	}
	for ; k > 0; k-- {
		x &= x - 1
	}
	return bits.TrailingZeros64(x)
}

// SelectBroadword locates the byte holding the answer by comparing all
// cumulative byte counts with k at once, then finishes in selectInByte.
func SelectBroadword(x uint64, k int) int {
	debug.Assert(k >= 0 && bits.OnesCount64(x) > k, "select %d in %#x", k, x)
	sums := byteSums(x) * onesStep8

	// high bit of each byte is set where the cumulative count is <= k
	kStep8 := uint64(k) * onesStep8
	leq := ((kStep8 | msbsStep8) - sums) & msbsStep8
	place := uint(bits.OnesCount64(leq)) * 8

	r := uint64(k) - ((sums << 8) >> place & 0xff)
	return int(place) + int(selectInByte[x>>place&0xff|r<<8])
}

// SelectGogPetri finds the byte with the overflow table and a trailing
// zero count instead of a second population count.
func SelectGogPetri(x uint64, k int) int {
	debug.Assert(k >= 0 && bits.OnesCount64(x) > k, "select %d in %#x", k, x)
	sums := byteSums(x) * onesStep8

	place := uint(bits.TrailingZeros64((sums+overflow[k])&msbsStep8)>>3) << 3

	r := uint64(k) - ((sums << 8) >> place & 0xff)
	return int(place) + int(selectInByte[x>>place&0xff|r<<8])
}

// SelectTable walks the bytes with a running count.
func SelectTable(x uint64, k int) int {
	debug.Assert(k >= 0 && bits.OnesCount64(x) > k, "select %d in %#x", k, x)
	for i := uint(0); i < 64; i += 8 {
		b := x >> i & 0xff
		c := int(popcountTable[b])
		if k < c {
			return int(i) + int(selectInByte[b|uint64(k)<<8])
		}
		k -= c
	}
	return -1
}
