package broadword

import "math/bits"

// CountHardware counts set bits with the CPU's population count instruction
// where the compiler has one.
func CountHardware(x uint64) int {
	return bits.OnesCount64(x)
}

// byteSums leaves the population count of each byte of x in that byte.
func byteSums(x uint64) uint64 {
	s := x - ((x & (0xa * onesStep4)) >> 1)
	s = (s & (3 * onesStep4)) + ((s >> 2) & (3 * onesStep4))
	return (s + (s >> 4)) & (0x0f * onesStep8)
}

// CountBroadword sums the byte counts with a single multiplication.
func CountBroadword(x uint64) int {
	return int(byteSums(x) * onesStep8 >> 56)
}

// CountNoMul folds the byte counts with shifts instead of a multiplication.
func CountNoMul(x uint64) int {
	s := byteSums(x)
	s += s >> 8
	s += s >> 16
	return int((s + (s >> 32)) & 0x7f)
}

// CountTable looks up each byte in a 256-entry table.
func CountTable(x uint64) int {
	c := 0
	for i := 8; i != 0; i-- {
		c += int(popcountTable[x&0xff])
		x >>= 8
	}
	return c
}

func CountTableUnrolled(x uint64) int {
	return int(popcountTable[x&0xff]) + int(popcountTable[x>>8&0xff]) +
		int(popcountTable[x>>16&0xff]) + int(popcountTable[x>>24&0xff]) +
		int(popcountTable[x>>32&0xff]) + int(popcountTable[x>>40&0xff]) +
		int(popcountTable[x>>48&0xff]) + int(popcountTable[x>>56])
}
