package gut

var smallBitLenTable = [16]int{
	0,
	1,
	2,
	2,
	3,
	3,
	3,
	3,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
}

// BitLen returns the number of bits needed to represent x.
func BitLen(x uint64) (n int) {
	if x >= 0x100000000 {
		x >>= 32
		n += 32
	}
	if x >= 0x10000 {
		x >>= 16
		n += 16
	}
	if x >= 0x100 {
		x >>= 8
		n += 8
	}
	if x >= 0x10 {
		x >>= 4
		n += 4
	}

	return n + smallBitLenTable[x]
}

// IsPow2 reports whether x is a non-zero power of two.
func IsPow2(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// Log2Exact returns log2(x) for a power of two, ok is false otherwise.
func Log2Exact(x uint64) (shift uint, ok bool) {
	if !IsPow2(x) {
		return 0, false
	}
	return uint(BitLen(x) - 1), true
}
