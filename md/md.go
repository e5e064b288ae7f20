package md

// Machine words are always 64 bits wide, whatever the platform's uint is.
const WordSizeShift = 6
const BitsPerWord = 1 << WordSizeShift
const BytesPerWord = BitsPerWord / 8
const WordMask = BitsPerWord - 1

// UintSizeShift is log2 of the native uint size.
const UintSizeShift = 5 + (^uint(0) >> 63)

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n uint64) uint64 {
	return (n + BitsPerWord - 1) >> WordSizeShift
}

// WordIndex returns the word holding bit i and the bit offset inside it.
func WordIndex(i uint64) (uint64, uint) {
	return i >> WordSizeShift, uint(i & WordMask)
}

// LowMask returns a word with the low n bits set (n <= 64).
func LowMask(n uint) uint64 {
	if n >= BitsPerWord {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
