package th

import "github.com/pi/succinct/md"

func set(words []uint64, i uint64) {
	words[i>>md.WordSizeShift] |= 1 << (i & md.WordMask)
}

// Uniform returns n random bits: positions in the first half are set with
// probability density0, positions in the second half with density1. The
// number of ones in each half is returned alongside.
func Uniform(g SeqGen, n uint64, density0, density1 float64) (words []uint64, ones0, ones1 uint64) {
	if density0 < 0 || density0 > 1 || density1 < 0 || density1 > 1 {
		panic("density must be in [0, 1]")
	}
	words = make([]uint64, md.WordsFor(n))
	for i := uint64(0); i < n; i++ {
		d := density1
		if i < n/2 {
			d = density0
		}
		if d == 0 || (d < 1 && Float(g) >= d) {
			continue
		}
		set(words, i)
		if i < n/2 {
			ones0++
		} else {
			ones1++
		}
	}
	return
}

// Parens returns a random balanced parenthesis sequence of n bits (1 is an
// open parenthesis). Each close is drawn with probability twist times the
// fraction of sequences that close at that point, so twist 0 yields one
// deep nest and twist 1 a natural looking random sequence. The whole
// sequence is wrapped in a single outer pair.
func Parens(g SeqGen, n uint64, twist float64) []uint64 {
	if n < 2 || n&1 != 0 {
		panic("parenthesis sequence length must be even and at least 2")
	}
	if twist < 0 || twist > 1 {
		panic("twist must be in [0, 1]")
	}
	words := make([]uint64, md.WordsFor(n))
	set(words, 0)
	// r is the current excess minus the outer pair
	r := uint64(0)
	for i := uint64(1); i < n-1; i++ {
		left := n - 1 - i
		coeff := float64(r*(left+r+2)) / (2 * float64(left) * float64(r+1))
		var closeP float64
		if coeff >= 1 {
			closeP = 1
		} else {
			closeP = twist * coeff
		}
		if closeP < 1 && Float(g) >= closeP {
			set(words, i)
			r++
		} else {
			r--
		}
	}
	return words
}

// ParensRec returns a balanced parenthesis sequence of n bits built by
// recursive partition: every range gets an outer pair and its interior is
// either one nested range or two siblings split at a random even offset.
func ParensRec(g SeqGen, n uint64) []uint64 {
	if n < 2 || n&1 != 0 {
		panic("parenthesis sequence length must be even and at least 2")
	}
	words := make([]uint64, md.WordsFor(n))
	type span struct{ start, end uint64 }
	stack := []span{{0, n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		set(words, s.start)
		if s.start+2 == s.end {
			continue
		}
		offset := (g.Next() % ((s.end - s.start - 2) / 2)) * 2
		if offset == 0 {
			stack = append(stack, span{s.start + 1, s.end - 1})
			continue
		}
		stack = append(stack, span{s.start + 1 + offset, s.end - 1}, span{s.start + 1, s.start + 1 + offset})
	}
	return words
}
