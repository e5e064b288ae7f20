package ranksel

import (
	"github.com/pi/succinct/bits"
	"github.com/pi/succinct/broadword"
	"github.com/pi/succinct/debug"
	"github.com/pi/succinct/gut"
	"github.com/pi/succinct/md"
)

// rankIndex holds the block counts shared by Rank and Select.
type rankIndex struct {
	words []uint64
	n     uint64
	ops   broadword.Ops

	// counts[i] is the number of ones in the words before block i; the
	// last entry holds the total.
	counts []uint64
	shift  uint
}

// Rank counts the ones before any position of a vector.
type Rank struct {
	rankIndex
}

// NewRank indexes v. opts may be nil.
func NewRank(v bits.Vector, opts *Options) (*Rank, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o = o.withDefaults()
	r := &Rank{}
	if err := r.build(v, o, nil); err != nil {
		return nil, err
	}
	return r, nil
}

// build fills the block counts in one pass over v. visit, if set, sees
// every word (tail bits cleared) with the number of ones before it and its
// population.
func (r *rankIndex) build(v bits.Vector, o Options, visit func(wi, w, before, pc uint64)) error {
	shift, _ := gut.Log2Exact(o.BlockWords)
	r.words = v.Words()
	r.n = v.Len()
	r.ops = o.Ops
	r.shift = shift

	nw := v.NumWords()
	nb := (nw + o.BlockWords - 1) >> shift
	r.counts = make([]uint64, nb+1)

	var c uint64
	for wi := uint64(0); wi < nw; wi++ {
		if wi&(o.BlockWords-1) == 0 {
			r.counts[wi>>shift] = c
		}
		w := r.words[wi]
		if wi == nw-1 {
			w &= v.TailMask()
		}
		pc := uint64(r.ops.Count(w))
		if visit != nil {
			visit(wi, w, c, pc)
		}
		c += pc
	}
	r.counts[nb] = c
	if c > r.n {
		return &PopulationError{Ones: c, Len: r.n}
	}
	debug.Log("rank: %d bits, %d ones, %d blocks of %d words", r.n, c, nb, o.BlockWords)
	return nil
}

// Rank returns the number of ones in [0, k). Requires k <= Len().
func (r *rankIndex) Rank(k uint64) uint64 {
	debug.Assert(k <= r.n, "rank %d past length %d", k, r.n)
	word := k >> md.WordSizeShift
	block := word >> r.shift
	c := r.counts[block]
	for i := block << r.shift; i < word; i++ {
		c += uint64(r.ops.Count(r.words[i]))
	}
	// the word holding k is read only if some of its bits precede k
	if off := uint(k & md.WordMask); off != 0 {
		c += uint64(r.ops.Count(r.words[word] & md.LowMask(off)))
	}
	return c
}

// Rank0 returns the number of zeros in [0, k).
func (r *rankIndex) Rank0(k uint64) uint64 {
	return k - r.Rank(k)
}

// Ones returns the population of the vector.
func (r *rankIndex) Ones() uint64 {
	return r.counts[len(r.counts)-1]
}

// Len returns the length of the vector in bits.
func (r *rankIndex) Len() uint64 {
	return r.n
}

// BitCount returns the size of the auxiliary tables in bits.
func (r *Rank) BitCount() uint64 {
	return uint64(len(r.counts)) * 64
}
