package ranksel

import (
	"github.com/pi/succinct/bits"
	"github.com/pi/succinct/debug"
	"github.com/pi/succinct/gut"
	"github.com/pi/succinct/md"
)

// Select finds the position of the k-th one of a vector. It answers Rank
// queries too, from the same block counts.
type Select struct {
	rankIndex

	// inventory[i] is the position of the (i*SampleOnes+1)-th one.
	inventory   []uint64
	sampleShift uint
}

// NewSelect indexes v. opts may be nil.
func NewSelect(v bits.Vector, opts *Options) (*Select, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o = o.withDefaults()

	s := &Select{}
	s.sampleShift, _ = gut.Log2Exact(o.SampleOnes)
	// the inventory is sampled in the same pass that builds the counts
	next := uint64(0)
	visit := func(wi, w, before, pc uint64) {
		for next < before+pc {
			off := uint64(s.ops.Select(w, int(next-before)))
			s.inventory = append(s.inventory, wi<<md.WordSizeShift+off)
			next += o.SampleOnes
		}
	}
	if err := s.build(v, o, visit); err != nil {
		return nil, err
	}
	return s, nil
}

// Select returns the position of the (k+1)-th one. Requires k < Ones().
func (s *Select) Select(k uint64) uint64 {
	debug.Assert(k < s.Ones(), "select %d of %d ones", k, s.Ones())
	i := k >> s.sampleShift
	pos := s.inventory[i]

	// ones before the sampled word: the sample is one number i*SampleOnes
	wi := pos >> md.WordSizeShift
	before := i<<s.sampleShift - uint64(s.ops.Count(s.words[wi]&md.LowMask(uint(pos&md.WordMask))))

	block := wi >> s.shift
	if s.counts[block+1] <= k {
		block++
		for s.counts[block+1] <= k {
			block++
		}
		wi = block << s.shift
		before = s.counts[block]
	}

	residual := k - before
	for {
		w := s.words[wi]
		pc := uint64(s.ops.Count(w))
		if residual < pc {
			return wi<<md.WordSizeShift + uint64(s.ops.Select(w, int(residual)))
		}
		residual -= pc
		wi++
	}
}

// BitCount returns the size of the block counts and inventory in bits.
func (s *Select) BitCount() uint64 {
	return uint64(len(s.counts)+len(s.inventory)) * 64
}
