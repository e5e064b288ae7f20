package balparen

import (
	"math"

	"github.com/pi/succinct/atomic"
	"github.com/pi/succinct/bits"
	"github.com/pi/succinct/broadword"
	"github.com/pi/succinct/debug"
	"github.com/pi/succinct/gut"
	"github.com/pi/succinct/md"
)

// Matcher finds matching close parentheses. It is immutable after New
// apart from its diagnostic counter, and safe for concurrent use.
type Matcher struct {
	words []uint64
	n     uint64

	blockShift uint // log2 of bits per block
	blockBits  uint64
	nearWords  uint64

	// excess[b] is the excess before block b; the last entry is the final
	// excess.
	excess []int64
	// minRel[b] is the lowest excess inside block b, relative to excess[b].
	minRel []int16

	// tree is a min-heap layout over the absolute block minima, leaves at
	// [leaves, 2*leaves), padded with MaxInt64.
	tree   []int64
	leaves int

	far atomic.Counter
}

// New indexes the parenthesis sequence v. It fails if v is not balanced.
// opts may be nil.
func New(v bits.Vector, opts *Options) (*Matcher, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o = o.withDefaults()

	wordShift, _ := gut.Log2Exact(o.BlockWords)
	m := &Matcher{
		words:      v.Words(),
		n:          v.Len(),
		blockShift: wordShift + md.WordSizeShift,
		blockBits:  o.BlockWords << md.WordSizeShift,
		nearWords:  o.NearWords,
	}

	nw := v.NumWords()
	nb := (nw + o.BlockWords - 1) >> wordShift
	m.excess = make([]int64, nb+1)
	m.minRel = make([]int16, nb)

	var e int64
	firstNegative := -1
	for b := uint64(0); b < nb; b++ {
		m.excess[b] = e
		var rel int64
		low := int64(math.MaxInt64)
		for wi := b << wordShift; wi < (b+1)<<wordShift && wi < nw; wi++ {
			nbits := uint(md.BitsPerWord)
			if wi == nw-1 {
				nbits = uint(m.n - wi<<md.WordSizeShift)
			}
			delta, wlow := wordExcess(m.words[wi], nbits)
			if rel+wlow < low {
				low = rel + wlow
			}
			rel += delta
		}
		m.minRel[b] = int16(low)
		if e+low < 0 && firstNegative < 0 {
			firstNegative = int(b)
		}
		e += rel
	}
	m.excess[nb] = e

	if firstNegative >= 0 {
		// find the first position with excess -1
		start := uint64(firstNegative) << m.blockShift
		q, _, _ := m.scan(start, m.blockEnd(start), m.excess[firstNegative]+1)
		return nil, &UnbalancedError{Pos: q, Excess: -1}
	}
	if e != 0 {
		return nil, &UnbalancedError{Pos: m.n, Excess: e}
	}

	m.buildTree(int(nb))
	debug.Log("balparen: %d bits, %d blocks of %d bits", m.n, nb, m.blockBits)
	return m, nil
}

func (m *Matcher) buildTree(nb int) {
	m.leaves = 1
	for m.leaves < nb {
		m.leaves <<= 1
	}
	m.tree = make([]int64, 2*m.leaves)
	for i := range m.tree {
		m.tree[i] = math.MaxInt64
	}
	for b := 0; b < nb; b++ {
		m.tree[m.leaves+b] = m.excess[b] + int64(m.minRel[b])
	}
	for i := m.leaves - 1; i > 0; i-- {
		m.tree[i] = min(m.tree[2*i], m.tree[2*i+1])
	}
}

// firstBlockAtMost returns the first block at or after from whose minimum
// excess is at most v, or -1.
func (m *Matcher) firstBlockAtMost(from int, v int64) int {
	if from >= m.leaves {
		return -1
	}
	i := from + m.leaves
	for m.tree[i] > v {
		// climb while i is a right child, then step to the next subtree
		for i&1 == 1 {
			i >>= 1
		}
		if i == 0 {
			return -1
		}
		i++
	}
	for i < m.leaves {
		i <<= 1
		if m.tree[i] > v {
			i++
		}
	}
	return i - m.leaves
}

func (m *Matcher) blockEnd(pos uint64) uint64 {
	end := (pos>>m.blockShift + 1) << m.blockShift
	if end > m.n {
		end = m.n
	}
	return end
}

// scan walks [from, to) adding one per open and subtracting one per close
// to d, and returns the first position where d reaches zero. If there is
// none it returns to and the final d. d must be positive.
func (m *Matcher) scan(from, to uint64, d int64) (uint64, int64, bool) {
	i := from
	for ; i < to && i&7 != 0; i++ {
		if d += m.step(i); d == 0 {
			return i, 0, true
		}
	}
	for ; i+8 <= to; i += 8 {
		b := uint8(m.words[i>>md.WordSizeShift] >> (i & md.WordMask))
		if d+int64(byteMin[b]) <= 0 {
			break
		}
		d += int64(byteDelta[b])
	}
	for ; i < to; i++ {
		if d += m.step(i); d == 0 {
			return i, 0, true
		}
	}
	return to, d, false
}

func (m *Matcher) step(i uint64) int64 {
	return int64(m.words[i>>md.WordSizeShift]>>(i&md.WordMask)&1)*2 - 1
}

// FindClose returns the position of the parenthesis matching the open
// parenthesis at pos. The result is undefined if pos does not hold an open
// parenthesis.
func (m *Matcher) FindClose(pos uint64) uint64 {
	debug.Assert(pos < m.n && m.IsOpen(pos), "find close at %d: not an open parenthesis", pos)
	nearEnd := (pos>>md.WordSizeShift + 1 + m.nearWords) << md.WordSizeShift
	if nearEnd > m.n {
		nearEnd = m.n
	}
	q, d, ok := m.scan(pos+1, nearEnd, 1)
	if ok {
		return q
	}
	m.far.Inc(1)
	return m.findCloseFar(q, d)
}

// findCloseFar continues a search at from with relative excess d > 0.
func (m *Matcher) findCloseFar(from uint64, d int64) uint64 {
	if from >= m.n {
		return m.n
	}
	b := from >> m.blockShift
	// absolute excess the match brings us back to
	var target int64
	if from&(m.blockBits-1) != 0 {
		q, rest, ok := m.scan(from, m.blockEnd(from), d)
		if ok {
			return q
		}
		b++
		target = m.excess[b] - rest
	} else {
		target = m.excess[b] - d
	}

	nb := m.firstBlockAtMost(int(b), target)
	if nb < 0 {
		return m.n
	}
	start := uint64(nb) << m.blockShift
	q, _, ok := m.scan(start, m.blockEnd(start), m.excess[nb]-target)
	if !ok {
		return m.n
	}
	return q
}

// IsOpen reports whether pos holds an open parenthesis.
func (m *Matcher) IsOpen(pos uint64) bool {
	return m.words[pos>>md.WordSizeShift]>>(pos&md.WordMask)&1 == 1
}

// Excess returns the number of opens minus closes in [0, pos].
func (m *Matcher) Excess(pos uint64) int64 {
	debug.Assert(pos < m.n, "excess at %d past length %d", pos, m.n)
	b := pos >> m.blockShift
	var ones uint64
	wi := b << (m.blockShift - md.WordSizeShift)
	for ; wi < pos>>md.WordSizeShift; wi++ {
		ones += uint64(broadword.CountHardware(m.words[wi]))
	}
	ones += uint64(broadword.CountHardware(m.words[wi] & md.LowMask(uint(pos&md.WordMask)+1)))
	seen := pos - b<<m.blockShift + 1
	return m.excess[b] + int64(2*ones) - int64(seen)
}

// FarFindClose returns how many FindClose calls took the far path.
func (m *Matcher) FarFindClose() uint64 {
	return m.far.Get()
}

// ResetCounters zeroes the far path counter and returns its old value.
func (m *Matcher) ResetCounters() uint64 {
	return m.far.Reset()
}

// Len returns the length of the sequence in bits.
func (m *Matcher) Len() uint64 {
	return m.n
}

// BitCount returns the size of the excess summaries in bits.
func (m *Matcher) BitCount() uint64 {
	return uint64(len(m.excess))*64 + uint64(len(m.minRel))*16 + uint64(len(m.tree))*64
}
