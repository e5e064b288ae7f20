package th

import "math/rand"

// SeqGen is a seedable source of pseudo-random 64-bit values. Generators
// are passed explicitly; nothing in this module keeps process-wide
// random state.
type SeqGen interface {
	Seed(value uint64)
	Next() uint64
	Reset()
}

const (
	SgRand = iota
	SgXorShift
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgXorShift:
		g := &xorShiftSG{}
		g.Reset()
		return g
	default:
		panic("invalid sequence generator type")
	}
}

// randSG draws from math/rand. Unseeded it uses seed 1.
type randSG struct {
	r      *rand.Rand
	seed   int64
	seeded bool
}

func (g *randSG) Next() uint64 {
	if g.r == nil {
		g.Reset()
	}
	return g.r.Uint64()
}
func (g *randSG) Reset() {
	seed := int64(1)
	if g.seeded {
		seed = g.seed
	}
	g.r = rand.New(rand.NewSource(seed))
}
func (g *randSG) Seed(value uint64) {
	g.seed = int64(value)
	g.seeded = true
	g.Reset()
}

// xorShiftSG is xorshift1024*. Unseeded it starts from sixteen
// 0xAAAAAAAAAAAAAAAA words, the state the benchmark numbers were taken with.
type xorShiftSG struct {
	s      [16]uint64
	p      int
	seed   uint64
	seeded bool
}

func (g *xorShiftSG) Next() uint64 {
	s0 := g.s[g.p]
	g.p = (g.p + 1) & 15
	s1 := g.s[g.p]
	s1 ^= s1 << 31
	s1 ^= s1 >> 11
	s0 ^= s0 >> 30
	g.s[g.p] = s0 ^ s1
	return g.s[g.p] * 1181783497276652981
}

func (g *xorShiftSG) Reset() {
	g.p = 0
	if !g.seeded {
		for i := range g.s {
			g.s[i] = 0xAAAAAAAAAAAAAAAA
		}
		return
	}
	// splitmix64 expands the seed into a non-zero state
	x := g.seed
	for i := range g.s {
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		g.s[i] = z ^ (z >> 31)
	}
}

func (g *xorShiftSG) Seed(value uint64) {
	g.seed = value
	g.seeded = true
	g.Reset()
}

// Float returns a value in [0, 1) drawn from g.
func Float(g SeqGen) float64 {
	return float64(g.Next()>>11) / (1 << 53)
}
