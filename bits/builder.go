package bits

//
// Builder: an owned, growable bit buffer
//

import "github.com/pi/succinct/md"

// Builder accumulates bits before they are frozen into a Vector.
type Builder struct {
	len  uint64
	bits []uint64
}

func NewBuilder(n uint64) *Builder {
	return &Builder{
		bits: make([]uint64, md.WordsFor(n)),
		len:  n,
	}
}

// Len returns the length in bits.
func (b *Builder) Len() uint64 {
	return b.len
}

func (b *Builder) Put(index uint64, value bool) {
	if index >= b.len {
		panic("bit builder index out of bounds")
	}
	wi := index >> md.WordSizeShift
	bi := index & md.WordMask
	if value {
		b.bits[wi] |= 1 << bi
	} else {
		b.bits[wi] &= ^(1 << bi)
	}
}

func (b *Builder) Set(index uint64) {
	b.Put(index, true)
}

func (b *Builder) Clear(index uint64) {
	b.Put(index, false)
}

func (b *Builder) Get(index uint64) bool {
	if index >= b.len {
		panic("bit builder index out of bounds")
	}
	return (b.bits[index>>md.WordSizeShift]>>(index&md.WordMask))&1 == 1
}

// Append adds one bit at the end.
func (b *Builder) Append(value bool) {
	if b.len&md.WordMask == 0 && b.len>>md.WordSizeShift == uint64(len(b.bits)) {
		b.bits = append(b.bits, 0)
	}
	b.len++
	b.Put(b.len-1, value)
}

// AppendString appends '1'/'(' as set bits and '0'/')' as clear bits;
// any other rune is skipped.
func (b *Builder) AppendString(s string) {
	for _, r := range s {
		switch r {
		case '1', '(':
			b.Append(true)
		case '0', ')':
			b.Append(false)
		}
	}
}

// Vector returns a view over the builder's words. Further changes to the
// builder are visible through it, so stop building first.
func (b *Builder) Vector() Vector {
	return Vector{words: b.bits[:md.WordsFor(b.len)], n: b.len}
}
