// Package atomic has typed counters for diagnostics that are bumped from
// read-only query paths, so concurrent queries stay free of data races.
package atomic

import sa "sync/atomic"

// Counter is a uint64 counter. The zero value is ready to use.
type Counter struct {
	v sa.Uint64
}

func (p *Counter) Get() uint64 {
	return p.v.Load()
}

func (p *Counter) Set(new uint64) {
	p.v.Store(new)
}

func (p *Counter) Swap(new uint64) (old uint64) {
	return p.v.Swap(new)
}

// Inc adds delta and returns the new value.
func (p *Counter) Inc(delta uint64) uint64 {
	return p.v.Add(delta)
}

// Reset zeroes the counter and returns the previous value.
func (p *Counter) Reset() uint64 {
	return p.v.Swap(0)
}
