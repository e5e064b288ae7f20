// Package balparen matches balanced parentheses stored in a bits.Vector,
// with 1 for an open parenthesis and 0 for a close.
//
// The excess of a position is the number of opens minus the number of
// closes up to and including it. The matching close of an open at p is the
// first position after p whose excess is one less than the excess of p.
// Most matches lie within a word or two and are found by a direct scan
// (the near path). The others (the far path) use per-block excess minima
// and a min-tree over the blocks to jump to the one block that holds the
// match.
package balparen
