// Package broadword implements population count and select-in-word on
// 64-bit words.
//
// Every operation comes in several interchangeable variants: the hardware
// instruction, word-parallel (broadword) arithmetic, and byte lookup tables.
// They differ only in speed. SelectClearLowest is the reference the others
// are checked against.
//
// Bits are numbered from the least significant end: bit k of a word is
// (x >> k) & 1, and Select(x, 0) is the position of the lowest set bit.
package broadword
