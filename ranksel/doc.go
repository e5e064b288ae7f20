// Package ranksel answers rank and select queries over a bits.Vector.
//
// Rank keeps one cumulative count of ones per block of words and scans at
// most one block per query. Select adds an inventory holding the position
// of every S-th one, so a query starts next to its answer.
//
// Indexes are immutable after construction and safe for concurrent use.
// Query arguments are not range checked: out-of-range arguments give
// undefined results (builds with the debug tag panic instead).
package ranksel
