// Package coord implements the coordinate encoders each search phase prunes
// against: pure functions projecting a cube state onto a small bounded
// integer that captures one phase's residual entropy. Decode need not
// invert every reachable cube, only produce some representative state that
// Encode maps back to the requested coordinate value — the contract the
// pruning-table bootstrap in internal/prune actually relies on.
package coord

import "github.com/ehrlich-b/cube/internal/cube"

// Coordinate is a compile-time-bounded projection of cube state.
type Coordinate interface {
	// Range is the exclusive upper bound of Encode's return value.
	Range() int
	// Encode projects c onto [0, Range()).
	Encode(c *cube.Cube) int
	// Decode returns a representative cube for which Encode returns v.
	Decode(v int) *cube.Cube
}
