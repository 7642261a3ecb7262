package prune

import (
	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/moveset"
)

// Build floods outward from the goal set (coordinate value 0, by
// convention the solved representative for every family in this package)
// through the move set's st_moves via breadth-first search, filling in
// exact distances one frontier at a time until the frontier empties or
// MaxDepth is reached.
func Build(c coord.Coordinate, ms moveset.MoveSet) *Table {
	t := NewTable(c.Range())
	t.set(0, 0)

	frontier := []int{0}
	for depth := 1; len(frontier) > 0 && depth < MaxDepth; depth++ {
		var next []int
		for _, cur := range frontier {
			base := c.Decode(cur)
			for _, turn := range ms.StMoves {
				nb := base.Clone()
				nb.Turn(turn)
				nc := c.Encode(nb)
				if t.Get(nc) <= depth {
					continue
				}
				t.set(nc, depth)
				next = append(next, nc)
			}
		}
		frontier = next
	}
	return t
}
