package coord

import "github.com/ehrlich-b/cube/internal/cube"

// domain selects which piece kind a permIndex coordinate reads identities
// from.
type domain int

const (
	domainCorner domain = iota
	domainEdge
)

// permIndex is a generic permutation-index coordinate: the Lehmer-code rank
// of the identities held by slots [0, n) of the chosen domain. It leaves
// orientation untouched (zero) and fills any slots beyond n with the
// remaining identities in slot order, so Decode always yields a
// well-formed, if arbitrary, representative cube.
type permIndex struct {
	dom domain
	n   int
}

func (p permIndex) Range() int { return factorial(p.n) }

func (p permIndex) Encode(c *cube.Cube) int {
	perm := make([]int, p.n)
	for slot := 0; slot < p.n; slot++ {
		if p.dom == domainCorner {
			perm[slot] = c.CornerIdentity(slot)
		} else {
			perm[slot] = c.EdgeIdentity(slot)
		}
	}
	return rankPermutation(perm)
}

func (p permIndex) Decode(v int) *cube.Cube {
	perm := unrankPermutation(v, p.n)
	total := numCorners
	if p.dom == domainEdge {
		total = numEdges
	}

	used := make(map[int]bool, total)
	for _, id := range perm {
		used[id] = true
	}
	var rest []int
	for id := 0; id < total; id++ {
		if !used[id] {
			rest = append(rest, id)
		}
	}

	c := cube.NewEmpty()
	ri := 0
	for slot := 0; slot < total; slot++ {
		var id int
		if slot < p.n {
			id = perm[slot]
		} else {
			id = rest[ri]
			ri++
		}
		if p.dom == domainCorner {
			cube.SetCorner(c, slot, id, 0)
		} else {
			cube.SetEdge(c, slot, id, false, false, false)
		}
	}

	if p.dom == domainCorner {
		for slot := 0; slot < numEdges; slot++ {
			cube.SetEdge(c, slot, slot, false, false, false)
		}
	} else {
		for slot := 0; slot < numCorners; slot++ {
			cube.SetCorner(c, slot, slot, 0)
		}
	}
	return c
}
