package coord

import "github.com/ehrlich-b/cube/internal/cube"

// FRUD is the floppy-reduction coordinate: the permutation rank of the
// first 7 corner identities, sufficient once a cube is domino-reduced to
// track whether the remaining corner permutation is FR-solvable.
type FRUD struct{ permIndex }

func NewFRUD() FRUD { return FRUD{permIndex{dom: domainCorner, n: 7}} }

// FRFinish is the final-phase coordinate after floppy reduction: the
// permutation rank of the first 6 edge identities. Corners are already
// fully restored by FR, so only edges remain to track.
type FRFinish struct{ permIndex }

func NewFRFinish() FRFinish { return FRFinish{permIndex{dom: domainEdge, n: 6}} }

// HTRFinish is the final-phase coordinate for a chain that reaches FIN
// directly from HTR, skipping float-restore. Unlike FRFinish, corners are
// only class-aligned at this point (see cornerOrbitClass), not placed, so
// this phase still has real corner permutation work left alongside edges:
// the coordinate is the product of the first 7 corner identities' rank and
// the first 7 edge identities' rank, the same permutation-index building
// block FRUD/FRFinish use individually.
type HTRFinish struct {
	corners permIndex
	edges   permIndex
}

func NewHTRFinish() HTRFinish {
	return HTRFinish{
		corners: permIndex{dom: domainCorner, n: 7},
		edges:   permIndex{dom: domainEdge, n: 7},
	}
}

func (h HTRFinish) Range() int { return h.corners.Range() * h.edges.Range() }

func (h HTRFinish) Encode(c *cube.Cube) int {
	cp := h.corners.Encode(c)
	ep := h.edges.Encode(c)
	return cp + h.corners.Range()*ep
}

func (h HTRFinish) Decode(v int) *cube.Cube {
	cp := v % h.corners.Range()
	ep := v / h.corners.Range()

	cornerCube := h.corners.Decode(cp)
	edgeCube := h.edges.Decode(ep)

	c := cube.NewEmpty()
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, cornerCube.CornerIdentity(slot), 0)
	}
	for slot := 0; slot < numEdges; slot++ {
		cube.SetEdge(c, slot, edgeCube.EdgeIdentity(slot), false, false, false)
	}
	return c
}
