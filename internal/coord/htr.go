package coord

import "github.com/ehrlich-b/cube/internal/cube"

// esliceOrder is the permutation rank of the 4 E-slice edge identities
// (4,5,6,7) among slots 4..7, used only once a cube is already E-sliced so
// those identities are known to occupy those slots in some order.
type esliceOrder struct{}

func (esliceOrder) Range() int { return 24 } // 4!

func (esliceOrder) Encode(c *cube.Cube) int {
	perm := make([]int, 4)
	for i := 0; i < 4; i++ {
		perm[i] = c.EdgeIdentity(4+i) - 4
	}
	return rankPermutation(perm)
}

func (esliceOrder) Decode(v int) *cube.Cube {
	perm := unrankPermutation(v, 4)
	c := cube.NewEmpty()
	for i := 0; i < 4; i++ {
		cube.SetEdge(c, 4+i, perm[i]+4, false, false, false)
	}
	for _, slot := range []int{0, 1, 2, 3, 8, 9, 10, 11} {
		cube.SetEdge(c, slot, slot, false, false, false)
	}
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, slot, 0)
	}
	return c
}

// cornerOrbitClass is the choose-4-of-8 coordinate distinguishing which 4
// corner slots currently hold a "class 1" corner identity. A half turn
// moves each corner of the turned face to the diagonally opposite slot of
// that face, which differs from the slot it left in exactly two of its
// three faces. So the parity of a corner's 3 faces (U/D, F/B, L/R, each
// scored 0 or 1) is conserved by every half turn, splitting all 8 corners
// into two 4-element classes that half turns never cross. A quarter turn
// moves a corner to an adjacent slot differing in exactly one face, so it
// always carries that corner into the other class. The slot order already
// alternates class with index (UBL, UFR, DFL, DBR are class 1; UBR, UFL,
// DFR, DBL are class 0), so a slot is class 1 exactly when slot%2 == 0.
//
// A state solvable by half turns alone must have every corner sitting in a
// slot matching its home class (home class equals the identity's own
// number, since home slot == identity). That is a necessary condition for
// half-turn reduction and is exactly the "corner-orbit-class" term; it is
// coarser than the full corner permutation, since it does not care which
// specific class-1 corner occupies which class-1 slot — only that the
// classes line up. Sorting corners within a class is left to the phase
// that follows half-turn reduction.
//
// cornerClassOrder lists the 8 corner slots with the 4 class-1 home slots
// first, so that the solved cube — every class-1 identity already sitting
// in a class-1 slot — ranks to 0 under the combinatorial number system,
// matching every other coordinate's "0 means already reduced" convention.
type cornerOrbitClass struct{}

var cornerClassOrder = []int{0, 2, 4, 6, 1, 3, 5, 7}

func (cornerOrbitClass) Range() int { return 70 } // C(8,4)

func (cornerOrbitClass) Encode(c *cube.Cube) int {
	var class1Pos []int
	for i, slot := range cornerClassOrder {
		if c.CornerIdentity(slot)%2 == 0 {
			class1Pos = append(class1Pos, i)
		}
	}
	return rankCombination(class1Pos)
}

var (
	cornerClass1IDs = []int{0, 2, 4, 6}
	cornerClass0IDs = []int{1, 3, 5, 7}
)

func (cornerOrbitClass) Decode(v int) *cube.Cube {
	class1Pos := unrankCombination(v, 4)
	isClass1Pos := make(map[int]bool, 4)
	for _, p := range class1Pos {
		isClass1Pos[p] = true
	}

	c := cube.NewEmpty()
	i1, i0 := 0, 0
	for i, slot := range cornerClassOrder {
		if isClass1Pos[i] {
			cube.SetCorner(c, slot, cornerClass1IDs[i1], 0)
			i1++
		} else {
			cube.SetCorner(c, slot, cornerClass0IDs[i0], 0)
			i0++
		}
	}
	for slot := 0; slot < numEdges; slot++ {
		cube.SetEdge(c, slot, slot, false, false, false)
	}
	return c
}

// nonESliceSlots are the 8 edge slots outside the E-slice, in ascending
// order: the M-slice pair (UB/UF/DF/DB) and S-slice pair (UR/UL/DR/DL)
// share these 8 positions once a cube is E-sliced. Used by HTR's merge
// step, where iteration order doesn't matter.
var nonESliceSlots = []int{0, 1, 2, 3, 8, 9, 10, 11}

// edgeClassOrder lists the same 8 slots with the 4 M-slice home slots
// first, for the same solved-ranks-to-0 reason as cornerClassOrder.
var edgeClassOrder = []int{0, 2, 8, 10, 1, 3, 9, 11}

// edgeOrbitClass is the choose-4-of-8 coordinate (restricted to the 8
// non-E-slice slots) distinguishing which 4 currently hold an M-slice edge
// identity rather than an S-slice one. Like the corner classes above, every
// half turn maps the M-slice pair {UB,UF,DF,DB} and the S-slice pair
// {UR,UL,DR,DL} each to themselves — a half turn of any face swaps two
// edges sharing that face, and within a face the two edges on the M-slice
// diagonal never swap with the two on the S-slice diagonal. Quarter turns
// do not keep the groups apart (a quarter U moves UB into UR). Reaching
// class-alignment here is necessary for half-turn reduction but, like the
// corner classes, leaves the exact placement within each class for a
// later phase.
type edgeOrbitClass struct{}

func (edgeOrbitClass) Range() int { return 70 } // C(8,4)

func (edgeOrbitClass) Encode(c *cube.Cube) int {
	var mGroupPos []int
	for i, slot := range edgeClassOrder {
		if c.EdgeIdentity(slot)%2 == 0 {
			mGroupPos = append(mGroupPos, i)
		}
	}
	return rankCombination(mGroupPos)
}

var (
	edgeMGroupIDs = []int{0, 2, 8, 10}
	edgeSGroupIDs = []int{1, 3, 9, 11}
)

func (edgeOrbitClass) Decode(v int) *cube.Cube {
	mPos := unrankCombination(v, 4)
	isMPos := make(map[int]bool, 4)
	for _, p := range mPos {
		isMPos[p] = true
	}

	c := cube.NewEmpty()
	mi, si := 0, 0
	for i, slot := range edgeClassOrder {
		if isMPos[i] {
			cube.SetEdge(c, slot, edgeMGroupIDs[mi], false, false, false)
			mi++
		} else {
			cube.SetEdge(c, slot, edgeSGroupIDs[si], false, false, false)
			si++
		}
	}
	for i := 0; i < 4; i++ {
		cube.SetEdge(c, 4+i, 4+i, false, false, false)
	}
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, slot, 0)
	}
	return c
}

// HTR is the half-turn-reduction coordinate: the product of
// corner-orbit-class, edge-orbit-class, and the internal order of the
// E-slice edges, composed via mixed radix. Zero means the state sits in
// the coset reachable by half turns of all six faces alone — a genuinely
// coarser condition than every corner and edge sitting in its exact home
// slot, since the orbit-class terms only test class membership, leaving
// real permutation work (within each class, and the E-slice internal
// order is already a separate factor) for the phase that follows.
// Reached only after domino reduction, where corner twist and edge
// orientation are already fixed and the E-slice edges already occupy the
// E-slice positions.
type HTR struct {
	corners cornerOrbitClass
	edges   edgeOrbitClass
	eorder  esliceOrder
}

func NewHTR() HTR { return HTR{} }

func (h HTR) Range() int { return h.corners.Range() * h.edges.Range() * h.eorder.Range() }

func (h HTR) Encode(c *cube.Cube) int {
	cp := h.corners.Encode(c)
	ep := h.edges.Encode(c)
	eo := h.eorder.Encode(c)
	return cp + h.corners.Range()*(ep+h.edges.Range()*eo)
}

func (h HTR) Decode(v int) *cube.Cube {
	cp := v % h.corners.Range()
	v /= h.corners.Range()
	ep := v % h.edges.Range()
	v /= h.edges.Range()
	eo := v % h.eorder.Range()

	cornerCube := h.corners.Decode(cp)
	edgeCube := h.edges.Decode(ep)
	eorderCube := h.eorder.Decode(eo)

	c := cube.NewEmpty()
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, cornerCube.CornerIdentity(slot), 0)
	}
	for i := 0; i < 4; i++ {
		cube.SetEdge(c, 4+i, eorderCube.EdgeIdentity(4+i), false, false, false)
	}
	for _, slot := range nonESliceSlots {
		cube.SetEdge(c, slot, edgeCube.EdgeIdentity(slot), false, false, false)
	}
	return c
}
