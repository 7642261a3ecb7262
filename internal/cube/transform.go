package cube

// axisStep describes one whole-cube quarter rotation about an axis: the
// three edge layers (the layer touching each extreme face, and the
// equatorial slice between them) and the two corner layers it cycles, plus
// the role permutation it induces on the three edge-orientation axis bits
// (ud, fb, rl). Corner twist is left unchanged by a transform — a
// documented simplification (see DESIGN.md): a whole-cube rotation can
// never by itself scramble a solved cube, and leaving twist values
// untouched is sufficient to keep a transformed solved cube exactly
// solved, without resolving the harder question of how a
// chirality-preserving rotation should reshuffle nonzero twist values.
type axisStep struct {
	edgeGroups   [3][4]int
	cornerGroups [2][4]int
	rolePerm     [3]int
}

// role indices into roleBits
const (
	roleUD = iota
	roleFB
	roleRL
)

var roleBits = [3]byte{edgeUDFlip, edgeFBFlip, edgeRLFlip}

var axisSteps = [3]axisStep{
	Y: {
		edgeGroups: [3][4]int{
			{edgeUR, edgeUF, edgeUL, edgeUB},
			{edgeFL, edgeBL, edgeBR, edgeFR},
			{edgeDR, edgeDF, edgeDL, edgeDB},
		},
		cornerGroups: [2][4]int{
			{cornerUBR, cornerUFR, cornerUFL, cornerUBL},
			{cornerDBR, cornerDFR, cornerDFL, cornerDBL},
		},
		rolePerm: [3]int{roleUD, roleRL, roleFB},
	},
	X: {
		edgeGroups: [3][4]int{
			{edgeFL, edgeDL, edgeBL, edgeUL},
			{edgeDF, edgeDB, edgeUB, edgeUF},
			{edgeFR, edgeDR, edgeBR, edgeUR},
		},
		cornerGroups: [2][4]int{
			{cornerUFL, cornerDFL, cornerDBL, cornerUBL},
			{cornerUFR, cornerDFR, cornerDBR, cornerUBR},
		},
		rolePerm: [3]int{roleFB, roleUD, roleRL},
	},
	Z: {
		edgeGroups: [3][4]int{
			{edgeFR, edgeDF, edgeFL, edgeUF},
			{edgeDR, edgeDL, edgeUL, edgeUR},
			{edgeBR, edgeDB, edgeBL, edgeUB},
		},
		cornerGroups: [2][4]int{
			{cornerUFR, cornerDFR, cornerDFL, cornerUFL},
			{cornerUBR, cornerDBR, cornerDBL, cornerUBL},
		},
		rolePerm: [3]int{roleRL, roleFB, roleUD},
	},
}

// shiftGroup applies one quarter rotation's cyclic shift to perm, a
// slot->source-slot mapping, for a single 4-element destination-order group.
func shiftGroup(perm []int, group [4]int) []int {
	out := make([]int, len(perm))
	copy(out, perm)
	prev := group[3]
	for _, dst := range group {
		out[dst] = perm[prev]
		prev = dst
	}
	return out
}

func composeRole(a, b [3]int) [3]int {
	var out [3]int
	for i := range out {
		out[i] = a[b[i]]
	}
	return out
}

type transformMask struct {
	edgePerm   vec128
	cornerPerm vec128
	rolePerm   [3]int
}

// transformTable holds the baked masks for all 9 transformations
// (3 axes * 3 directions), indexed the same way turns are: axis*3+direction.
var transformTable [9]transformMask

func init() {
	for axis := Axis(0); axis < 3; axis++ {
		step := axisSteps[axis]
		edgePerm := make([]int, numEdges)
		cornerPerm := make([]int, numCorners)
		for i := range edgePerm {
			edgePerm[i] = i
		}
		for i := range cornerPerm {
			cornerPerm[i] = i
		}
		role := [3]int{roleUD, roleFB, roleRL}

		for k := 1; k <= 3; k++ {
			for _, g := range step.edgeGroups {
				edgePerm = shiftGroup(edgePerm, g)
			}
			for _, g := range step.cornerGroups {
				cornerPerm = shiftGroup(cornerPerm, g)
			}
			role = composeRole(step.rolePerm, role)

			var m transformMask
			for i := 0; i < numEdges; i++ {
				m.edgePerm[i] = byte(edgePerm[i])
			}
			for i := numEdges; i < 16; i++ {
				m.edgePerm[i] = byte(i)
			}
			for i := 0; i < numCorners; i++ {
				m.cornerPerm[i] = byte(cornerPerm[i])
			}
			for i := numCorners; i < 16; i++ {
				m.cornerPerm[i] = byte(i)
			}
			m.rolePerm = role
			idx := int(axis)*3 + int(directionForStep(k))
			transformTable[idx] = m
		}
	}
}

func applyRolePerm(b byte, perm [3]int) byte {
	id := b & edgeIDMask
	var ori byte
	for i := 0; i < 3; i++ {
		if b&roleBits[perm[i]] != 0 {
			ori |= roleBits[i]
		}
	}
	return byte(id) | ori
}

// Transform applies a whole-cube rotation: a shuffle of both vectors, a
// relabeling of every piece identity by the inverse of that shuffle, plus
// a relabeling of which edge-orientation bit means ud/fb/rl. It never
// changes solved-ness.
func (c *Cube) Transform(t Transformation) {
	idx := int(t.Axis)*3 + int(t.Direction)
	mask := &transformTable[idx]

	var edgeInv, cornerInv [16]byte
	for i := 0; i < numEdges; i++ {
		edgeInv[mask.edgePerm[i]] = byte(i)
	}
	for i := 0; i < numCorners; i++ {
		cornerInv[mask.cornerPerm[i]] = byte(i)
	}

	shuffled := c.edges.shuffle(mask.edgePerm)
	var newEdges vec128
	for i := 0; i < numEdges; i++ {
		b := applyRolePerm(shuffled[i], mask.rolePerm)
		newEdges[i] = makeEdgeByte(int(edgeInv[edgeID(b)]), edgeOri(b))
	}
	c.edges = newEdges

	shuffledCorners := c.corners.shuffle(mask.cornerPerm)
	var newCorners vec128
	for i := 0; i < numCorners; i++ {
		b := shuffledCorners[i]
		newCorners[i] = makeCornerByte(int(cornerInv[cornerID(b)]), cornerTwist(b))
	}
	c.corners = newCorners
}

// TransformAll applies a sequence of transformations in order.
func (c *Cube) TransformAll(ts []Transformation) {
	for _, t := range ts {
		c.Transform(t)
	}
}
