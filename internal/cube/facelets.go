package cube

import "strings"

// cornerSlotFaces lists the three faces each corner slot touches, in
// UBL..DBL order (state.go's corner slot constants).
var cornerSlotFaces = [numCorners][3]Face{
	cornerUBL: {U, B, L},
	cornerUBR: {U, B, R},
	cornerUFR: {U, F, R},
	cornerUFL: {U, F, L},
	cornerDFL: {D, F, L},
	cornerDFR: {D, F, R},
	cornerDBR: {D, B, R},
	cornerDBL: {D, B, L},
}

// edgeSlotFaces lists the two faces each edge slot touches, in
// UB..DL order (state.go's edge slot constants).
var edgeSlotFaces = [numEdges][2]Face{
	edgeUB: {U, B},
	edgeUR: {U, R},
	edgeUF: {U, F},
	edgeUL: {U, L},
	edgeFR: {F, R},
	edgeFL: {F, L},
	edgeBR: {B, R},
	edgeBL: {B, L},
	edgeDF: {D, F},
	edgeDR: {D, R},
	edgeDB: {D, B},
	edgeDL: {D, L},
}

// cornerHomeColors returns, indexed by Axis value (X=0, Y=1, Z=2), the
// sticker color a corner identity carries in its home (solved) slot.
func cornerHomeColors(id int) [3]Color {
	var out [3]Color
	for _, f := range cornerSlotFaces[id] {
		out[f.Axis()] = solvedCenterColor[f]
	}
	return out
}

// cornerShownColor returns the color a corner (currently in slot, carrying
// identity id and twist t) shows on face, which must be one of the three
// faces slot touches.
func cornerShownColor(id, twist int, face Face) Color {
	home := cornerHomeColors(id)
	role := int(face.Axis())
	return home[(role+twist)%3]
}

// edgePrimaryFace picks, of an edge's two faces, the one whose axis
// determines its orientation bit: the UD face if present, else the FB face.
// Every edge touches UD or FB (or both); none touches only RL.
func edgePrimaryFace(faces [2]Face) (primary, secondary Face) {
	primaryIdx := 0
	switch {
	case faces[0].Axis() == Y || faces[1].Axis() == Y:
		if faces[1].Axis() == Y {
			primaryIdx = 1
		}
	case faces[0].Axis() == Z:
		primaryIdx = 0
	default:
		primaryIdx = 1
	}
	if primaryIdx == 0 {
		return faces[0], faces[1]
	}
	return faces[1], faces[0]
}

// edgeShownColor returns the color an edge (touching slotFaces, carrying
// identity id, flipped relative to its primary axis) shows on face, which
// must be one of slotFaces.
func edgeShownColor(slotFaces [2]Face, id int, flipped bool, face Face) Color {
	homePrimary, homeSecondary := edgePrimaryFace(edgeSlotFaces[id])
	homeColors := [2]Color{solvedCenterColor[homePrimary], solvedCenterColor[homeSecondary]}

	slotPrimary, _ := edgePrimaryFace(slotFaces)
	idx := 1
	if face == slotPrimary {
		idx = 0
	}
	if flipped {
		idx = 1 - idx
	}
	return homeColors[idx]
}

// edgeIsFlipped reports the orientation bit relevant to slot's primary axis.
func (c *Cube) edgeIsFlipped(slot int) bool {
	primary, _ := edgePrimaryFace(edgeSlotFaces[slot])
	return c.EdgeFlip(slot, primary.Axis())
}

// faceLayout names the corner/edge slot occupying each of the 9 grid
// positions of one face, in a fixed row-major reading order: B-on-top for
// U, F-on-top for D, U-on-top for F/L/R/B (the usual way of unfolding a
// cube face-up on paper). Position 4 (center) is always the fixed center
// color.
type faceLayout struct {
	corners [4]int // slots at grid positions 0, 2, 6, 8
	edges   [4]int // slots at grid positions 1, 3, 5, 7
}

var faceLayouts = [6]faceLayout{
	U: {corners: [4]int{cornerUBL, cornerUBR, cornerUFL, cornerUFR}, edges: [4]int{edgeUB, edgeUL, edgeUR, edgeUF}},
	D: {corners: [4]int{cornerDFL, cornerDFR, cornerDBL, cornerDBR}, edges: [4]int{edgeDF, edgeDL, edgeDR, edgeDB}},
	F: {corners: [4]int{cornerUFL, cornerUFR, cornerDFL, cornerDFR}, edges: [4]int{edgeUF, edgeFL, edgeFR, edgeDF}},
	B: {corners: [4]int{cornerUBR, cornerUBL, cornerDBR, cornerDBL}, edges: [4]int{edgeUB, edgeBR, edgeBL, edgeDB}},
	L: {corners: [4]int{cornerUBL, cornerUFL, cornerDBL, cornerDFL}, edges: [4]int{edgeUL, edgeBL, edgeFL, edgeDL}},
	R: {corners: [4]int{cornerUFR, cornerUBR, cornerDFR, cornerDBR}, edges: [4]int{edgeUR, edgeFR, edgeBR, edgeDR}},
}

// Facelets reconstructs the 9-sticker view of every face from the packed
// cubie vectors, in faceLayout's fixed reading order.
func (c *Cube) Facelets() [6][9]Color {
	var out [6][9]Color
	for face := Face(0); face < 6; face++ {
		layout := faceLayouts[face]
		var grid [9]Color
		grid[4] = solvedCenterColor[face]

		cornerPos := [4]int{0, 2, 6, 8}
		for i, slot := range layout.corners {
			id := c.CornerIdentity(slot)
			twist := c.CornerTwist(slot)
			grid[cornerPos[i]] = cornerShownColor(id, twist, face)
		}

		edgePos := [4]int{1, 3, 5, 7}
		for i, slot := range layout.edges {
			id := c.EdgeIdentity(slot)
			flipped := c.edgeIsFlipped(slot)
			grid[edgePos[i]] = edgeShownColor(edgeSlotFaces[slot], id, flipped, face)
		}

		out[face] = grid
	}
	return out
}

// IsSolved reports whether every face is monochrome.
func (c *Cube) IsSolved() bool {
	facelets := c.Facelets()
	for face := Face(0); face < 6; face++ {
		center := facelets[face][4]
		for _, sticker := range facelets[face] {
			if sticker != center {
				return false
			}
		}
	}
	return true
}

// StateString renders the cube as a 54-character compact facelet string,
// 9 characters per face in U D F B L R order, each character the face
// letter of that sticker's color (e.g. solved is "UUUUUUUUUDDDDDDDDD...").
func (c *Cube) StateString() string {
	facelets := c.Facelets()
	var b strings.Builder
	for face := Face(0); face < 6; face++ {
		for _, sticker := range facelets[face] {
			b.WriteString(sticker.String())
		}
	}
	return b.String()
}

// ParseState is the inverse of StateString: it builds a Cube from a
// 54-character facelet string. It only accepts strings that resolve to a
// well-formed, invariant-satisfying cube; anything else is InvalidInput or
// (if the facelets describe a physically impossible arrangement)
// InvalidState.
func ParseState(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, newInvalidInput(len(s), "state string must be 54 characters, got %d", len(s))
	}
	var colors [54]Color
	for i, ch := range []byte(s) {
		col, ok := colorFromByte(ch)
		if !ok {
			return nil, newInvalidInput(i, "unrecognized facelet character %q", ch)
		}
		colors[i] = col
	}

	get := func(face Face, pos int) Color { return colors[int(face)*9+pos] }

	c := &Cube{}
	for slot := 0; slot < numCorners; slot++ {
		faces := cornerSlotFaces[slot]
		cornerPosOf := func(face Face) int {
			for i, f := range faceLayouts[face].corners {
				if f == slot {
					return [4]int{0, 2, 6, 8}[i]
				}
			}
			return -1
		}
		var shown [3]Color
		for i, f := range faces {
			shown[i] = get(f, cornerPosOf(f))
		}
		id, twist, err := identifyCorner(faces, shown)
		if err != nil {
			return nil, err
		}
		c.corners[slot] = makeCornerByte(id, byte(twist))
	}

	for slot := 0; slot < numEdges; slot++ {
		faces := edgeSlotFaces[slot]
		edgePosOf := func(face Face) int {
			for i, f := range faceLayouts[face].edges {
				if f == slot {
					return [4]int{1, 3, 5, 7}[i]
				}
			}
			return -1
		}
		shownA := get(faces[0], edgePosOf(faces[0]))
		shownB := get(faces[1], edgePosOf(faces[1]))
		id, flipped, err := identifyEdge(faces, [2]Color{shownA, shownB})
		if err != nil {
			return nil, err
		}
		var ori byte
		if flipped {
			primary, _ := edgePrimaryFace(faces)
			ori = flipBit(primary.Axis())
		}
		c.edges[slot] = makeEdgeByte(id, ori)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func colorFromByte(ch byte) (Color, bool) {
	switch ch {
	case 'U':
		return White, true
	case 'D':
		return Yellow, true
	case 'F':
		return Green, true
	case 'B':
		return Blue, true
	case 'L':
		return Orange, true
	case 'R':
		return Red, true
	}
	return 0, false
}

// identifyCorner finds the corner identity and twist matching the 3 shown
// colors (given in faces order) by searching all 8 identities and 3 twists.
func identifyCorner(faces [3]Face, shown [3]Color) (id, twist int, err error) {
	for candidate := 0; candidate < numCorners; candidate++ {
		for t := 0; t < 3; t++ {
			match := true
			for i, f := range faces {
				if cornerShownColor(candidate, t, f) != shown[i] {
					match = false
					break
				}
			}
			if match {
				return candidate, t, nil
			}
		}
	}
	return 0, 0, newInvalidInput(0, "no corner identity matches facelet colors %v at %v", shown, faces)
}

// identifyEdge finds the edge identity and flip state matching the 2 shown
// colors (given in faces order).
func identifyEdge(faces [2]Face, shown [2]Color) (id int, flipped bool, err error) {
	for candidate := 0; candidate < numEdges; candidate++ {
		for _, f := range []bool{false, true} {
			a := edgeShownColor(faces, candidate, f, faces[0])
			b := edgeShownColor(faces, candidate, f, faces[1])
			if a == shown[0] && b == shown[1] {
				return candidate, f, nil
			}
		}
	}
	return 0, false, newInvalidInput(0, "no edge identity matches facelet colors %v at %v", shown, faces)
}
