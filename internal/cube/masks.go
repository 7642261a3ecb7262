package cube

// turnMask is the precomputed, table-driven effect of one turn: a shuffle
// vector for edges (with an orientation xor baked on top) and a shuffle
// vector for corners (with a per-destination-slot twist delta, since
// corner twist is mod-3 and can't be folded into a byte xor the way the
// binary edge flip can). Applying a turn is always shuffle, then apply the
// orientation delta — never anything else.
type turnMask struct {
	edgePerm   vec128
	edgeXor    vec128
	cornerPerm vec128
	cornerAdd  [numCorners]byte
}

// quarterStep is one face's clockwise quarter-turn cycle, expressed as the
// 4 edge slots and 4 corner slots it rotates (in destination order: the
// piece that ends up at cycle[i] came from cycle[i-1], wrapping around),
// plus which two edge-orientation axis bits that quarter turn flips (a
// turn never touches the bit for its own axis) and the alternating
// corner-twist delta pattern (always {1,2,1,2} in cycle order — the
// specific phase doesn't matter, only that it alternates, which is what
// guarantees a half turn nets zero twist and a quarter turn applied four
// times nets identity).
type quarterStep struct {
	edgeCycle   [4]int
	flipAxes    [2]Axis
	noFlip      bool
	cornerCycle [4]int
	noTwist     bool
}

var faceSteps = [6]quarterStep{
	U: {edgeCycle: [4]int{edgeUR, edgeUF, edgeUL, edgeUB}, noFlip: true, cornerCycle: [4]int{cornerUBR, cornerUFR, cornerUFL, cornerUBL}, noTwist: true},
	D: {edgeCycle: [4]int{edgeDL, edgeDB, edgeDR, edgeDF}, noFlip: true, cornerCycle: [4]int{cornerDBL, cornerDBR, cornerDFR, cornerDFL}, noTwist: true},
	F: {edgeCycle: [4]int{edgeFR, edgeDF, edgeFL, edgeUF}, flipAxes: [2]Axis{Y, X}, cornerCycle: [4]int{cornerUFR, cornerDFR, cornerDFL, cornerUFL}},
	B: {edgeCycle: [4]int{edgeBR, edgeUB, edgeBL, edgeDB}, flipAxes: [2]Axis{Y, X}, cornerCycle: [4]int{cornerUBL, cornerDBL, cornerDBR, cornerUBR}},
	L: {edgeCycle: [4]int{edgeFL, edgeUL, edgeBL, edgeDL}, flipAxes: [2]Axis{Y, Z}, cornerCycle: [4]int{cornerUFL, cornerDFL, cornerDBL, cornerUBL}},
	R: {edgeCycle: [4]int{edgeBR, edgeUR, edgeFR, edgeDR}, flipAxes: [2]Axis{Y, Z}, cornerCycle: [4]int{cornerUBR, cornerUFR, cornerDFR, cornerDBR}},
}

func flipBit(axis Axis) byte {
	switch axis {
	case Y:
		return edgeUDFlip
	case Z:
		return edgeFBFlip
	case X:
		return edgeRLFlip
	}
	return 0
}

// applyQuarter applies one clockwise quarter turn of step to a raw
// (edges, corners) label pair — used only to bake the table at init time.
func applyQuarter(edges, corners vec128, s quarterStep) (vec128, vec128) {
	newEdges := edges
	if !s.noFlip {
		mask := flipBit(s.flipAxes[0]) | flipBit(s.flipAxes[1])
		prev := s.edgeCycle[3]
		for _, dst := range s.edgeCycle {
			newEdges[dst] = edges[prev] ^ mask
			prev = dst
		}
	} else {
		prev := s.edgeCycle[3]
		for _, dst := range s.edgeCycle {
			newEdges[dst] = edges[prev]
			prev = dst
		}
	}

	newCorners := corners
	twists := [4]byte{1, 2, 1, 2}
	prev := s.cornerCycle[3]
	for i, dst := range s.cornerCycle {
		src := corners[prev]
		if s.noTwist {
			newCorners[dst] = src
		} else {
			id := cornerID(src)
			twist := (cornerTwist(src) + twists[i]) % 3
			newCorners[dst] = makeCornerByte(id, twist)
		}
		prev = dst
	}
	return newEdges, newCorners
}

// turnTable holds the baked masks for all 18 turns, indexed by Turn.Index().
var turnTable [NumTurns]turnMask

func init() {
	for face := Face(0); face < 6; face++ {
		step := faceSteps[face]
		// Start from a "labeled" identity: slot i holds raw value i (so the
		// resulting permutation/xor after k quarter steps, applied to this
		// label cube, directly IS the shuffle+xor table for that turn).
		edges := identityShuffle()
		corners := identityShuffle()
		for k := 1; k <= 3; k++ {
			edges, corners = applyQuarter(edges, corners, step)
			var m turnMask
			for i := 0; i < numEdges; i++ {
				m.edgeXor[i] = edges[i] &^ edgeIDMask
			}
			// corners carry their own twist field in the label vector's
			// high bits too (labels started at twist 0), so the twist
			// already baked into `corners` IS the per-slot additive delta.
			for i := 0; i < numCorners; i++ {
				m.cornerAdd[i] = cornerTwist(corners[i])
			}
			// Strip orientation bits out of the permutation-index vectors:
			// shuffle only moves bytes, the xor/add fields carry the delta.
			for i := 0; i < numEdges; i++ {
				m.edgePerm[i] = edges[i] & edgeIDMask
			}
			for i := 0; i < numCorners; i++ {
				m.cornerPerm[i] = corners[i] & cornerIDMask
			}
			for i := numEdges; i < 16; i++ {
				m.edgePerm[i] = byte(i)
			}
			for i := numCorners; i < 16; i++ {
				m.cornerPerm[i] = byte(i)
			}
			turn := Turn{Face: face, Direction: directionForStep(k)}
			turnTable[turn.Index()] = m
		}
	}
}

// directionForStep maps "applied k quarter turns" to the Direction it
// represents: 1 quarter = CW, 2 = Half, 3 = CCW (= inverse of CW).
func directionForStep(k int) Direction {
	switch k {
	case 1:
		return CW
	case 2:
		return Half
	case 3:
		return CCW
	}
	panic("invalid quarter step count")
}
