package cube

// NewEmpty returns a zeroed Cube: every slot's identity and orientation
// bits are 0. It is not a valid cube on its own (identity 0 repeated 12/8
// times is not a permutation) — it exists so coordinate decoders can build
// up a state slot by slot via SetEdge/SetCorner before handing it to a
// search or returning it as a Decode result.
func NewEmpty() *Cube {
	return &Cube{}
}

// SetEdge places identity id, with the given axis-flip bits, into edge
// slot. Orientation bits not named are cleared.
func SetEdge(c *Cube, slot, id int, udFlip, fbFlip, rlFlip bool) {
	var ori byte
	if udFlip {
		ori |= edgeUDFlip
	}
	if fbFlip {
		ori |= edgeFBFlip
	}
	if rlFlip {
		ori |= edgeRLFlip
	}
	c.edges[slot] = makeEdgeByte(id, ori)
}

// SetCorner places identity id, with the given UD-axis twist (0,1,2), into
// corner slot.
func SetCorner(c *Cube, slot, id, twist int) {
	c.corners[slot] = makeCornerByte(id, byte(twist))
}
