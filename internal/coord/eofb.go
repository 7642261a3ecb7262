package coord

import "github.com/ehrlich-b/cube/internal/cube"

// numEdges/numCorners mirror the cube package's private slot counts; kept
// local since coord only needs the counts, not the slot identity constants.
const (
	numEdges   = 12
	numCorners = 8
)

// EOFB is the edge-orientation-about-the-FB-axis coordinate: an 11-bit
// integer from the first 11 edges' FB-flip bits (the 12th is redundant
// for a well-formed state, so Decode fixes it to make the flip count
// even and Encode never inspects it).
type EOFB struct{}

func (EOFB) Range() int { return 1 << 11 }

func (EOFB) Encode(c *cube.Cube) int {
	v := 0
	for slot := 0; slot < 11; slot++ {
		if c.EdgeFlip(slot, cube.Z) {
			v |= 1 << slot
		}
	}
	return v
}

func (EOFB) Decode(v int) *cube.Cube {
	c := cube.NewEmpty()
	ones := 0
	for slot := 0; slot < 11; slot++ {
		flipped := v&(1<<slot) != 0
		if flipped {
			ones++
		}
		cube.SetEdge(c, slot, slot, false, flipped, false)
	}
	last := ones%2 != 0
	cube.SetEdge(c, 11, 11, false, last, false)
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, slot, 0)
	}
	return c
}
