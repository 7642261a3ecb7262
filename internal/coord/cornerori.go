package coord

import "github.com/ehrlich-b/cube/internal/cube"

// CornerOrientation packs the 8 corner twists base-3, keeping the low 7
// digits (the 8th is determined by the requirement that the twist sum be
// 0 mod 3).
type CornerOrientation struct{}

func (CornerOrientation) Range() int { return 2187 } // 3^7

func (CornerOrientation) Encode(c *cube.Cube) int {
	v := 0
	pow := 1
	for slot := 0; slot < 7; slot++ {
		v += c.CornerTwist(slot) * pow
		pow *= 3
	}
	return v
}

func (CornerOrientation) Decode(v int) *cube.Cube {
	c := cube.NewEmpty()
	sum := 0
	rem := v
	for slot := 0; slot < 7; slot++ {
		twist := rem % 3
		rem /= 3
		sum += twist
		cube.SetCorner(c, slot, slot, twist)
	}
	last := (3 - sum%3) % 3
	cube.SetCorner(c, 7, 7, last)
	for slot := 0; slot < numEdges; slot++ {
		cube.SetEdge(c, slot, slot, false, false, false)
	}
	return c
}
