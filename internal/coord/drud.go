package coord

import "github.com/ehrlich-b/cube/internal/cube"

// DRUD is the domino-reduction coordinate: the product of edge-orientation,
// corner-orientation, and E-slice-position, composed via mixed-radix
// digits. Each sub-coordinate reads/writes a disjoint part of the cube
// (orientation bits vs. identity placement), so the three compose and
// decompose independently without cross-talk.
type DRUD struct {
	eo EOFB
	co CornerOrientation
	es ESlice
}

func (d DRUD) Range() int { return d.eo.Range() * d.co.Range() * d.es.Range() }

func (d DRUD) Encode(c *cube.Cube) int {
	eo := d.eo.Encode(c)
	co := d.co.Encode(c)
	es := d.es.Encode(c)
	return eo + d.eo.Range()*(co+d.co.Range()*es)
}

func (d DRUD) Decode(v int) *cube.Cube {
	eo := v % d.eo.Range()
	v /= d.eo.Range()
	co := v % d.co.Range()
	v /= d.co.Range()
	es := v % d.es.Range()

	eoCube := d.eo.Decode(eo)
	coCube := d.co.Decode(co)
	esCube := d.es.Decode(es)

	c := cube.NewEmpty()
	for slot := 0; slot < numEdges; slot++ {
		id := esCube.EdgeIdentity(slot)
		cube.SetEdge(c, slot, id, false, eoCube.EdgeFlip(slot, cube.Z), false)
	}
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, slot, coCube.CornerTwist(slot))
	}
	return c
}
