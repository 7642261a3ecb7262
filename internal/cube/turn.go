package cube

// Turn mutates the cube in place, applying one quarter/half turn of
// m.Face. All 18 turn variants are table-driven: shuffle, then apply the
// baked orientation delta.
func (c *Cube) Turn(m Turn) {
	mask := &turnTable[m.Index()]
	c.edges = c.edges.shuffle(mask.edgePerm)
	c.edges = c.edges.xor(mask.edgeXor)

	shuffled := c.corners.shuffle(mask.cornerPerm)
	var newCorners vec128
	for i := 0; i < numCorners; i++ {
		id := cornerID(shuffled[i])
		twist := (cornerTwist(shuffled[i]) + mask.cornerAdd[i]) % 3
		newCorners[i] = makeCornerByte(id, twist)
	}
	c.corners = newCorners
}

// TurnAll applies a sequence of turns in order.
func (c *Cube) TurnAll(ms []Turn) {
	for _, m := range ms {
		c.Turn(m)
	}
}
