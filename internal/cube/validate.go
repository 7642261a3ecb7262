package cube

// Validate checks the four group-theoretic invariants every physically
// assembled cube must satisfy: each piece kind's identities form a
// permutation, edge-flip parity is even, corner-twist sum is 0 mod 3, and
// edge/corner permutation parities match. A cube failing any of these
// describes an arrangement no sequence of face turns can produce, and must
// be rejected before it reaches the search driver.
func (c *Cube) Validate() error {
	var seenEdges [numEdges]bool
	edgeParity := 0
	flipSum := 0
	for slot := 0; slot < numEdges; slot++ {
		id := c.EdgeIdentity(slot)
		if id < 0 || id >= numEdges || seenEdges[id] {
			return newInvalidState("edge identity %d is not a permutation", id)
		}
		seenEdges[id] = true
		if c.EdgeFlip(slot, Y) {
			flipSum++
		}
	}
	if flipSum%2 != 0 {
		return newInvalidState("edge orientation parity is odd (%d flipped)", flipSum)
	}

	var seenCorners [numCorners]bool
	twistSum := 0
	for slot := 0; slot < numCorners; slot++ {
		id := c.CornerIdentity(slot)
		if id < 0 || id >= numCorners || seenCorners[id] {
			return newInvalidState("corner identity %d is not a permutation", id)
		}
		seenCorners[id] = true
		twistSum += c.CornerTwist(slot)
	}
	if twistSum%3 != 0 {
		return newInvalidState("corner orientation sum is %d, not 0 mod 3", twistSum)
	}

	edgeParity = permutationParity(func(i int) int { return c.EdgeIdentity(i) }, numEdges)
	cornerParity := permutationParity(func(i int) int { return c.CornerIdentity(i) }, numCorners)
	if edgeParity != cornerParity {
		return newInvalidState("edge permutation parity (%d) does not match corner permutation parity (%d)", edgeParity, cornerParity)
	}
	return nil
}

// permutationParity returns 0 for an even permutation, 1 for odd, counting
// transpositions via cycle decomposition.
func permutationParity(id func(int) int, n int) int {
	visited := make([]bool, n)
	parity := 0
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		length := 0
		for i := start; !visited[i]; i = id(i) {
			visited[i] = true
			length++
		}
		if length > 0 {
			parity += length - 1
		}
	}
	return parity % 2
}
