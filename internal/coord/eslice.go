package coord

import (
	"github.com/ehrlich-b/cube/internal/cube"
	"gonum.org/v1/gonum/stat/combin"
)

// eSliceIdentities are the edge identities belonging to the E-slice (the 4
// edges not touching U or D in their home position): FR, FL, BR, BL.
var eSliceIdentities = map[int]bool{4: true, 5: true, 6: true, 7: true}

// ESlice is the combinatorial choose-4-of-12 coordinate: which 4 of the 12
// edge slots currently hold an E-slice edge identity, ranked over
// eSliceSlotOrder so that the solved cube encodes to 0.
type ESlice struct{}

// eSliceSlotOrder lists the 12 edge slots with the 4 E-slice home slots
// first, for the same solved-ranks-to-0 reason as htr.go's class orders.
var eSliceSlotOrder = []int{4, 5, 6, 7, 0, 1, 2, 3, 8, 9, 10, 11}

func (ESlice) Range() int { return combin.Binomial(numEdges, 4) }

func (ESlice) Encode(c *cube.Cube) int {
	var pos []int
	for i, slot := range eSliceSlotOrder {
		if eSliceIdentities[c.EdgeIdentity(slot)] {
			pos = append(pos, i)
		}
	}
	return rankCombination(pos)
}

func (ESlice) Decode(v int) *cube.Cube {
	slots := unrankCombination(v, 4)
	inSlice := make(map[int]bool, 4)
	for _, s := range slots {
		inSlice[s] = true
	}

	c := cube.NewEmpty()
	sliceIDs := []int{4, 5, 6, 7}
	otherIDs := []int{0, 1, 2, 3, 8, 9, 10, 11}
	si, oi := 0, 0
	for i, slot := range eSliceSlotOrder {
		if inSlice[i] {
			cube.SetEdge(c, slot, sliceIDs[si], false, false, false)
			si++
		} else {
			cube.SetEdge(c, slot, otherIDs[oi], false, false, false)
			oi++
		}
	}
	for slot := 0; slot < numCorners; slot++ {
		cube.SetCorner(c, slot, slot, 0)
	}
	return c
}
