package moveset

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

func TestCanonicalPairForbidsSameFace(t *testing.T) {
	for f := cube.U; f <= cube.R; f++ {
		if canonicalPair(f, f) {
			t.Errorf("%v: same face should never canonically follow itself", f)
		}
	}
}

func TestCanonicalPairOppositeOrdering(t *testing.T) {
	cases := []struct {
		prev, next cube.Face
		want       bool
	}{
		{cube.U, cube.D, true},
		{cube.D, cube.U, false},
		{cube.F, cube.B, true},
		{cube.B, cube.F, false},
		{cube.R, cube.L, true},
		{cube.L, cube.R, false},
	}
	for _, c := range cases {
		if got := canonicalPair(c.prev, c.next); got != c.want {
			t.Errorf("canonicalPair(%v, %v) = %v, want %v", c.prev, c.next, got, c.want)
		}
	}
}

func TestEOMoveSetAllowsAllTurns(t *testing.T) {
	ms := ForKind(EO)
	if len(ms.StMoves) != cube.NumTurns {
		t.Fatalf("EO st_moves = %d, want %d", len(ms.StMoves), cube.NumTurns)
	}
	if len(ms.AuxMoves) != 0 {
		t.Fatalf("EO aux_moves = %d, want 0", len(ms.AuxMoves))
	}
}

func TestDRMoveSetRestrictsUD(t *testing.T) {
	ms := ForKind(DR)
	for _, turn := range ms.StMoves {
		if turn.Face == cube.U || turn.Face == cube.D {
			if turn.Direction != cube.Half {
				t.Errorf("DR st_moves contains non-half %v turn", turn)
			}
		}
	}
	// F/B/L/R keep all three directions.
	counts := map[cube.Face]int{}
	for _, turn := range ms.StMoves {
		counts[turn.Face]++
	}
	for _, f := range []cube.Face{cube.F, cube.B, cube.L, cube.R} {
		if counts[f] != 3 {
			t.Errorf("DR st_moves has %d directions for %v, want 3", counts[f], f)
		}
	}
	if len(ms.AuxMoves) != cube.NumTurns {
		t.Errorf("DR aux_moves = %d, want %d (full set to absorb EO setup)", len(ms.AuxMoves), cube.NumTurns)
	}
}

func TestFRMoveSetIsHalfTurnsOnly(t *testing.T) {
	ms := ForKind(FR)
	for _, turn := range ms.StMoves {
		if turn.Direction != cube.Half {
			t.Errorf("FR st_moves contains non-half %v turn", turn)
		}
	}
	if len(ms.StMoves) != 6 {
		t.Errorf("FR st_moves = %d, want 6", len(ms.StMoves))
	}
}

// TestTransitionsForbidSameFace checks the canonical-move-pruning property:
// no MoveSet's transition bitmask ever permits turning the same face twice
// in a row.
func TestTransitionsForbidSameFace(t *testing.T) {
	for _, k := range []StepKind{EO, DR, HTR, FR, FIN} {
		ms := ForKind(k)
		for p := 0; p < cube.NumTurns; p++ {
			prevFace := cube.TurnFromIndex(p).Face
			for n := 0; n < cube.NumTurns; n++ {
				if ms.Transitions[p]&(1<<uint(n)) == 0 {
					continue
				}
				if cube.TurnFromIndex(n).Face == prevFace {
					t.Errorf("%v: transition from %d allows same-face turn %d", k, p, n)
				}
			}
		}
	}
}
