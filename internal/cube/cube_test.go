package cube

import "testing"

func TestNewSolvedIsSolved(t *testing.T) {
	c := NewSolved()
	if !c.IsSolved() {
		t.Fatal("NewSolved() should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("NewSolved() should be valid: %v", err)
	}
}

func TestMoveInvolution(t *testing.T) {
	for face := Face(0); face < 6; face++ {
		for dir := Direction(0); dir < 3; dir++ {
			m := Turn{Face: face, Direction: dir}
			c := NewSolved()
			for i := 0; i < 4; i++ {
				c.Turn(m)
			}
			if !c.Equal(NewSolved()) {
				t.Errorf("turn %s applied 4 times did not return to solved", m)
			}
		}
	}
}

func TestHalfTurnInvolution(t *testing.T) {
	for face := Face(0); face < 6; face++ {
		m := Turn{Face: face, Direction: Half}
		c := NewSolved()
		c.Turn(m)
		c.Turn(m)
		if !c.Equal(NewSolved()) {
			t.Errorf("half turn %s applied twice did not return to solved", m)
		}
	}
}

func TestInverseLaw(t *testing.T) {
	seq, err := ParseTurns("R U R' U' F2 D B'")
	if err != nil {
		t.Fatal(err)
	}
	c := NewSolved()
	c.TurnAll(seq)

	inv := c.Inverted()
	inv.Invert()
	if !inv.Equal(c) {
		t.Fatal("invert(invert(s)) != s")
	}

	// apply(seq, s) then apply(reverse-invert(seq), _) == s
	reversed := make([]Turn, len(seq))
	for i, m := range seq {
		reversed[len(seq)-1-i] = Turn{Face: m.Face, Direction: invertDirection(m.Direction)}
	}
	c.TurnAll(reversed)
	if !c.Equal(NewSolved()) {
		t.Fatal("applying the reverse-inverted sequence did not restore solved state")
	}
}

func invertDirection(d Direction) Direction {
	switch d {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return Half
	}
}

func TestTransformPreservesSolvedness(t *testing.T) {
	for axis := Axis(0); axis < 3; axis++ {
		for dir := Direction(0); dir < 3; dir++ {
			c := NewSolved()
			c.Transform(Transformation{Axis: axis, Direction: dir})
			if !c.IsSolved() {
				t.Errorf("transform %s did not preserve solved-ness", Transformation{Axis: axis, Direction: dir})
			}
		}
	}
}

func TestTransformInvolution(t *testing.T) {
	for axis := Axis(0); axis < 3; axis++ {
		tr := Transformation{Axis: axis, Direction: CW}
		c := NewSolved()
		c.TurnAll([]Turn{{Face: R, Direction: CW}})
		orig := c.Clone()
		for i := 0; i < 4; i++ {
			c.Transform(tr)
		}
		if !c.Equal(orig) {
			t.Errorf("transform %s applied 4 times was not identity", tr)
		}
	}
}

func TestStateStringRoundTrip(t *testing.T) {
	seq, err := ParseTurns("R U R' U' F2 D B' L")
	if err != nil {
		t.Fatal(err)
	}
	c := NewSolved()
	c.TurnAll(seq)
	for _, r := range []string{"y", "x'"} {
		tr, err := ParseTransformation(r)
		if err != nil {
			t.Fatal(err)
		}
		c.Transform(tr)
	}

	s := c.StateString()
	if len(s) != 54 {
		t.Fatalf("StateString() length = %d, want 54", len(s))
	}
	back, err := ParseState(s)
	if err != nil {
		t.Fatalf("ParseState(%q): %v", s, err)
	}
	if !back.Equal(c) {
		t.Fatal("ParseState(StateString(c)) != c")
	}
}

func TestParseStateSolved(t *testing.T) {
	s := NewSolved().StateString()
	back, err := ParseState(s)
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsSolved() {
		t.Fatal("round-tripped solved state string should be solved")
	}
}

func TestParseStateRejectsWrongLength(t *testing.T) {
	_, err := ParseState("UUU")
	if err == nil {
		t.Fatal("expected error for short state string")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != InvalidInput {
		t.Fatalf("expected InvalidInput error, got %v", err)
	}
}

func TestValidateRejectsAdjacentEdgeSwap(t *testing.T) {
	c := NewSolved()
	// swap two adjacent edges only: odd permutation parity, parity
	// mismatch against (unchanged, even) corner permutation.
	c.edges[edgeUB], c.edges[edgeUR] = c.edges[edgeUR], c.edges[edgeUB]
	if err := c.Validate(); err == nil {
		t.Fatal("expected InvalidState for a single edge swap")
	} else if cerr, ok := err.(*Error); !ok || cerr.Kind != InvalidState {
		t.Fatalf("expected InvalidState error, got %v", err)
	}
}

func TestParseTurnAndString(t *testing.T) {
	cases := []string{"U", "U'", "U2", "R", "R'", "R2", "F2", "B'", "L", "D2"}
	for _, s := range cases {
		m, err := ParseTurn(s)
		if err != nil {
			t.Fatalf("ParseTurn(%q): %v", s, err)
		}
		if got := m.String(); got != s {
			t.Errorf("ParseTurn(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseTurnRejectsUnknown(t *testing.T) {
	if _, err := ParseTurn("Q"); err == nil {
		t.Fatal("expected error for unknown face")
	}
	if _, err := ParseTurn("R3"); err == nil {
		t.Fatal("expected error for unknown modifier")
	}
}

func TestParseTransformationAndString(t *testing.T) {
	cases := []string{"x", "x'", "x2", "y", "y'", "y2", "z", "z'", "z2"}
	for _, s := range cases {
		tr, err := ParseTransformation(s)
		if err != nil {
			t.Fatalf("ParseTransformation(%q): %v", s, err)
		}
		if got := tr.String(); got != s {
			t.Errorf("ParseTransformation(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestNotationNeedsTransformationParsing(t *testing.T) {
	// Regression guard: ParseTurns must reject whole-cube rotations, since
	// those use ParseTransformation instead.
	if _, err := ParseTurns("x"); err == nil {
		t.Fatal("ParseTurns should reject a transformation token")
	}
}
