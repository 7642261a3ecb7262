package search

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/moveset"
	"github.com/ehrlich-b/cube/internal/prune"
)

func eoOptions(maxLen int) Options {
	c := coord.EOFB{}
	ms := moveset.ForKind(moveset.EO)
	return Options{
		MoveSet:    ms,
		Coordinate: c,
		Table:      prune.Build(c, ms),
		IsGoal:     func(cb *cube.Cube) bool { return c.Encode(cb) == 0 },
		MinLength:  0,
		MaxLength:  maxLen,
		Niss:       NissNever,
		Quality:    1,
	}
}

// TestSearchSolvesAlreadySolvedCube checks that a cube already at the goal
// yields the empty solution first.
func TestSearchSolvesAlreadySolvedCube(t *testing.T) {
	root := cube.NewSolved()
	opts := eoOptions(4)
	ch := Search(context.Background(), root, opts)

	sol, ok := <-ch
	if !ok {
		t.Fatal("expected a solution, channel closed empty")
	}
	if sol.Length != 0 {
		t.Errorf("Length = %d, want 0 for an already-solved cube", sol.Length)
	}
}

// TestSearchSolutionReachesGoal checks property 8 (applying the solution
// to root reaches the goal) and property 9 (the first solution's length
// equals the pruning-table distance) for a scrambled cube.
func TestSearchSolutionReachesGoal(t *testing.T) {
	root := cube.NewSolved()
	scramble, err := cube.ParseTurns("R U R' F")
	if err != nil {
		t.Fatalf("ParseTurns: %v", err)
	}
	root.TurnAll(scramble)

	c := coord.EOFB{}
	ms := moveset.ForKind(moveset.EO)
	table := prune.Build(c, ms)
	want := table.Get(c.Encode(root))

	opts := Options{
		MoveSet:    ms,
		Coordinate: c,
		Table:      table,
		IsGoal:     func(cb *cube.Cube) bool { return c.Encode(cb) == 0 },
		MaxLength:  want + 2,
		Niss:       NissNever,
		Quality:    1,
	}
	ch := Search(context.Background(), root, opts)
	sol, ok := <-ch
	if !ok {
		t.Fatal("expected a solution, channel closed empty")
	}
	if sol.Length != want {
		t.Errorf("first solution length = %d, want pruning distance %d", sol.Length, want)
	}

	got := root.Clone()
	got.TurnAll(sol.Turns)
	if c.Encode(got) != 0 {
		t.Errorf("applying solution to root does not reach the goal coordinate")
	}
}

// TestApplyUnderSideInverseReplaysToRealCube checks that a turn applied on
// the inverse side produces a real-space turn sequence (prepended and
// inverted) that, replayed against the original root from scratch,
// reaches exactly the same cube as applyUnderSide's own return value —
// the identity the rest of the search relies on to report real, directly
// applicable solutions even when it explored the inverse side.
func TestApplyUnderSideInverseReplaysToRealCube(t *testing.T) {
	scramble, err := cube.ParseTurns("R U R' F")
	if err != nil {
		t.Fatalf("ParseTurns: %v", err)
	}
	root := cube.NewSolved()
	root.TurnAll(scramble)

	working := root.Clone()
	t1 := cube.Turn{Face: cube.R, Direction: cube.CW}
	next, turns := applyUnderSide(working, nil, t1, Inverse)

	if len(turns) != 1 || turns[0] != invertTurn(t1) {
		t.Fatalf("turns = %v, want a single inverted turn %v", turns, invertTurn(t1))
	}

	replayed := root.Clone()
	replayed.TurnAll(turns)
	if !replayed.Equal(next) {
		t.Error("replaying the real-space turns from root does not match applyUnderSide's returned cube")
	}

	t2 := cube.Turn{Face: cube.U, Direction: cube.CCW}
	next2, turns2 := applyUnderSide(next, turns, t2, Inverse)
	if len(turns2) != 2 || turns2[0] != invertTurn(t2) || turns2[1] != turns[0] {
		t.Fatalf("turns2 = %v, want inverse turns prepended in reverse application order", turns2)
	}
	replayed2 := root.Clone()
	replayed2.TurnAll(turns2)
	if !replayed2.Equal(next2) {
		t.Error("replaying two inverse-side turns from root does not match applyUnderSide's returned cube")
	}
}

// TestSearchNissVariants drives Search under every NissSwitchType against
// the same scramble, and for each checks the usual end-to-end property:
// whatever solution comes back, replaying it against the original root
// reaches the goal coordinate. NissBefore and NissAlways additionally
// give the search the chance to explore the inverse side (the dfs niss
// branch runs whenever the switch type allows it), so this is the
// end-to-end counterpart to TestApplyUnderSideInverseReplaysToRealCube
// above: here the inverse-side branch is reached by the search itself
// rather than called directly.
func TestSearchNissVariants(t *testing.T) {
	cases := []struct {
		name string
		niss NissSwitchType
	}{
		{"never", NissNever},
		{"before", NissBefore},
		{"always", NissAlways},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := cube.NewSolved()
			scramble, err := cube.ParseTurns("R U R' F")
			if err != nil {
				t.Fatalf("ParseTurns: %v", err)
			}
			root.TurnAll(scramble)

			c := coord.EOFB{}
			ms := moveset.ForKind(moveset.EO)
			table := prune.Build(c, ms)

			opts := Options{
				MoveSet:    ms,
				Coordinate: c,
				Table:      table,
				IsGoal:     func(cb *cube.Cube) bool { return c.Encode(cb) == 0 },
				MaxLength:  table.Get(c.Encode(root)) + 2,
				Niss:       tc.niss,
				Quality:    1,
			}
			ch := Search(context.Background(), root, opts)
			sol, ok := <-ch
			if !ok {
				t.Fatal("expected a solution, channel closed empty")
			}

			got := root.Clone()
			got.TurnAll(sol.Turns)
			if c.Encode(got) != 0 {
				t.Errorf("applying solution to root does not reach the goal coordinate")
			}
		})
	}
}

// TestSearchRespectsContextCancellation checks that an already-cancelled
// context yields no solutions.
func TestSearchRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := cube.NewSolved()
	scramble, _ := cube.ParseTurns("R U R' U'")
	root.TurnAll(scramble)

	opts := eoOptions(10)
	ch := Search(ctx, root, opts)
	if _, ok := <-ch; ok {
		t.Error("expected no solutions after cancellation, got one")
	}
}
