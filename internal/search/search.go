// Package search implements the iterative-deepening depth-first search
// that drives each reduction phase, guided by a pruning-table lower bound
// and the canonical move-transition filter.
package search

import (
	"context"

	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/moveset"
	"github.com/ehrlich-b/cube/internal/prune"
)

// NissSwitchType controls whether and when the search may switch to
// working on the cube's inverse. The switch is zero-cost: it never
// consumes any of the depth budget.
type NissSwitchType int

const (
	NissNever NissSwitchType = iota
	NissBefore
	NissAlways
)

// Side records which orientation the search is currently choosing turns
// from.
type Side int

const (
	Normal Side = iota
	Inverse
)

// Solution is one result yielded by Search: the move sequence that,
// applied in order to the root cube, reaches the phase's goal set.
type Solution struct {
	Turns  []cube.Turn
	Length int
}

// Options configures one phase search.
type Options struct {
	MoveSet    moveset.MoveSet
	Coordinate coord.Coordinate
	Table      *prune.Table
	IsGoal     func(*cube.Cube) bool
	MinLength  int
	MaxLength  int
	Niss       NissSwitchType
	Quality    int // maximum number of solutions to stream before closing
}

// Search streams solutions for root on the given move set and pruning
// table, in monotonically non-decreasing length, honoring opts.Quality as
// a budget on the total number emitted and ctx for cooperative
// cancellation polled at each depth boundary.
func Search(ctx context.Context, root *cube.Cube, opts Options) <-chan Solution {
	out := make(chan Solution)
	go func() {
		defer close(out)
		runSearch(ctx, root, opts, out)
	}()
	return out
}

func runSearch(ctx context.Context, root *cube.Cube, opts Options, out chan<- Solution) {
	lowerBound := opts.Table.Get(opts.Coordinate.Encode(root))
	start := opts.MinLength
	if lowerBound > start {
		start = lowerBound
	}

	s := &searcher{opts: opts, out: out, ctx: ctx}
	for depth := start; depth <= opts.MaxLength; depth++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s.dfs(root, nil, depth, Normal, -1)
		if opts.Quality > 0 && s.emitted >= opts.Quality {
			return
		}
	}
}

type searcher struct {
	opts    Options
	out     chan<- Solution
	ctx     context.Context
	emitted int
}

// dfs explores every canonical move sequence reaching the goal in exactly
// remaining further turns. working is always the real (normal-orientation)
// cube reached so far; turns is the real-space move sequence (root ->
// working) reconstructed so that applying it in order to root reproduces
// working, regardless of how many times the search has switched sides.
// lastTurnIdx canonicalizes the next choice against the previous turn
// chosen within the current side's contiguous run (canonical-move pruning
// is a per-side exploration-order constraint); it resets to -1 whenever
// the search switches sides, since a fresh run starts there.
func (s *searcher) dfs(working *cube.Cube, turns []cube.Turn, remaining int, side Side, lastTurnIdx int) {
	if s.opts.Quality > 0 && s.emitted >= s.opts.Quality {
		return
	}

	if remaining == 0 {
		if s.opts.IsGoal(working) {
			s.emit(turns)
		}
		return
	}

	bound := s.opts.Table.Get(s.opts.Coordinate.Encode(working))
	if bound > remaining {
		return
	}

	var allowed uint32
	if lastTurnIdx < 0 {
		for _, t := range s.opts.MoveSet.StMoves {
			allowed |= 1 << uint(t.Index())
		}
	} else {
		allowed = s.opts.MoveSet.Transitions[lastTurnIdx]
	}

	for _, t := range s.opts.MoveSet.StMoves {
		idx := t.Index()
		if allowed&(1<<uint(idx)) == 0 {
			continue
		}
		next, nextTurns := applyUnderSide(working, turns, t, side)
		s.dfs(next, nextTurns, remaining-1, side, idx)

		if s.opts.Quality > 0 && s.emitted >= s.opts.Quality {
			return
		}
	}

	// A switch needs a turn on the current side since the last switch (or,
	// at the root, the normal side), so two switches never follow each
	// other without a turn in between.
	canSwitch := lastTurnIdx >= 0 || (len(turns) == 0 && side == Normal)
	if canSwitch && (s.opts.Niss == NissAlways || (s.opts.Niss == NissBefore && len(turns) == 0)) {
		s.dfs(working, turns, remaining, otherSide(side), -1)
	}
}

func otherSide(s Side) Side {
	if s == Normal {
		return Inverse
	}
	return Normal
}

// invertTurn returns the turn that undoes t: same face, opposite quarter
// direction (a half turn undoes itself).
func invertTurn(t cube.Turn) cube.Turn {
	switch t.Direction {
	case cube.CW:
		return cube.Turn{Face: t.Face, Direction: cube.CCW}
	case cube.CCW:
		return cube.Turn{Face: t.Face, Direction: cube.CW}
	default:
		return t
	}
}

// applyUnderSide applies t to working as chosen from side, returning the
// resulting real cube and the updated real-space turn sequence.
//
// A normal-side turn is applied and appended directly. An inverse-side
// turn is applied by conjugating through the inverse view (invert, turn,
// invert back); the real-space equivalent of "append t on the inverse" is
// "prepend invert(t) to the front of the real sequence so far" -
// conjugation by a global inversion reverses composition order, which is
// exactly the textbook NISS rule that inverse-side moves translate back
// inverted and in reverse order.
func applyUnderSide(working *cube.Cube, turns []cube.Turn, t cube.Turn, side Side) (*cube.Cube, []cube.Turn) {
	if side == Normal {
		next := working.Clone()
		next.Turn(t)
		nextTurns := make([]cube.Turn, len(turns)+1)
		copy(nextTurns, turns)
		nextTurns[len(turns)] = t
		return next, nextTurns
	}

	next := working.Inverted()
	next.Turn(t)
	next.Invert()

	nextTurns := make([]cube.Turn, len(turns)+1)
	nextTurns[0] = invertTurn(t)
	copy(nextTurns[1:], turns)
	return next, nextTurns
}

func (s *searcher) emit(turns []cube.Turn) {
	out := make([]cube.Turn, len(turns))
	copy(out, turns)
	s.emitted++
	select {
	case s.out <- Solution{Turns: out, Length: len(out)}:
	case <-s.ctx.Done():
	}
}
