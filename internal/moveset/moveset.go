// Package moveset declares each search phase's allowed turns and the
// commuting-face canonicalization transition table that forbids redundant
// move sequences.
package moveset

import "github.com/ehrlich-b/cube/internal/cube"

// StepKind identifies one of the five reduction phases a Step can target.
// Dispatch over StepKind is a plain switch, never a virtual interface, so
// adding a phase never costs heap indirection in the search hot loop.
type StepKind int

const (
	EO StepKind = iota
	DR
	HTR
	FR
	FIN
)

func (k StepKind) String() string {
	return [...]string{"EO", "DR", "HTR", "FR", "FIN"}[k]
}

// MoveSet is the set of turns a phase's search may apply, split into
// st_moves (used throughout the search) and aux_moves (legal only as the
// first move, to absorb setup left over from the previous phase), plus the
// canonical transition bitmask restricted to this phase's st_moves.
type MoveSet struct {
	StMoves     []cube.Turn
	AuxMoves    []cube.Turn
	Transitions [cube.NumTurns]uint32
}

// canonicalTransitions[p] is the bitmask, over all 18 turns, of turns
// canonically permitted to follow turn index p: never the same face twice
// in a row, and never a face followed by its opposite out of the fixed
// U-before-D, F-before-B, R-before-L ordering.
var canonicalTransitions [cube.NumTurns]uint32

func init() {
	for p := 0; p < cube.NumTurns; p++ {
		prev := cube.TurnFromIndex(p)
		var mask uint32
		for n := 0; n < cube.NumTurns; n++ {
			next := cube.TurnFromIndex(n)
			if canonicalPair(prev.Face, next.Face) {
				mask |= 1 << uint(n)
			}
		}
		canonicalTransitions[p] = mask
	}
}

// canonicalPair reports whether next may canonically follow prev: not the
// same face, and not prev's opposite unless prev came first in the fixed
// U/F/R-before-D/B/L ordering.
func canonicalPair(prev, next cube.Face) bool {
	if prev == next {
		return false
	}
	if next == prev.Opposite() {
		return prev == cube.U || prev == cube.F || prev == cube.R
	}
	return true
}

// newMoveSet restricts the canonical transition table to turns in st,
// producing a MoveSet ready for search.
func newMoveSet(st, aux []cube.Turn) MoveSet {
	var allowed uint32
	for _, t := range st {
		allowed |= 1 << uint(t.Index())
	}
	ms := MoveSet{StMoves: st, AuxMoves: aux}
	for i := range ms.Transitions {
		ms.Transitions[i] = canonicalTransitions[i] & allowed
	}
	return ms
}

var allTurns = func() []cube.Turn {
	ts := make([]cube.Turn, cube.NumTurns)
	for i := range ts {
		ts[i] = cube.TurnFromIndex(i)
	}
	return ts
}()

// halfTurnOnlyFaces restricts the given faces to their half-turn (180
// degree) variant only.
func halfTurnOnlyFaces(faces ...cube.Face) []cube.Turn {
	ts := make([]cube.Turn, len(faces))
	for i, f := range faces {
		ts[i] = cube.Turn{Face: f, Direction: cube.Half}
	}
	return ts
}

// allTurnsOnFaces returns all three directions for the given faces.
func allTurnsOnFaces(faces ...cube.Face) []cube.Turn {
	var ts []cube.Turn
	for _, f := range faces {
		ts = append(ts,
			cube.Turn{Face: f, Direction: cube.CW},
			cube.Turn{Face: f, Direction: cube.Half},
			cube.Turn{Face: f, Direction: cube.CCW},
		)
	}
	return ts
}

// dominoMoves is the <U2, D2, F, B, L, R> move set shared by the DR and HTR
// phases: U/D restricted to half turns, F/B/L/R left unrestricted.
func dominoMoves() []cube.Turn {
	ts := halfTurnOnlyFaces(cube.U, cube.D)
	ts = append(ts, allTurnsOnFaces(cube.F, cube.B, cube.L, cube.R)...)
	return ts
}

// ForKind returns the move set declared for the given phase.
func ForKind(k StepKind) MoveSet {
	switch k {
	case EO:
		return newMoveSet(allTurns, nil)
	case DR:
		return newMoveSet(dominoMoves(), allTurns)
	case HTR:
		return newMoveSet(dominoMoves(), nil)
	case FR, FIN:
		all6Half := halfTurnOnlyFaces(cube.U, cube.D, cube.F, cube.B, cube.L, cube.R)
		return newMoveSet(all6Half, dominoMoves())
	default:
		return newMoveSet(allTurns, nil)
	}
}
