package step

import (
	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/moveset"
	"github.com/ehrlich-b/cube/internal/prune"
)

// goalZero is the goal predicate shared by every coordinate family used
// here: every phase's goal set is coordinate value 0 by construction
// (Encode(solved-for-that-phase) == 0).
func goalZero(c coord.Coordinate) func(*cube.Cube) bool {
	return func(cb *cube.Cube) bool { return c.Encode(cb) == 0 }
}

// eoVariant builds one axis orientation of the EO phase. setup is applied
// before reading the EOFB coordinate's FB-orientation bit, so the same
// coordinate doubles as EO-UD/EO-FB/EO-RL depending on which axis bit it
// ends up aliasing after the transform's role relabeling.
func eoVariant(name string, setup []cube.Transformation) StepVariant {
	c := coord.EOFB{}
	return StepVariant{
		Name:       name,
		Setup:      setup,
		MoveSet:    moveset.ForKind(moveset.EO),
		Coordinate: c,
		Family:     prune.FamilyEOFB,
		IsGoal:     goalZero(c),
	}
}

// Build returns the default Step for kind: every axis variant the phase
// declares, each with its move set, coordinate, and pruning-table family
// wired in. DR/HTR/FR/FIN only carry their native UD-referenced variant.
// DR's composite coordinate folds in corner twist, which Transform leaves
// numerically unchanged (see internal/cube/transform.go), so the
// setup-transform trick that produces EO's three genuine axis variants
// does not carry over to it; HTR, FR and FIN declare no transformed
// variants either.
//
// prev is the kind of the phase immediately before this one in the
// caller's chain (ignored unless hasPrev is true). FIN needs it: its goal
// coordinate depends on whether FR already placed corners (FRFinish, edges
// only) or whether corners are still only class-aligned because the chain
// went straight from HTR to FIN (HTRFinish, corners and edges both).
func Build(kind StepKind, prev StepKind, hasPrev bool) Step {
	switch kind {
	case EO:
		return Step{
			Kind: EO,
			Variants: []StepVariant{
				eoVariant("eofb", nil),
				eoVariant("eoud", []cube.Transformation{{Axis: cube.X, Direction: cube.CW}}),
				eoVariant("eorl", []cube.Transformation{{Axis: cube.Y, Direction: cube.CW}}),
			},
		}
	case DR:
		c := coord.DRUD{}
		return Step{Kind: DR, Variants: []StepVariant{{
			Name:       "drud",
			MoveSet:    moveset.ForKind(moveset.DR),
			Coordinate: c,
			Family:     prune.FamilyDRUD,
			IsGoal:     goalZero(c),
		}}}
	case HTR:
		c := coord.NewHTR()
		return Step{Kind: HTR, Variants: []StepVariant{{
			Name:       "htr",
			MoveSet:    moveset.ForKind(moveset.HTR),
			Coordinate: c,
			Family:     prune.FamilyHTR,
			IsGoal:     goalZero(c),
		}}}
	case FR:
		c := coord.NewFRUD()
		return Step{Kind: FR, Variants: []StepVariant{{
			Name:       "frud",
			MoveSet:    moveset.ForKind(moveset.FR),
			Coordinate: c,
			Family:     prune.FamilyFRUD,
			IsGoal:     goalZero(c),
		}}}
	case FIN:
		var c coord.Coordinate
		family := prune.FamilyFRFinish
		if hasPrev && prev == HTR {
			// FR never ran: corners are only class-aligned, not placed, so
			// the post-FR edges-only coordinate would silently ignore
			// unsolved corner permutation.
			c = coord.NewHTRFinish()
			family = prune.FamilyHTRFinish
		} else {
			c = coord.NewFRFinish()
		}
		return Step{Kind: FIN, Variants: []StepVariant{{
			Name:       "finish",
			MoveSet:    moveset.ForKind(moveset.FIN),
			Coordinate: c,
			Family:     family,
			IsGoal:     goalZero(c),
		}}}
	default:
		return Step{Kind: kind}
	}
}
