// Package solve orchestrates the reduction pipeline: it chains a list of
// step configurations, applying each phase's solution to the cube before
// handing off to the next phase.
package solve

import (
	"context"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/prune"
	"github.com/ehrlich-b/cube/internal/search"
	"github.com/ehrlich-b/cube/internal/step"
)

// PhaseResult is one phase's contribution to a Solution: the whole-cube
// setup rotation applied before searching (possibly none), and the turns
// found relative to that rotated frame.
type PhaseResult struct {
	Kind    step.StepKind
	Variant string
	Setup   []cube.Transformation
	Turns   []cube.Turn
}

// Solution is the composer's output: every phase's contribution, in
// order. Replaying each phase's Setup then Turns against the original
// cube reaches the final goal.
type Solution struct {
	Phases []PhaseResult
}

// TotalLength is the cumulative turn count across every phase (whole-cube
// setup rotations are not counted as moves).
func (s Solution) TotalLength() int {
	n := 0
	for _, p := range s.Phases {
		n += len(p.Turns)
	}
	return n
}

// Pipeline resolves each StepConfig against the step registry and runs the
// phases in order, applying each phase's result to the cube before
// starting the next. Each phase contributes only its first solution (see
// runPhase), so the returned slice always holds exactly one Solution; no
// alternative per-phase solutions are carried forward. If the cumulative
// length exceeds any config's AbsoluteMax it returns a NoSolution error
// instead; AbsoluteMin is not consulted. Each call builds its own pruning
// table registry; callers solving repeatedly (e.g. a web server handling
// many requests) should use PipelineWithRegistry and share one registry so
// tables are built once.
func Pipeline(ctx context.Context, root *cube.Cube, configs []step.StepConfig) ([]Solution, error) {
	return PipelineWithRegistry(ctx, root, configs, prune.NewRegistry())
}

// PipelineWithRegistry is Pipeline against a caller-supplied registry, so
// pruning tables persist across repeated solves.
func PipelineWithRegistry(ctx context.Context, root *cube.Cube, configs []step.StepConfig, registry *prune.Registry) ([]Solution, error) {
	if err := step.ValidateChain(configs); err != nil {
		return nil, err
	}

	current := root.Clone()
	var phases []PhaseResult

	for i, cfg := range configs {
		var prev step.StepKind
		hasPrev := i > 0
		if hasPrev {
			prev = configs[i-1].Kind
		}
		s := step.Build(cfg.Kind, prev, hasPrev)
		s = step.FilterVariants(s, cfg.Substeps)
		opts := step.Resolve(cfg)

		result, err := runPhase(ctx, current, s, opts, registry)
		if err != nil {
			return nil, err
		}

		current = current.Clone()
		current.TransformAll(result.Setup)
		current.TurnAll(result.Turns)
		phases = append(phases, result)
	}

	total := 0
	for _, p := range phases {
		total += len(p.Turns)
	}
	for _, cfg := range configs {
		if cfg.AbsoluteMax > 0 && total > cfg.AbsoluteMax {
			return nil, cube.NewNoSolution("cumulative length %d exceeds absolute_max %d", total, cfg.AbsoluteMax)
		}
	}

	return []Solution{{Phases: phases}}, nil
}

// runPhase tries every variant of s in order, returning the first
// variant's first (shortest) solution found within opts' bounds.
func runPhase(ctx context.Context, current *cube.Cube, s step.Step, opts step.StepOptions, registry *prune.Registry) (PhaseResult, error) {
	for _, variant := range s.Variants {
		working := current.Clone()
		working.TransformAll(variant.Setup)

		table := registry.GetOrBuild(variant.Family, variant.Coordinate, variant.MoveSet)
		searchOpts := search.Options{
			MoveSet:    variant.MoveSet,
			Coordinate: variant.Coordinate,
			Table:      table,
			IsGoal:     variant.IsGoal,
			MinLength:  opts.Min,
			MaxLength:  opts.Max,
			Niss:       opts.Niss,
			Quality:    1,
		}

		ch := search.Search(ctx, working, searchOpts)
		sol, ok := <-ch
		if !ok {
			select {
			case <-ctx.Done():
				return PhaseResult{}, cube.NewCancelled("search cancelled during %s phase", s.Kind)
			default:
			}
			continue
		}

		return PhaseResult{
			Kind:    s.Kind,
			Variant: variant.Name,
			Setup:   variant.Setup,
			Turns:   sol.Turns,
		}, nil
	}

	max := opts.AbsoluteMax
	if max == 0 {
		max = opts.Max
	}
	return PhaseResult{}, cube.NewNoSolution("%s phase exhausted every variant up to max depth %d", s.Kind, max)
}
