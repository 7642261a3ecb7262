// Package step configures and resolves one phase of the reduction
// pipeline: which coordinate family and move set to search with, under
// which pre-applied orientations, down to which pruning table.
package step

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/moveset"
	"github.com/ehrlich-b/cube/internal/prune"
	"github.com/ehrlich-b/cube/internal/search"
)

// StepKind re-exports moveset's phase enum: moveset owns the phase
// constants (it needs them to declare each phase's move set), step just
// names the type its own records are built from.
type StepKind = moveset.StepKind

const (
	EO   = moveset.EO
	DR   = moveset.DR
	HTR  = moveset.HTR
	FR   = moveset.FR
	FIN  = moveset.FIN
)

// StepVariant couples a move set, a pre-applied whole-cube transformation
// (to cover symmetric goal orientations, e.g. DR about UD vs FB vs LR),
// its pruning table, a post-step goal predicate, and a display name.
type StepVariant struct {
	Name        string
	Setup       []cube.Transformation
	MoveSet     moveset.MoveSet
	Coordinate  coord.Coordinate
	Family      prune.FamilyID
	IsGoal      func(*cube.Cube) bool
}

// Step is an ordered collection of variants sharing the same StepKind; the
// search tries each variant in turn.
type Step struct {
	Kind     StepKind
	Variants []StepVariant
}

// StepConfig is the declarative record a caller provides for one phase.
type StepConfig struct {
	Kind            StepKind
	Substeps        []string // axis filters, e.g. "eoud", "eofb", "eorl"
	Min, Max        int
	AbsoluteMin     int
	AbsoluteMax     int
	Quality         int
	NissSwitchType  search.NissSwitchType
}

// StepOptions is the resolved, ready-to-search record a StepConfig turns
// into: defaults filled in (min=0, max=10, quality's step_limit = quality,
// niss=Never).
type StepOptions struct {
	Min, Max    int
	AbsoluteMin int
	AbsoluteMax int
	StepLimit   int
	Niss        search.NissSwitchType
}

// Resolve fills in StepConfig's defaults, producing a StepOptions ready to
// drive the search for every variant of a Step.
func Resolve(cfg StepConfig) StepOptions {
	opts := StepOptions{
		Min:         cfg.Min,
		Max:         cfg.Max,
		AbsoluteMin: cfg.AbsoluteMin,
		AbsoluteMax: cfg.AbsoluteMax,
		Niss:        cfg.NissSwitchType,
	}
	if opts.Max == 0 {
		opts.Max = 10
	}
	if opts.AbsoluteMax == 0 {
		opts.AbsoluteMax = opts.Max
	}
	if cfg.Quality > 0 {
		opts.StepLimit = cfg.Quality * 1
	}
	return opts
}

// ParseStepKind maps a phase name (case-insensitive) to its StepKind, for
// callers building a StepConfig list from a command-line flag.
func ParseStepKind(name string) (StepKind, error) {
	switch strings.ToUpper(name) {
	case "EO":
		return EO, nil
	case "DR":
		return DR, nil
	case "HTR":
		return HTR, nil
	case "FR":
		return FR, nil
	case "FIN":
		return FIN, nil
	default:
		return 0, &cube.Error{Kind: cube.InvalidInput, Message: fmt.Sprintf("unknown step %q", name)}
	}
}

// FilterVariants restricts s to the variants named in substeps (case-
// insensitive), e.g. pinning EO to just "eoud". An empty substeps leaves s
// unchanged, since most callers want every variant the phase declares.
func FilterVariants(s Step, substeps []string) Step {
	if len(substeps) == 0 {
		return s
	}
	allowed := make(map[string]bool, len(substeps))
	for _, name := range substeps {
		allowed[strings.ToLower(name)] = true
	}
	out := Step{Kind: s.Kind}
	for _, v := range s.Variants {
		if allowed[strings.ToLower(v.Name)] {
			out.Variants = append(out.Variants, v)
		}
	}
	return out
}

// ValidateChain rejects phase sequences FIN can't give a correct goal test
// for: FIN's coordinate assumes corners were already either fully placed
// (coming from FR) or left only class-aligned (coming straight from HTR).
// Any other predecessor — or FIN running first — has no matching
// coordinate and would silently test the wrong condition.
func ValidateChain(configs []StepConfig) error {
	for i, cfg := range configs {
		if cfg.Kind != FIN {
			continue
		}
		if i == 0 {
			return &cube.Error{Kind: cube.InvalidInput, Message: "FIN cannot be the first phase in a chain"}
		}
		prev := configs[i-1].Kind
		if prev != FR && prev != HTR {
			return &cube.Error{Kind: cube.InvalidInput, Message: fmt.Sprintf("FIN cannot directly follow %v; only FR or HTR have a matching finish coordinate", prev)}
		}
	}
	return nil
}

// DefaultPipeline is the standard EO/DR/HTR/FR/FIN chain with generous
// per-phase depth budgets, used when a caller does not name specific steps.
func DefaultPipeline() []StepConfig {
	return []StepConfig{
		{Kind: EO, Max: 6},
		{Kind: DR, Max: 12},
		{Kind: HTR, Max: 16},
		{Kind: FR, Max: 12},
		{Kind: FIN, Max: 14},
	}
}
