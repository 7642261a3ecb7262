package solve

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/step"
)

// TestPipelineSolvesShortScramble is end-to-end scenario S1: a short
// scramble run through the full EO/DR/HTR/FR/FIN chain should come back
// solved.
func TestPipelineSolvesShortScramble(t *testing.T) {
	root := cube.NewSolved()
	scramble, err := cube.ParseTurns("R U R' U'")
	if err != nil {
		t.Fatalf("ParseTurns: %v", err)
	}
	root.TurnAll(scramble)

	configs := []step.StepConfig{
		{Kind: step.EO, Max: 6},
		{Kind: step.DR, Max: 10},
		{Kind: step.HTR, Max: 14},
		{Kind: step.FR, Max: 10},
		{Kind: step.FIN, Max: 12},
	}

	solutions, err := Pipeline(context.Background(), root, configs)
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	if len(solutions) == 0 {
		t.Fatal("Pipeline returned no solutions")
	}

	got := root.Clone()
	for _, phase := range solutions[0].Phases {
		got.TransformAll(phase.Setup)
		got.TurnAll(phase.Turns)
	}
	if !got.IsSolved() {
		t.Error("replaying the pipeline's solution does not solve the cube")
	}
}

// TestPipelineEOOnly is scenario S6: an EO-only step on a cube with
// misoriented FB edges should come back as exactly one solution holding
// exactly one phase. It does not compare the solution's length with the
// pruning-table distance.
func TestPipelineEOOnly(t *testing.T) {
	root := cube.NewSolved()
	scramble, _ := cube.ParseTurns("F R F' R'")
	root.TurnAll(scramble)

	configs := []step.StepConfig{{Kind: step.EO, Max: 8}}
	solutions, err := Pipeline(context.Background(), root, configs)
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	if len(solutions) != 1 {
		t.Fatalf("len(solutions) = %d, want 1", len(solutions))
	}
	if len(solutions[0].Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(solutions[0].Phases))
	}
}

// TestPipelineNoSolutionWithinBudget checks that a budget too small for
// the scramble's true EO distance surfaces the NoSolution error kind
// rather than panicking.
func TestPipelineNoSolutionWithinBudget(t *testing.T) {
	root := cube.NewSolved()
	scramble, _ := cube.ParseTurns("R U R' U' F2 D B' L2")
	root.TurnAll(scramble)

	configs := []step.StepConfig{{Kind: step.EO, Max: 1}}
	_, err := Pipeline(context.Background(), root, configs)
	if err == nil {
		t.Fatal("expected NoSolution, got nil (scramble's EO distance <= 1?)")
	}
	cubeErr, ok := err.(*cube.Error)
	if !ok {
		t.Fatalf("error type = %T, want *cube.Error", err)
	}
	if cubeErr.Kind != cube.NoSolution {
		t.Errorf("Kind = %v, want NoSolution", cubeErr.Kind)
	}
}
