package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/solve"
	"github.com/ehrlich-b/cube/internal/step"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube through the EO/DR/HTR/FR/FIN reduction chain",
	Long: `Solve runs a scrambled cube through the multi-phase reduction pipeline,
printing each phase's setup rotation and turns.

Use --steps to run a subset of phases (comma-separated, e.g. "eo,dr").
Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		stepsFlag, _ := cmd.Flags().GetString("steps")
		maxDepth, _ := cmd.Flags().GetInt("max")

		root := cube.NewSolved()
		if scramble != "" {
			turns, err := cube.ParseTurns(scramble)
			if err != nil {
				fail(headless, "Error parsing scramble: %v\n", err)
			}
			root.TurnAll(turns)
		}

		if !headless {
			fmt.Printf("Solving scramble: %s\n\n", scramble)
		}

		configs, err := buildConfigs(stepsFlag, maxDepth)
		if err != nil {
			fail(headless, "Error parsing --steps: %v\n", err)
		}

		solutions, err := solve.Pipeline(context.Background(), root, configs)
		if err != nil {
			fail(headless, "Error solving cube: %v\n", err)
		}

		best := solutions[0]
		if headless {
			fmt.Print(flattenTurns(best))
			return
		}

		for _, phase := range best.Phases {
			setup := ""
			if len(phase.Setup) > 0 {
				parts := make([]string, len(phase.Setup))
				for i, t := range phase.Setup {
					parts[i] = t.String()
				}
				setup = strings.Join(parts, " ")
			}
			fmt.Printf("%-5s (%-6s) setup=[%s] turns=%s\n",
				phase.Kind, phase.Variant, setup, cube.TurnsString(phase.Turns))
		}
		fmt.Printf("\nTotal moves: %d\n", best.TotalLength())
	},
}

func fail(headless bool, format string, args ...any) {
	if !headless {
		fmt.Printf(format, args...)
	}
	os.Exit(1)
}

func flattenTurns(s solve.Solution) string {
	var all []cube.Turn
	for _, p := range s.Phases {
		all = append(all, p.Turns...)
	}
	return cube.TurnsString(all)
}

func buildConfigs(stepsFlag string, max int) ([]step.StepConfig, error) {
	if stepsFlag == "" {
		return step.DefaultPipeline(), nil
	}
	names := strings.Split(stepsFlag, ",")
	configs := make([]step.StepConfig, 0, len(names))
	for _, name := range names {
		kind, err := step.ParseStepKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		configs = append(configs, step.StepConfig{Kind: kind, Max: max})
	}
	return configs, nil
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().String("steps", "", "Comma-separated phases to run (eo,dr,htr,fr,fin); default runs all five")
	solveCmd.Flags().Int("max", 0, "Per-phase max search depth when --steps is set (0 uses each phase's default)")
}
