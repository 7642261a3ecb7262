package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A 3x3x3 Rubik's cube solver core",
	Long: `Cube is a thin demonstration front-end over a multi-phase, IDA*-style
Rubik's cube (3x3x3) reduction solver: EO, DR, HTR, FR, and Finish.`,
	Version: "2.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}
