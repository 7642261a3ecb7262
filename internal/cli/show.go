package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state after an optional scramble",
	Long: `Show displays the cube state after applying a scramble.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color
  cube show`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		useColor, _ := cmd.Flags().GetBool("color")

		c := cube.NewSolved()
		if scramble != "" {
			turns, err := cube.ParseTurns(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			c.TurnAll(turns)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		fmt.Print(renderUnfolded(c, useColor))
		fmt.Println(statusLine(c))
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
