package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result. Perfect for learning algorithms and exploring patterns.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color
  cube twist "R2 U2" --state UUUUUUUUUDDDDDDDDDFFFFFFFFFBBBBBBBBBLLLLLLLLLRRRRRRRRR`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useColor, _ := cmd.Flags().GetBool("color")
		startState, _ := cmd.Flags().GetString("state")

		var c *cube.Cube
		if startState != "" {
			parsed, err := cube.ParseState(startState)
			if err != nil {
				fmt.Printf("Error parsing starting state: %v\n", err)
				os.Exit(1)
			}
			c = parsed
		} else {
			c = cube.NewSolved()
		}

		turns, err := cube.ParseTurns(moves)
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}
		c.TurnAll(turns)

		fmt.Printf("Applying moves: %s\n\n", cube.TurnsString(turns))
		fmt.Print(renderUnfolded(c, useColor))
		fmt.Printf("\nMoves applied: %d\n", len(turns))
		fmt.Println(statusLine(c))
		fmt.Printf("State: %s\n", c.StateString())
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output")
	twistCmd.Flags().String("state", "", "Starting cube state as a 54-character facelet string (default: solved)")
}
