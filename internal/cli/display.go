package cli

import (
	"strings"

	"github.com/ehrlich-b/cube/internal/cube"
)

// ansiForColor maps a facelet color to the ANSI background escape used for
// --color output. Letters mode prints the bare face letter instead.
var ansiForColor = map[cube.Color]string{
	cube.White:  "\033[47m  \033[0m",
	cube.Yellow: "\033[43m  \033[0m",
	cube.Green:  "\033[42m  \033[0m",
	cube.Blue:   "\033[44m  \033[0m",
	cube.Orange: "\033[48;5;208m  \033[0m",
	cube.Red:    "\033[41m  \033[0m",
}

func formatSticker(c cube.Color, useColor bool) string {
	if useColor {
		return ansiForColor[c]
	}
	return c.String() + " "
}

// renderUnfolded prints the six faces of c in the cross layout: U on top,
// L F R B across the middle, D on the bottom.
func renderUnfolded(c *cube.Cube, useColor bool) string {
	facelets := c.Facelets()
	var sb strings.Builder

	writeFace := func(face cube.Face, indent string) {
		grid := facelets[face]
		for row := 0; row < 3; row++ {
			sb.WriteString(indent)
			for col := 0; col < 3; col++ {
				sb.WriteString(formatSticker(grid[row*3+col], useColor))
			}
			sb.WriteString("\n")
		}
	}

	indent := "      "
	writeFace(cube.U, indent)
	sb.WriteString("\n")

	middle := [4]cube.Face{cube.L, cube.F, cube.R, cube.B}
	mg := make([][9]cube.Color, 4)
	for i, f := range middle {
		mg[i] = facelets[f]
	}
	for row := 0; row < 3; row++ {
		for i := range middle {
			for col := 0; col < 3; col++ {
				sb.WriteString(formatSticker(mg[i][row*3+col], useColor))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	writeFace(cube.D, indent)

	return sb.String()
}

func statusLine(c *cube.Cube) string {
	if c.IsSolved() {
		return "Status: SOLVED"
	}
	return "Status: scrambled"
}
