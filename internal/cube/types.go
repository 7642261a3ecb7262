// Package cube implements the packed cubie representation, move algebra,
// and facelet projection for a 3x3x3 Rubik's cube.
package cube

import "fmt"

// Face identifies one of the six faces of the cube.
type Face int

const (
	U Face = iota
	D
	F
	B
	L
	R
)

func (f Face) String() string {
	return faceNames[f]
}

var faceNames = [6]string{"U", "D", "F", "B", "L", "R"}

// Direction identifies how far a face (or the whole cube) is turned.
type Direction int

const (
	CW Direction = iota
	Half
	CCW
)

func (d Direction) String() string {
	switch d {
	case CW:
		return ""
	case Half:
		return "2"
	case CCW:
		return "'"
	default:
		return "?"
	}
}

// Axis identifies a whole-cube rotation axis.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	return []string{"x", "y", "z"}[a]
}

// Turn is a single face turn: which face, how far.
type Turn struct {
	Face      Face
	Direction Direction
}

// Index returns the turn's position in the canonical 0..17 enumeration,
// face*3 + direction.
func (t Turn) Index() int {
	return int(t.Face)*3 + int(t.Direction)
}

// TurnFromIndex recovers a Turn from its canonical index.
func TurnFromIndex(i int) Turn {
	return Turn{Face: Face(i / 3), Direction: Direction(i % 3)}
}

func (t Turn) String() string {
	return t.Face.String() + t.Direction.String()
}

// NumTurns is the total number of distinct turns (6 faces * 3 directions).
const NumTurns = 18

// Transformation is a whole-cube rotation; it never changes solved-ness.
type Transformation struct {
	Axis      Axis
	Direction Direction
}

func (t Transformation) String() string {
	return t.Axis.String() + t.Direction.String()
}

// Color is a facelet sticker color.
type Color int

const (
	White Color = iota
	Yellow
	Green
	Blue
	Orange
	Red
)

func (c Color) String() string {
	return []string{"U", "D", "F", "B", "L", "R"}[c]
}

// solvedCenterColor is the fixed center color of each face, following the
// standard Western color scheme: U=white, D=yellow, F=green, B=blue,
// L=orange, R=red.
var solvedCenterColor = [6]Color{White, Yellow, Green, Blue, Orange, Red}

// Opposite returns the face on the other end of the same axis.
func (f Face) Opposite() Face {
	return [6]Face{D, U, B, F, R, L}[f]
}

// Axis returns the rotation axis a face's turns belong to.
func (f Face) Axis() Axis {
	switch f {
	case U, D:
		return Y
	case F, B:
		return Z
	case L, R:
		return X
	}
	panic(fmt.Sprintf("invalid face %d", f))
}
