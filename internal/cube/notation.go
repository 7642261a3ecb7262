package cube

import (
	"strings"
)

// ParseTurn parses a single quarter/half turn in standard notation: one of
// U D F B L R, optionally followed by ' (counter-clockwise) or 2 (half turn).
func ParseTurn(notation string) (Turn, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Turn{}, newInvalidInput(0, "empty turn notation")
	}

	var face Face
	switch notation[0] {
	case 'U':
		face = U
	case 'D':
		face = D
	case 'F':
		face = F
	case 'B':
		face = B
	case 'L':
		face = L
	case 'R':
		face = R
	default:
		return Turn{}, newInvalidInput(0, "unknown face in turn notation: %s", notation)
	}

	direction := CW
	switch suffix := notation[1:]; suffix {
	case "":
		direction = CW
	case "'":
		direction = CCW
	case "2":
		direction = Half
	default:
		return Turn{}, newInvalidInput(1, "unknown modifier in turn notation: %s", notation)
	}

	return Turn{Face: face, Direction: direction}, nil
}

// ParseTurns parses a space-separated sequence of turns. A malformed turn's
// offset is reported relative to sequence as a whole, not to the
// individual token, so a caller can point at the exact character.
func ParseTurns(sequence string) ([]Turn, error) {
	if len(strings.TrimSpace(sequence)) == 0 {
		return []Turn{}, nil
	}

	turns := make([]Turn, 0, len(strings.Fields(sequence)))
	pos := 0
	for pos < len(sequence) {
		for pos < len(sequence) && sequence[pos] == ' ' {
			pos++
		}
		start := pos
		for pos < len(sequence) && sequence[pos] != ' ' {
			pos++
		}
		if start == pos {
			continue
		}
		part := sequence[start:pos]
		t, err := ParseTurn(part)
		if err != nil {
			offset := start
			if ce, ok := err.(*Error); ok {
				offset += ce.Offset
			}
			return nil, newInvalidInput(offset, "parsing turn %q: %s", part, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// TurnsString renders a sequence of turns as space-separated notation.
func TurnsString(ms []Turn) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ParseTransformation parses a whole-cube rotation: one of x y z, optionally
// followed by ' or 2.
func ParseTransformation(notation string) (Transformation, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Transformation{}, newInvalidInput(0, "empty transformation notation")
	}

	var axis Axis
	switch notation[0] {
	case 'x':
		axis = X
	case 'y':
		axis = Y
	case 'z':
		axis = Z
	default:
		return Transformation{}, newInvalidInput(0, "unknown axis in transformation notation: %s", notation)
	}

	direction := CW
	switch suffix := notation[1:]; suffix {
	case "":
		direction = CW
	case "'":
		direction = CCW
	case "2":
		direction = Half
	default:
		return Transformation{}, newInvalidInput(1, "unknown modifier in transformation notation: %s", notation)
	}

	return Transformation{Axis: axis, Direction: direction}, nil
}
