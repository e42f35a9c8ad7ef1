package cube

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Target is the letter a turn names: a face (U, L, F, R, B, D) or a
// whole-cube axis (X, Y, Z).
type Target string

const (
	TargetU Target = "U" // Up
	TargetL Target = "L" // Left
	TargetF Target = "F" // Front
	TargetR Target = "R" // Right
	TargetB Target = "B" // Back
	TargetD Target = "D" // Down
	TargetX Target = "X" // Rotate the cube like R
	TargetY Target = "Y" // Rotate the cube like U
	TargetZ Target = "Z" // Rotate the cube like F
)

// IsAxis reports whether the target is a whole-cube rotation.
func (t Target) IsAxis() bool {
	return t == TargetX || t == TargetY || t == TargetZ
}

// Face returns the face a face target turns.
func (t Target) Face() (Face, bool) {
	switch t {
	case TargetU:
		return FaceU, true
	case TargetL:
		return FaceL, true
	case TargetF:
		return FaceF, true
	case TargetR:
		return FaceR, true
	case TargetB:
		return FaceB, true
	case TargetD:
		return FaceD, true
	}
	return 0, false
}

func (t Target) valid() bool {
	_, ok := t.Face()
	return ok || t.IsAxis()
}

// Rotation is the direction and amount of a turn, viewed facing the named
// face or axis from outside the cube.
type Rotation int

const (
	CW     Rotation = 1  // Clockwise (90 degrees)
	CCW    Rotation = -1 // Counter-clockwise (90 degrees)
	Double Rotation = 2  // Half turn (180 degrees)
)

// quarters returns the number of clockwise quarter turns the rotation is
// equivalent to.
func (r Rotation) quarters() (int, error) {
	switch r {
	case CW:
		return 1, nil
	case Double:
		return 2, nil
	case CCW:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidRotation, int(r))
}

// Turn describes a single move.
//
// Depth counts layers from the named face (1 is the outer layer). A wide
// turn moves every layer from the outer face down to Depth together; a
// non-wide turn moves only the layer at Depth.
type Turn struct {
	Target   Target   `json:"target"`
	Depth    int      `json:"depth"`
	Wide     bool     `json:"wide"`
	Rotation Rotation `json:"rotation"`
}

// Notation returns the canonical notation for the turn.
// Examples: F, F-, F2, Fw, 3Fw2, 2F-
func (t Turn) Notation() string {
	var b strings.Builder

	if (!t.Wide && t.Depth > 1) || (t.Wide && t.Depth > 2) {
		b.WriteString(strconv.Itoa(t.Depth))
	}

	b.WriteString(string(t.Target))

	if t.Wide {
		b.WriteByte('w')
	}

	switch t.Rotation {
	case CCW:
		b.WriteByte('-')
	case Double:
		b.WriteByte('2')
	}

	return b.String()
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// Inverse returns the turn that undoes this one.
// F becomes F-, F- becomes F, F2 stays F2.
func (t Turn) Inverse() Turn {
	inv := t
	switch t.Rotation {
	case CW:
		inv.Rotation = CCW
	case CCW:
		inv.Rotation = CW
	// Double is its own inverse
	}
	return inv
}

// Normalize clamps a wide turn to at least two layers.
func (t Turn) Normalize() Turn {
	if t.Wide && t.Depth < 2 {
		t.Depth = 2
	}
	return t
}

// Validate checks that the turn can be applied.
func (t Turn) Validate() error {
	if !t.Target.valid() {
		return fmt.Errorf("%w: unknown target %q", ErrInvalidNotation, string(t.Target))
	}
	if t.Depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidNotation, t.Depth)
	}
	if t.Target.IsAxis() && (t.Depth != 1 || t.Wide) {
		return fmt.Errorf("%w: cube rotation %s cannot have a depth", ErrInvalidNotation, t.Target)
	}
	if _, err := t.Rotation.quarters(); err != nil {
		return err
	}
	return nil
}

// ParseTurn parses a single token of the form [depth]TARGET[w][-|'|2].
// Examples: R, R', R2, Rw, 3Rw-, 2U2, x
func ParseTurn(s string) (Turn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Turn{}, fmt.Errorf("%w: empty turn", ErrInvalidNotation)
	}

	pos := 0

	// Extract depth
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	depth := 1
	hasDepth := pos > 0
	if hasDepth {
		d, err := strconv.Atoi(s[:pos])
		if err != nil || d < 1 {
			return Turn{}, fmt.Errorf("%w: bad depth in %q", ErrInvalidNotation, s)
		}
		depth = d
	}

	// Extract target
	if pos >= len(s) {
		return Turn{}, fmt.Errorf("%w: no target in %q", ErrInvalidNotation, s)
	}
	target := Target(strings.ToUpper(s[pos : pos+1]))
	if !target.valid() {
		return Turn{}, fmt.Errorf("%w: no target in %q", ErrInvalidNotation, s)
	}
	pos++

	// Extract wide marker
	wide := false
	if pos < len(s) && s[pos] == 'w' {
		wide = true
		pos++
	}

	if target.IsAxis() && (hasDepth || wide) {
		return Turn{}, fmt.Errorf("%w: cube rotation %q cannot have a depth", ErrInvalidNotation, s)
	}

	// Extract rotation
	rotation := CW
	switch s[pos:] {
	case "":
	case "-", "'", "`":
		rotation = CCW
	case "2", "2-", "2'":
		rotation = Double
	default:
		return Turn{}, fmt.Errorf("%w: bad suffix in %q", ErrInvalidNotation, s)
	}

	t := Turn{
		Target:   target,
		Depth:    depth,
		Wide:     wide,
		Rotation: rotation,
	}
	return t.Normalize(), nil
}

// ParseTurns parses a sequence of turns separated by whitespace or commas.
// Example: "R U R' U'"
// The first invalid token aborts parsing; nothing is returned for it.
func ParseTurns(s string) ([]Turn, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	turns := make([]Turn, 0, len(parts))

	for _, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}

	return turns, nil
}

// FormatTurns formats a slice of turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}

	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}

	return strings.Join(parts, " ")
}
