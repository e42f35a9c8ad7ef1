package cube

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/SeamusWaldron/cube/internal/grid"
	"github.com/westphae/quaternion"
)

// MaxSize is the largest supported cube.
const MaxSize = 1024

// State holds the stickers of every face, indexed by Face. Each face is a
// row-major grid of size*size stickers.
type State [6][]Sticker

// clone returns a deep copy so callers can mutate faces freely.
func (s State) clone() State {
	var out State
	for f := range s {
		out[f] = append([]Sticker(nil), s[f]...)
	}
	return out
}

// Colors returns the colour values of one face.
func (s State) Colors(face Face) []Color {
	out := make([]Color, len(s[face]))
	for i, st := range s[face] {
		out[i] = st.Color
	}
	return out
}

// wireState is the JSON form of a State: six arrays of raw colour values.
type wireState struct {
	U []Color `json:"U"`
	L []Color `json:"L"`
	F []Color `json:"F"`
	R []Color `json:"R"`
	B []Color `json:"B"`
	D []Color `json:"D"`
}

// labeledState is the JSON form used in labeled-sticker mode.
type labeledState struct {
	U []Sticker `json:"U"`
	L []Sticker `json:"L"`
	F []Sticker `json:"F"`
	R []Sticker `json:"R"`
	B []Sticker `json:"B"`
	D []Sticker `json:"D"`
}

// MarshalJSON writes the state as {"U":[...],"L":[...],...} with raw colours.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireState{
		U: s.Colors(FaceU),
		L: s.Colors(FaceL),
		F: s.Colors(FaceF),
		R: s.Colors(FaceR),
		B: s.Colors(FaceB),
		D: s.Colors(FaceD),
	})
}

// UnmarshalJSON reads the raw colour form. Sticker labels are set to each
// sticker's position on its face.
func (s *State) UnmarshalJSON(data []byte) error {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	for f, colors := range [6][]Color{w.U, w.L, w.F, w.R, w.B, w.D} {
		stickers := make([]Sticker, len(colors))
		for i, c := range colors {
			stickers[i] = Sticker{Index: i, Color: c}
		}
		s[f] = stickers
	}
	return nil
}

// ParseState decodes a JSON state and checks it fits a cube of the given size.
func ParseState(data []byte, size int) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if err := s.validate(size); err != nil {
		return State{}, err
	}
	return s, nil
}

func (s State) validate(size int) error {
	want := size * size
	for _, f := range Faces {
		if len(s[f]) != want {
			return fmt.Errorf("%w: face %s has %d stickers, want %d", ErrInvalidState, f, len(s[f]), want)
		}
	}
	return nil
}

// HistoryEntry records one applied turn.
type HistoryEntry struct {
	Turn Turn      `json:"turn"`
	Time time.Time `json:"time"`
}

// Cube is an N×N×N cube.
//
// Faces are stored as row-major sticker grids. Looking straight at a face
// with U on top (or F on top, for U and D), index 0 is the top-left sticker:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// A Cube is not safe for concurrent use.
type Cube struct {
	size     int
	state    State
	cfg      *config
	history  []HistoryEntry
	scramble []Turn
	rotation quaternion.Quaternion
}

// New creates a solved cube of the given size.
func New(size int, opts ...Option) (*Cube, error) {
	if size < 2 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		size: size,
		cfg:  cfg,
	}
	c.Reset()
	return c, nil
}

// ParseSize parses a cube size from decimal text.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidSize, s)
	}
	if n < 2 || n > MaxSize {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	return n, nil
}

// Reset returns the cube to the solved state, with colour i on face i.
// History, the current scramble and the orientation are cleared too.
func (c *Cube) Reset() {
	n := c.size * c.size
	for _, f := range Faces {
		stickers := make([]Sticker, n)
		for i := range stickers {
			stickers[i] = Sticker{Index: i, Color: Color(f)}
		}
		c.state[f] = stickers
	}
	c.history = nil
	c.scramble = nil
	c.rotation = identityRotation
}

// Size returns the number of layers along each edge.
func (c *Cube) Size() int {
	return c.size
}

// State returns a copy of the current stickers.
func (c *Cube) State() State {
	return c.state.clone()
}

// SetState replaces the stickers. Labels are reset to positions.
func (c *Cube) SetState(s State) error {
	if err := s.validate(c.size); err != nil {
		return err
	}

	var next State
	for _, f := range Faces {
		stickers := make([]Sticker, len(s[f]))
		for i, st := range s[f] {
			stickers[i] = Sticker{Index: i, Color: st.Color}
		}
		next[f] = stickers
	}
	c.state = next
	return nil
}

// Clone returns an independent copy of the cube, including its history.
// The copy gets its own random source, seeded from the original's, so
// scrambling one never changes what the other generates. The logger is
// shared.
func (c *Cube) Clone() *Cube {
	cfg := *c.cfg
	cfg.rand = rand.New(rand.NewSource(int64(c.cfg.randSource().Intn(math.MaxInt32))))
	return &Cube{
		size:     c.size,
		state:    c.state.clone(),
		cfg:      &cfg,
		history:  append([]HistoryEntry(nil), c.history...),
		scramble: append([]Turn(nil), c.scramble...),
		rotation: c.rotation,
	}
}

// Stickers calls fn for every sticker, face by face in U, L, F, R, B, D order.
func (c *Cube) Stickers(fn func(face Face, i int, s Sticker)) {
	for _, f := range Faces {
		for i, s := range c.state[f] {
			fn(f, i, s)
		}
	}
}

// IsSolved reports whether every face shows a single colour.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		stickers := c.state[f]
		for i := 1; i < len(stickers); i++ {
			if stickers[i].Color != stickers[0].Color {
				return false
			}
		}
	}
	return true
}

// Turn parses notation and applies it. Nothing is applied unless the whole
// sequence parses.
func (c *Cube) Turn(notation string) error {
	turns, err := ParseTurns(notation)
	if err != nil {
		return err
	}
	return c.Apply(turns...)
}

// Apply performs turns in order. Every turn is validated first, and the
// cube only changes once all of them have succeeded.
func (c *Cube) Apply(turns ...Turn) error {
	return c.apply(turns, c.cfg.history)
}

func (c *Cube) apply(turns []Turn, record bool) error {
	prepared := make([]Turn, len(turns))
	for i, t := range turns {
		t = t.Normalize()
		if err := t.Validate(); err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}
		prepared[i] = t
	}

	next := c.state
	rotation := c.rotation
	for _, t := range prepared {
		s, err := applyTurn(next, c.size, t)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", t, err)
		}
		next = s
		if t.Target.IsAxis() {
			rotation = rotateBody(rotation, t)
		}
	}

	c.state = next
	c.rotation = rotation

	if record {
		now := time.Now()
		for _, t := range prepared {
			c.history = append(c.history, HistoryEntry{Turn: t, Time: now})
		}
	}

	if c.cfg.logger != nil {
		c.cfg.logger.Debug("applied turns", "turns", FormatTurns(prepared), "solved", c.IsSolved())
	}

	return nil
}

// History returns a copy of the recorded turns.
// Returns nil if history tracking is disabled.
func (c *Cube) History() []HistoryEntry {
	if !c.cfg.history {
		return nil
	}
	return append([]HistoryEntry(nil), c.history...)
}

// LastTurn returns the most recent recorded turn.
func (c *Cube) LastTurn() (Turn, bool) {
	if len(c.history) == 0 {
		return Turn{}, false
	}
	return c.history[len(c.history)-1].Turn, true
}

// MarshalJSON writes the cube state. With labeled stickers each sticker is
// an {index, value} record, otherwise a bare colour.
func (c *Cube) MarshalJSON() ([]byte, error) {
	if !c.cfg.labeled {
		return c.state.MarshalJSON()
	}
	return json.Marshal(labeledState{
		U: c.state[FaceU],
		L: c.state[FaceL],
		F: c.state[FaceF],
		R: c.state[FaceR],
		B: c.state[FaceB],
		D: c.state[FaceD],
	})
}

// String returns the cube as an unfolded net: U on top, then L F R B, then D.
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat("  ", c.size)

	writeRow := func(row []Sticker) {
		for _, s := range row {
			b.WriteString(s.Color.String())
			b.WriteByte(' ')
		}
	}

	for _, row := range grid.ChunkRows(c.state[FaceU]) {
		b.WriteString(pad)
		writeRow(row)
		b.WriteByte('\n')
	}

	middle := [4][][]Sticker{
		grid.ChunkRows(c.state[FaceL]),
		grid.ChunkRows(c.state[FaceF]),
		grid.ChunkRows(c.state[FaceR]),
		grid.ChunkRows(c.state[FaceB]),
	}
	for row := 0; row < c.size; row++ {
		for _, face := range middle {
			writeRow(face[row])
		}
		b.WriteByte('\n')
	}

	for _, row := range grid.ChunkRows(c.state[FaceD]) {
		b.WriteString(pad)
		writeRow(row)
		b.WriteByte('\n')
	}

	return b.String()
}
