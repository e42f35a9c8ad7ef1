package cube

// Tracker wraps a Cube and reports turns and solves as they happen.
type Tracker struct {
	cube     *Cube
	turns    int
	solved   bool
	onTurn   func(t Turn, count int)
	onSolved func(count int)
}

// NewTracker creates a tracker around a solved cube of the given size.
func NewTracker(size int, opts ...Option) (*Tracker, error) {
	c, err := New(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Tracker{cube: c, solved: true}, nil
}

// OnTurn sets a callback that fires after every applied turn.
func (t *Tracker) OnTurn(cb func(turn Turn, count int)) {
	t.onTurn = cb
}

// OnSolved sets a callback that fires when a turn leaves the cube solved
// and it was not solved before.
func (t *Tracker) OnSolved(cb func(count int)) {
	t.onSolved = cb
}

// Reset returns the cube to the solved state and clears the turn count.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.turns = 0
	t.solved = true
}

// Scramble scrambles the cube and restarts the turn count.
func (t *Tracker) Scramble(length int) ([]Turn, error) {
	turns, err := t.cube.Scramble(length)
	if err != nil {
		return nil, err
	}
	t.turns = 0
	t.solved = t.cube.IsSolved()
	return turns, nil
}

// Turn parses notation and applies it turn by turn.
func (t *Tracker) Turn(notation string) error {
	turns, err := ParseTurns(notation)
	if err != nil {
		return err
	}
	return t.Apply(turns...)
}

// Apply applies turns and fires callbacks. The whole sequence is validated
// before any of it is applied.
func (t *Tracker) Apply(turns ...Turn) error {
	for _, turn := range turns {
		if err := turn.Normalize().Validate(); err != nil {
			return err
		}
	}

	for _, turn := range turns {
		if err := t.cube.Apply(turn); err != nil {
			return err
		}
		t.turns++
		t.check(turn.Normalize())
	}
	return nil
}

func (t *Tracker) check(turn Turn) {
	if t.onTurn != nil {
		t.onTurn(turn, t.turns)
	}

	solved := t.cube.IsSolved()
	if solved && !t.solved && t.onSolved != nil {
		t.onSolved(t.turns)
	}
	t.solved = solved
}

// TurnCount returns the number of turns applied since the last reset or
// scramble.
func (t *Tracker) TurnCount() int {
	return t.turns
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
