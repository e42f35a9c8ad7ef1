package cube

var scrambleRotations = [3]Rotation{CCW, CW, Double}

// GenerateScramble returns a random turn sequence. A length of zero or less
// selects size³ turns.
//
// Each turn after the first is on a face that crosses the previous one, so
// no turn can cancel or merge with the turn before it. Cubes larger than
// 3×3 also get random wide and inner-layer turns.
func (c *Cube) GenerateScramble(length int) []Turn {
	if length <= 0 {
		length = c.size * c.size * c.size
	}

	r := c.cfg.randSource()
	turns := make([]Turn, 0, length)

	face := Faces[r.Intn(len(Faces))]
	for i := 0; i < length; i++ {
		if i > 0 {
			face = intersectingFaces[face][r.Intn(4)]
		}

		t := Turn{
			Target:   face.Target(),
			Depth:    1,
			Rotation: scrambleRotations[r.Intn(len(scrambleRotations))],
		}
		if c.size > 3 {
			t.Wide = r.Intn(2) == 1
			t.Depth = 1 + r.Intn(c.size/2)
		}

		turns = append(turns, t.Normalize())
	}

	return turns
}

// GenerateScrambleString returns a random scramble in notation form.
func (c *Cube) GenerateScrambleString(length int) string {
	return FormatTurns(c.GenerateScramble(length))
}

// Scramble generates a scramble and applies it to the current state. The
// scramble is not added to the history; CurrentScramble returns it.
func (c *Cube) Scramble(length int) ([]Turn, error) {
	turns := c.GenerateScramble(length)
	if err := c.apply(turns, false); err != nil {
		return nil, err
	}
	c.scramble = turns
	return append([]Turn(nil), turns...), nil
}

// CurrentScramble returns the last scramble applied with Scramble.
func (c *Cube) CurrentScramble() []Turn {
	return append([]Turn(nil), c.scramble...)
}
