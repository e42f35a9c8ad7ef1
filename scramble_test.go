package cube

import (
	"fmt"
	"testing"
)

// constRand always picks the same index.
type constRand int

func (r constRand) Intn(n int) int {
	return int(r) % n
}

func TestGenerateScrambleDefaultLength(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		c, _ := New(size, WithSeed(1))
		if got := len(c.GenerateScramble(0)); got != size*size*size {
			t.Errorf("%dx%d default scramble has %d turns, want %d", size, size, got, size*size*size)
		}
	}

	c, _ := New(3, WithSeed(1))
	if got := len(c.GenerateScramble(15)); got != 15 {
		t.Errorf("scramble has %d turns, want 15", got)
	}
}

func TestGenerateScrambleNeverRepeatsAxis(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 8} {
		c, _ := New(size, WithSeed(int64(size)))
		turns := c.GenerateScramble(500)

		for i, turn := range turns {
			face, ok := turn.Target.Face()
			if !ok {
				t.Fatalf("scramble contains a rotation: %v", turn)
			}
			if i > 0 {
				prev, _ := turns[i-1].Target.Face()
				if face == prev || face == prev.Opposite() {
					t.Fatalf("%dx%d turn %d: %v follows %v on the same axis", size, size, i, turn, turns[i-1])
				}
			}
			if err := turn.Validate(); err != nil {
				t.Fatalf("invalid scramble turn %v: %v", turn, err)
			}
		}
	}
}

func TestGenerateScrambleDepth(t *testing.T) {
	small, _ := New(3, WithSeed(7))
	for _, turn := range small.GenerateScramble(200) {
		if turn.Depth != 1 || turn.Wide {
			t.Fatalf("3x3 scramble turn %v should be a plain outer turn", turn)
		}
	}

	big, _ := New(8, WithSeed(7))
	var wide, inner int
	for _, turn := range big.GenerateScramble(500) {
		if turn.Depth < 1 || turn.Depth > 4 {
			t.Fatalf("8x8 scramble turn %v has depth outside 1..4", turn)
		}
		if turn.Wide {
			wide++
			if turn.Depth < 2 {
				t.Fatalf("wide turn %v should have depth of at least 2", turn)
			}
		} else if turn.Depth > 1 {
			inner++
		}
	}
	if wide == 0 || inner == 0 {
		t.Errorf("8x8 scramble should mix wide and inner turns, got %d wide and %d inner", wide, inner)
	}
}

func TestGenerateScrambleInjectedRand(t *testing.T) {
	c, _ := New(3, WithRand(constRand(0)))
	if got := c.GenerateScrambleString(4); got != "U- L- U- L-" {
		t.Errorf("GenerateScrambleString = %q, want %q", got, "U- L- U- L-")
	}

	c, _ = New(4, WithRand(constRand(1)))
	if got := c.GenerateScrambleString(3); got != "Lw Fw Uw" {
		t.Errorf("GenerateScrambleString = %q, want %q", got, "Lw Fw Uw")
	}
}

func TestGenerateScrambleSeeded(t *testing.T) {
	a, _ := New(5, WithSeed(99))
	b, _ := New(5, WithSeed(99))
	if a.GenerateScrambleString(40) != b.GenerateScrambleString(40) {
		t.Error("the same seed should give the same scramble")
	}
}

func TestScramble(t *testing.T) {
	c, _ := New(3, WithSeed(3))
	turns, err := c.Scramble(25)
	if err != nil {
		t.Fatalf("Scramble: %v", err)
	}
	if len(turns) != 25 {
		t.Fatalf("Scramble returned %d turns, want 25", len(turns))
	}
	if FormatTurns(c.CurrentScramble()) != FormatTurns(turns) {
		t.Error("CurrentScramble should return the applied scramble")
	}
	if len(c.History()) != 0 {
		t.Error("scrambling should not be recorded in history")
	}

	replay, _ := New(3)
	if err := replay.Apply(turns...); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if fmt.Sprint(replay.State()) != fmt.Sprint(c.State()) {
		t.Error("scrambled state should match replaying the scramble")
	}

	c.Reset()
	if len(c.CurrentScramble()) != 0 {
		t.Error("Reset should clear the current scramble")
	}
}
