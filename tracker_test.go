package cube

import (
	"errors"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr, err := NewTracker(3)
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	if err := tr.Turn("R U"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if tr.IsSolved() {
		t.Error("cube should not be solved after R U")
	}
	if tr.TurnCount() != 2 {
		t.Errorf("TurnCount() = %d, want 2", tr.TurnCount())
	}

	tr.Reset()
	if !tr.IsSolved() || tr.TurnCount() != 0 {
		t.Error("Reset should give a solved cube and a zero count")
	}
}

func TestTrackerCallbacks(t *testing.T) {
	tr, _ := NewTracker(3)

	var seen []string
	solvedAt := -1
	tr.OnTurn(func(turn Turn, count int) {
		seen = append(seen, turn.String())
	})
	tr.OnSolved(func(count int) {
		solvedAt = count
	})

	if err := tr.Apply(SexyMove...); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if solvedAt != -1 {
		t.Fatal("OnSolved fired before the cube was solved")
	}
	for i := 0; i < 5; i++ {
		if err := tr.Apply(SexyMove...); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}

	if len(seen) != 24 {
		t.Errorf("OnTurn fired %d times, want 24", len(seen))
	}
	if seen[2] != "R-" {
		t.Errorf("third turn = %q, want R-", seen[2])
	}
	if solvedAt != 24 {
		t.Errorf("OnSolved fired at turn %d, want 24", solvedAt)
	}
}

func TestTrackerSolvedOnlyOnTransition(t *testing.T) {
	tr, _ := NewTracker(2)
	fired := 0
	tr.OnSolved(func(int) { fired++ })

	if err := tr.Turn("Y X2"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if fired != 0 {
		t.Error("rotating a solved cube is not a new solve")
	}

	if err := tr.Turn("F F-"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if fired != 1 {
		t.Errorf("OnSolved fired %d times, want 1", fired)
	}
}

func TestTrackerRejectsBadSequence(t *testing.T) {
	tr, _ := NewTracker(3)
	count := 0
	tr.OnTurn(func(Turn, int) { count++ })

	err := tr.Apply(R, Turn{Target: TargetU, Depth: 0, Rotation: CW})
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("Apply error = %v, want ErrInvalidNotation", err)
	}
	if count != 0 || !tr.IsSolved() {
		t.Error("no turn should be applied when the sequence is invalid")
	}
}

func TestTrackerScramble(t *testing.T) {
	tr, _ := NewTracker(3, WithSeed(5))
	if err := tr.Turn("R"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	turns, err := tr.Scramble(20)
	if err != nil {
		t.Fatalf("Scramble: %v", err)
	}
	if len(turns) != 20 {
		t.Errorf("Scramble returned %d turns", len(turns))
	}
	if tr.TurnCount() != 0 {
		t.Errorf("TurnCount() = %d after scramble, want 0", tr.TurnCount())
	}
	if tr.Cube() == nil || tr.CubeString() == "" {
		t.Error("tracker should expose its cube")
	}
}
