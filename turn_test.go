package cube

import (
	"errors"
	"testing"
)

func TestParseTurn(t *testing.T) {
	tests := []struct {
		input string
		want  Turn
	}{
		{"R", Turn{Target: TargetR, Depth: 1, Rotation: CW}},
		{"R-", Turn{Target: TargetR, Depth: 1, Rotation: CCW}},
		{"R'", Turn{Target: TargetR, Depth: 1, Rotation: CCW}},
		{"R2", Turn{Target: TargetR, Depth: 1, Rotation: Double}},
		{"R2'", Turn{Target: TargetR, Depth: 1, Rotation: Double}},
		{"r", Turn{Target: TargetR, Depth: 1, Rotation: CW}},
		{"2F", Turn{Target: TargetF, Depth: 2, Rotation: CW}},
		{"Fw", Turn{Target: TargetF, Depth: 2, Wide: true, Rotation: CW}},
		{"1Fw", Turn{Target: TargetF, Depth: 2, Wide: true, Rotation: CW}},
		{"3Fw2", Turn{Target: TargetF, Depth: 3, Wide: true, Rotation: Double}},
		{"12Bw-", Turn{Target: TargetB, Depth: 12, Wide: true, Rotation: CCW}},
		{"x", Turn{Target: TargetX, Depth: 1, Rotation: CW}},
		{"Y-", Turn{Target: TargetY, Depth: 1, Rotation: CCW}},
		{"Z2", Turn{Target: TargetZ, Depth: 1, Rotation: Double}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTurn(tt.input)
			if err != nil {
				t.Fatalf("ParseTurn(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTurn(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTurnInvalid(t *testing.T) {
	for _, input := range []string{"", "2", "Q", "0R", "R3", "Rx", "R--", "2X", "Xw", "R w", "RR"} {
		if _, err := ParseTurn(input); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseTurn(%q) error = %v, want ErrInvalidNotation", input, err)
		}
	}
}

func TestTurnNotation(t *testing.T) {
	tests := []struct {
		turn Turn
		want string
	}{
		{R, "R"},
		{RPrime, "R-"},
		{R2, "R2"},
		{Turn{Target: TargetU, Depth: 2, Rotation: CW}, "2U"},
		{Turn{Target: TargetU, Depth: 2, Wide: true, Rotation: CW}, "Uw"},
		{Turn{Target: TargetU, Depth: 3, Wide: true, Rotation: CCW}, "3Uw-"},
		{Turn{Target: TargetL, Depth: 4, Rotation: Double}, "4L2"},
		{X, "X"},
	}

	for _, tt := range tests {
		if got := tt.turn.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
	}
}

func TestTurnRoundTrip(t *testing.T) {
	for _, target := range []Target{TargetU, TargetL, TargetF, TargetR, TargetB, TargetD} {
		for depth := 1; depth <= 5; depth++ {
			for _, wide := range []bool{false, true} {
				for _, rot := range []Rotation{CW, CCW, Double} {
					turn := Turn{Target: target, Depth: depth, Wide: wide, Rotation: rot}.Normalize()
					got, err := ParseTurn(turn.String())
					if err != nil {
						t.Fatalf("ParseTurn(%q): %v", turn.String(), err)
					}
					if got != turn {
						t.Errorf("round trip of %+v gave %+v", turn, got)
					}
				}
			}
		}
	}
}

func TestTurnInverse(t *testing.T) {
	tests := []struct {
		turn Turn
		want Turn
	}{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{Turn{Target: TargetF, Depth: 3, Wide: true, Rotation: CW}, Turn{Target: TargetF, Depth: 3, Wide: true, Rotation: CCW}},
	}

	for _, tt := range tests {
		if got := tt.turn.Inverse(); got != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.turn, got, tt.want)
		}
	}
}

func TestTurnValidate(t *testing.T) {
	tests := []struct {
		name string
		turn Turn
		want error
	}{
		{"ok", R, nil},
		{"unknown target", Turn{Target: "Q", Depth: 1, Rotation: CW}, ErrInvalidNotation},
		{"zero depth", Turn{Target: TargetR, Rotation: CW}, ErrInvalidNotation},
		{"deep axis", Turn{Target: TargetX, Depth: 2, Rotation: CW}, ErrInvalidNotation},
		{"bad rotation", Turn{Target: TargetR, Depth: 1, Rotation: 0}, ErrInvalidRotation},
		{"three quarters", Turn{Target: TargetR, Depth: 1, Rotation: 3}, ErrInvalidRotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.turn.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseTurns(t *testing.T) {
	turns, err := ParseTurns("R U  R', U-\n2Fw2")
	if err != nil {
		t.Fatalf("ParseTurns error: %v", err)
	}
	if got := FormatTurns(turns); got != "R U R- U- Fw2" {
		t.Errorf("FormatTurns = %q", got)
	}

	turns, err = ParseTurns("   ")
	if err != nil || len(turns) != 0 {
		t.Errorf("ParseTurns(blank) = %v, %v; want no turns", turns, err)
	}

	if _, err := ParseTurns("R U K"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseTurns with a bad token error = %v", err)
	}
}

func TestFormatTurnsEmpty(t *testing.T) {
	if got := FormatTurns(nil); got != "" {
		t.Errorf("FormatTurns(nil) = %q, want empty", got)
	}
}
