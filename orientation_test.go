package cube

import "testing"

func TestOrientation(t *testing.T) {
	tests := []struct {
		turns string
		want  Orientation
	}{
		{"", Orientation{Up: FaceU, Front: FaceF}},
		{"X", Orientation{Up: FaceF, Front: FaceD}},
		{"X-", Orientation{Up: FaceB, Front: FaceU}},
		{"X2", Orientation{Up: FaceD, Front: FaceB}},
		{"Y", Orientation{Up: FaceU, Front: FaceR}},
		{"Z", Orientation{Up: FaceL, Front: FaceF}},
		{"X Y", Orientation{Up: FaceF, Front: FaceR}},
		{"Y X", Orientation{Up: FaceR, Front: FaceD}},
		{"Z Z Z Z", Orientation{Up: FaceU, Front: FaceF}},
		{"R U 2F Lw", Orientation{Up: FaceU, Front: FaceF}},
	}

	for _, tt := range tests {
		t.Run(tt.turns, func(t *testing.T) {
			c, _ := New(4)
			if err := c.Turn(tt.turns); err != nil {
				t.Fatalf("Turn: %v", err)
			}
			if got := c.Orientation(); got != tt.want {
				t.Errorf("Orientation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The face reported as up must be the colour now showing on U.
func TestOrientationMatchesStickers(t *testing.T) {
	c, _ := New(3, WithSeed(11))
	for i := 0; i < 200; i++ {
		turn := []Turn{X, Y, Z}[i%3]
		if i%2 == 1 {
			turn = turn.Inverse()
		}
		if i%5 == 0 {
			turn.Rotation = Double
		}
		if err := c.Apply(turn); err != nil {
			t.Fatalf("Apply: %v", err)
		}

		o := c.Orientation()
		state := c.State()
		if Face(state[FaceU][0].Color) != o.Up {
			t.Fatalf("after %d rotations U shows %s, orientation says %s", i+1, Face(state[FaceU][0].Color), o.Up)
		}
		if Face(state[FaceF][0].Color) != o.Front {
			t.Fatalf("after %d rotations F shows %s, orientation says %s", i+1, Face(state[FaceF][0].Color), o.Front)
		}
	}

	c.Reset()
	if got := c.Orientation(); got != (Orientation{Up: FaceU, Front: FaceF}) {
		t.Errorf("Reset orientation = %+v", got)
	}
}

func TestRotateVecQuarterTurns(t *testing.T) {
	tests := []struct {
		axis Target
		from Face
		want Face
	}{
		{TargetX, FaceF, FaceU},
		{TargetX, FaceU, FaceB},
		{TargetY, FaceF, FaceL},
		{TargetY, FaceU, FaceU},
		{TargetZ, FaceU, FaceR},
		{TargetZ, FaceF, FaceF},
	}

	for _, tt := range tests {
		got := rotateVec(axisQuarters[tt.axis], faceNormals[tt.from])
		if got != faceNormals[tt.want] {
			t.Errorf("%s moves the %s normal to %+v, want %s", tt.axis, tt.from, got, tt.want)
		}
	}
}

func TestRotateBodyStaysUnit(t *testing.T) {
	q := identityRotation
	for i := 0; i < 1000; i++ {
		q = rotateBody(q, Turn{Target: []Target{TargetX, TargetY, TargetZ}[i%3], Depth: 1, Rotation: CW})
	}
	if n := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z; n < 0.999999 || n > 1.000001 {
		t.Errorf("norm² after 1000 quarter turns = %v, want 1", n)
	}
}
