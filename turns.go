package cube

// Predefined outer-layer turns for convenience.
//
// Example:
//
//	c.Apply(cube.R, cube.U, cube.RPrime, cube.UPrime)
var (
	// Right face turns
	R      = Turn{Target: TargetR, Depth: 1, Rotation: CW}     // Right clockwise
	RPrime = Turn{Target: TargetR, Depth: 1, Rotation: CCW}    // Right counter-clockwise
	R2     = Turn{Target: TargetR, Depth: 1, Rotation: Double} // Right 180

	// Left face turns
	L      = Turn{Target: TargetL, Depth: 1, Rotation: CW}
	LPrime = Turn{Target: TargetL, Depth: 1, Rotation: CCW}
	L2     = Turn{Target: TargetL, Depth: 1, Rotation: Double}

	// Up face turns
	U      = Turn{Target: TargetU, Depth: 1, Rotation: CW}
	UPrime = Turn{Target: TargetU, Depth: 1, Rotation: CCW}
	U2     = Turn{Target: TargetU, Depth: 1, Rotation: Double}

	// Down face turns
	D      = Turn{Target: TargetD, Depth: 1, Rotation: CW}
	DPrime = Turn{Target: TargetD, Depth: 1, Rotation: CCW}
	D2     = Turn{Target: TargetD, Depth: 1, Rotation: Double}

	// Front face turns
	F      = Turn{Target: TargetF, Depth: 1, Rotation: CW}
	FPrime = Turn{Target: TargetF, Depth: 1, Rotation: CCW}
	F2     = Turn{Target: TargetF, Depth: 1, Rotation: Double}

	// Back face turns
	B      = Turn{Target: TargetB, Depth: 1, Rotation: CW}
	BPrime = Turn{Target: TargetB, Depth: 1, Rotation: CCW}
	B2     = Turn{Target: TargetB, Depth: 1, Rotation: Double}

	// Whole-cube rotations
	X = Turn{Target: TargetX, Depth: 1, Rotation: CW}
	Y = Turn{Target: TargetY, Depth: 1, Rotation: CW}
	Z = Turn{Target: TargetZ, Depth: 1, Rotation: CW}
)

// SexyMove is R U R' U'. Six repetitions return any cube to where it started.
var SexyMove = []Turn{R, U, RPrime, UPrime}
