// Package cube models N×N×N twisty puzzle cubes and applies turns to them
// in standard cube notation.
//
// # Features
//
//   - Any size from 2×2 up to MaxSize
//   - Face, inner slice, wide and whole-cube turns
//   - Notation parsing and canonical printing
//   - Non-cancelling random scrambles
//   - Solved check, turn history and orientation tracking
//
// # Quick Start
//
//	c, err := cube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply turns from notation
//	if err := c.Turn("R U R- U-"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or using predefined turns
//	c.Apply(cube.U, cube.R, cube.UPrime, cube.RPrime)
//
//	fmt.Println("Solved:", c.IsSolved())
//
// # Notation
//
// A turn is written [depth]TARGET[w][-|'|2]:
//
//	R     // right face clockwise
//	R-    // counter-clockwise (R' is accepted too)
//	R2    // half turn
//	2R    // second layer from the right only
//	Rw    // right two layers together
//	3Rw2  // right three layers, half turn
//	X     // whole cube, like R (Y like U, Z like F)
//
// Targets are case-insensitive. Turns are separated by spaces or commas.
//
// # Stickers
//
// A reset cube carries colour i on face i, in the face order U, L, F, R,
// B, D. Every sticker also remembers its starting position, which can be
// included in JSON output with WithLabeledStickers.
//
// # Scrambles
//
// Randomness is injected, so scrambles are reproducible in tests:
//
//	c, _ := cube.New(4, cube.WithSeed(42))
//	fmt.Println(c.GenerateScrambleString(20))
package cube
