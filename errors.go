package cube

import (
	"errors"

	"github.com/SeamusWaldron/cube/internal/grid"
)

// Sentinel errors for the cube package.
var (
	// Construction errors
	ErrInvalidSize  = errors.New("cube: size must be a whole number between 2 and 1024")
	ErrInvalidState = errors.New("cube: invalid cube state")

	// Parsing errors
	ErrInvalidNotation = errors.New("cube: invalid turn notation")

	// Engine errors. Well-formed turns never produce this; seeing it
	// means a descriptor was built by hand with a bad rotation.
	ErrInvalidRotation = grid.ErrInvalidRotation
)
