package cube

import (
	"github.com/SeamusWaldron/cube/internal/grid"
)

// faceSource says where a face's stickers come from during one clockwise
// quarter of a whole-cube rotation, and how they are turned on the way.
// A rotation of 0 copies the face unchanged.
type faceSource struct {
	from     Face
	rotation int
}

// axisTables maps each axis to its clockwise quarter-turn relabeling,
// indexed by destination face. The two faces on the axis spin in place.
var axisTables = map[Target][6]faceSource{
	TargetX: {
		FaceU: {FaceF, 0},
		FaceL: {FaceL, -1},
		FaceF: {FaceD, 0},
		FaceR: {FaceR, 1},
		FaceB: {FaceU, 2},
		FaceD: {FaceB, 2},
	},
	TargetY: {
		FaceU: {FaceU, 1},
		FaceL: {FaceF, 0},
		FaceF: {FaceR, 0},
		FaceR: {FaceB, 0},
		FaceB: {FaceL, 0},
		FaceD: {FaceD, -1},
	},
	TargetZ: {
		FaceU: {FaceL, 1},
		FaceL: {FaceD, 1},
		FaceF: {FaceF, 1},
		FaceR: {FaceU, 1},
		FaceB: {FaceB, -1},
		FaceD: {FaceR, 1},
	},
}

// strip selects one row or column of a face. Layer i is counted from the
// near edge (index i-1) or from the far edge (index size-i).
type strip struct {
	face Face
	col  bool
	far  bool
}

func (s strip) index(size, layer int) int {
	if s.far {
		return size - layer
	}
	return layer - 1
}

func (s strip) read(state State, size, layer int) []Sticker {
	if s.col {
		return grid.Col(state[s.face], size, s.index(size, layer))
	}
	return grid.Row(state[s.face], size, s.index(size, layer))
}

func (s strip) write(state State, size, layer int, stickers []Sticker) {
	if s.col {
		grid.SetCol(state[s.face], size, s.index(size, layer), stickers)
		return
	}
	grid.SetRow(state[s.face], size, s.index(size, layer), stickers)
}

// sliceTable describes how one layer parallel to a face travels during a
// clockwise quarter turn. strips[k] moves onto strips[k+1] (wrapping), and
// is reversed on the way when reverse[k] is set.
type sliceTable struct {
	strips  [4]strip
	reverse [4]bool
}

var (
	rowNear = func(f Face) strip { return strip{face: f} }
	rowFar  = func(f Face) strip { return strip{face: f, far: true} }
	colNear = func(f Face) strip { return strip{face: f, col: true} }
	colFar  = func(f Face) strip { return strip{face: f, col: true, far: true} }
)

var sliceTables = [6]sliceTable{
	FaceU: {
		strips:  [4]strip{rowNear(FaceF), rowNear(FaceL), rowNear(FaceB), rowNear(FaceR)},
		reverse: [4]bool{false, false, false, false},
	},
	FaceL: {
		strips:  [4]strip{colNear(FaceU), colNear(FaceF), colNear(FaceD), colFar(FaceB)},
		reverse: [4]bool{false, false, true, true},
	},
	FaceF: {
		strips:  [4]strip{rowFar(FaceU), colNear(FaceR), rowNear(FaceD), colFar(FaceL)},
		reverse: [4]bool{false, true, false, true},
	},
	FaceR: {
		strips:  [4]strip{colFar(FaceF), colFar(FaceU), colNear(FaceB), colFar(FaceD)},
		reverse: [4]bool{false, true, true, false},
	},
	FaceB: {
		strips:  [4]strip{rowNear(FaceU), colNear(FaceL), rowFar(FaceD), colFar(FaceR)},
		reverse: [4]bool{true, false, true, false},
	},
	FaceD: {
		strips:  [4]strip{rowFar(FaceL), rowFar(FaceF), rowFar(FaceR), rowFar(FaceB)},
		reverse: [4]bool{false, false, false, false},
	},
}

// applyTurn returns the state after t. The input state is never modified,
// so an error leaves the caller's cube untouched.
func applyTurn(state State, size int, t Turn) (State, error) {
	quarters, err := t.Rotation.quarters()
	if err != nil {
		return State{}, err
	}

	if t.Target.IsAxis() {
		return turnAxis(state, axisTables[t.Target], quarters)
	}

	face, ok := t.Target.Face()
	if !ok {
		return State{}, ErrInvalidNotation
	}
	return turnFace(state, size, face, t, quarters)
}

// turnAxis relabels all six faces once per clockwise quarter.
func turnAxis(state State, table [6]faceSource, quarters int) (State, error) {
	current := state
	for q := 0; q < quarters; q++ {
		var next State
		for _, dst := range Faces {
			src := table[dst]
			if src.rotation == 0 {
				next[dst] = append([]Sticker(nil), current[src.from]...)
				continue
			}
			rotated, err := grid.Rotate(current[src.from], src.rotation)
			if err != nil {
				return State{}, err
			}
			next[dst] = rotated
		}
		current = next
	}
	return current.clone(), nil
}

// turnFace spins the named face (outer turns), spins the opposite face
// (turns that reach through the cube), then cycles every affected layer.
func turnFace(state State, size int, face Face, t Turn, quarters int) (State, error) {
	next := state.clone()

	if t.Depth == 1 || t.Wide {
		rotated, err := grid.Rotate(next[face], int(t.Rotation))
		if err != nil {
			return State{}, err
		}
		next[face] = rotated
	}

	if t.Depth >= size {
		// Seen from its own side the opposite face turns the other way.
		inner := -int(t.Rotation)
		if t.Rotation == Double {
			inner = int(Double)
		}
		opposite := face.Opposite()
		rotated, err := grid.Rotate(next[opposite], inner)
		if err != nil {
			return State{}, err
		}
		next[opposite] = rotated
	}

	depth := min(t.Depth, size)
	last := depth
	if t.Wide {
		last = 1
	}

	table := sliceTables[face]
	for layer := depth; layer >= last; layer-- {
		cycleLayer(next, size, layer, table, quarters)
	}

	return next, nil
}

// cycleLayer moves the four strips of one layer around the turning face.
func cycleLayer(state State, size, layer int, table sliceTable, quarters int) {
	var strips [4][]Sticker
	for k, s := range table.strips {
		strips[k] = s.read(state, size, layer)
	}

	for q := 0; q < quarters; q++ {
		var moved [4][]Sticker
		for k := range strips {
			dst := (k + 1) % 4
			if table.reverse[k] {
				moved[dst] = grid.Reverse(strips[k])
			} else {
				moved[dst] = strips[k]
			}
		}
		strips = moved
	}

	for k, s := range table.strips {
		s.write(state, size, layer, strips[k])
	}
}
