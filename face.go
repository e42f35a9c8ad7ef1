package cube

// Face identifies one of the six sticker grids. The order U, L, F, R, B, D
// is also the order faces appear in JSON output and sticker iteration.
type Face int

const (
	FaceU Face = 0 // Up
	FaceL Face = 1 // Left
	FaceF Face = 2 // Front
	FaceR Face = 3 // Right
	FaceB Face = 4 // Back
	FaceD Face = 5 // Down
)

// Faces lists every face in canonical order.
var Faces = [6]Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceL:
		return "L"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Target returns the notation target that turns this face.
func (f Face) Target() Target {
	return Target(f.String())
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	return oppositeFaces[f]
}

var oppositeFaces = [6]Face{
	FaceU: FaceD,
	FaceL: FaceR,
	FaceF: FaceB,
	FaceR: FaceL,
	FaceB: FaceF,
	FaceD: FaceU,
}

// intersectingFaces lists, for each face, the faces whose layers cross it.
// Turning one of these after the key face can never cancel the key turn.
var intersectingFaces = [6][4]Face{
	FaceU: {FaceL, FaceF, FaceR, FaceB},
	FaceL: {FaceU, FaceF, FaceD, FaceB},
	FaceF: {FaceL, FaceU, FaceR, FaceD},
	FaceR: {FaceU, FaceB, FaceD, FaceF},
	FaceB: {FaceU, FaceL, FaceD, FaceR},
	FaceD: {FaceF, FaceR, FaceB, FaceL},
}

// Color is a sticker value. A reset cube carries colour i on face i.
type Color int

const (
	White  Color = 0 // Up face when solved
	Orange Color = 1 // Left face when solved
	Green  Color = 2 // Front face when solved
	Red    Color = 3 // Right face when solved
	Blue   Color = 4 // Back face when solved
	Yellow Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Sticker is a single facelet. Index is the sticker's position within its
// face at the last reset, which lets callers follow a sticker across turns.
type Sticker struct {
	Index int   `json:"index"`
	Color Color `json:"value"`
}
