package img2dice

import "fmt"

// Face is the value shown on the top of a die, 1 through 6.
type Face int

// Valid reports whether f is a face of a six-sided die.
func (f Face) Valid() bool {
	return f >= 1 && f <= 6
}

// Faces lists every face in enumeration order.
var Faces = [6]Face{1, 2, 3, 4, 5, 6}

// Rotation is the orientation of a die in degrees. Only 0 and 90 are
// distinguishable; faces 2, 3 and 6 look different under a quarter turn,
// the others do not.
type Rotation int

const (
	Rotation0  Rotation = 0
	Rotation90 Rotation = 90
)

// Rotations lists both orientations in enumeration order.
var Rotations = [2]Rotation{Rotation0, Rotation90}

// Valid reports whether r is one of the two supported orientations.
func (r Rotation) Valid() bool {
	return r == Rotation0 || r == Rotation90
}

func (r Rotation) index() int {
	if r == Rotation90 {
		return 1
	}
	return 0
}

// Cell is a position in the 3x3 logical dot grid of a die face.
type Cell struct {
	Row, Col int
}

// patterns holds the dot cells of every face, indexed by
// [face-1][rotation index].
var patterns = [6][2][]Cell{
	{ // 1
		{{1, 1}},
		{{1, 1}},
	},
	{ // 2: diagonal, flipped by a quarter turn
		{{0, 0}, {2, 2}},
		{{0, 2}, {2, 0}},
	},
	{ // 3: diagonal through the centre
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	},
	{ // 4: corners
		{{0, 0}, {2, 0}, {0, 2}, {2, 2}},
		{{0, 0}, {2, 0}, {0, 2}, {2, 2}},
	},
	{ // 5: corners and centre
		{{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}},
		{{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}},
	},
	{ // 6: two columns, or two rows when turned
		{{0, 0}, {1, 0}, {2, 0}, {0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {0, 1}, {0, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
}

// Pattern returns the grid cells carrying a dot for the given face and
// rotation. The returned slice is shared and must not be modified.
// It panics on a face outside 1..6 or an unsupported rotation.
func Pattern(face Face, rotation Rotation) []Cell {
	if !face.Valid() {
		panic(fmt.Sprintf("img2dice: invalid face %d", face))
	}
	if !rotation.Valid() {
		panic(fmt.Sprintf("img2dice: invalid rotation %d", rotation))
	}
	return patterns[face-1][rotation.index()]
}

// RotationMatters reports whether the two rotations of face render
// differently.
func RotationMatters(face Face) bool {
	a, b := Pattern(face, Rotation0), Pattern(face, Rotation90)
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
