// Package tetromino holds the static piece geometry: the seven piece kinds,
// their four rotation poses, and the Piece type that places a pose on a grid.
package tetromino

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	J
	L
	S
	Z
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// RotationCount is the number of rotation poses per kind.
const RotationCount = 4

// Kinds lists every piece kind in declaration order.
var Kinds = [KindCount]Kind{I, O, T, J, L, S, Z}

var kindNames = [KindCount]string{"I", "O", "T", "J", "L", "S", "Z"}

func (k Kind) String() string {
	if int(k) >= KindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return int(k) < KindCount
}

// Rotation is a pose index in [0, 4).
type Rotation uint8

// Next returns the clockwise successor, wrapping 3 back to 0.
func (r Rotation) Next() Rotation {
	return (r + 1) % RotationCount
}

// Prev returns the counter-clockwise predecessor, wrapping 0 back to 3.
func (r Rotation) Prev() Rotation {
	return (r + RotationCount - 1) % RotationCount
}

// Offset is a cell position relative to a piece anchor. Both components are
// always non-negative.
type Offset struct {
	DX, DY int
}

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// shapes[kind][rotation] lists the occupied offsets of every pose. The poses
// are literal data, not derived by rotating a matrix: several kinds shift
// their bounding box between rotations and play depends on those exact cells.
var shapes = [KindCount][RotationCount][4]Offset{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// Offsets returns the four occupied cells of kind k in rotation r, relative
// to the piece anchor. It panics on an unknown kind or rotation.
func Offsets(k Kind, r Rotation) [4]Offset {
	if !k.Valid() {
		panic(fmt.Sprintf("tetromino: unknown kind %d", uint8(k)))
	}
	if r >= RotationCount {
		panic(fmt.Sprintf("tetromino: rotation %d out of range", r))
	}
	return shapes[k][r]
}
