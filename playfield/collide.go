package playfield

import "github.com/plus3/blockfall/tetromino"

// passable reports whether a piece may occupy a cell. Falling cells belong to
// the single active piece, so they never block that piece's own next pose.
func passable(c Cell) bool {
	return c == Empty || c == Falling
}

// IsLegal reports whether every cell of p is inside the grid and free. It
// never mutates the grid.
func IsLegal(g *Grid, p tetromino.Piece) bool {
	for _, pt := range p.Cells() {
		if !g.InBounds(pt.X, pt.Y) {
			return false
		}
		if !passable(g.At(pt.X, pt.Y)) {
			return false
		}
	}
	return true
}

// DropDistance returns how many rows p can descend before it would collide.
// An illegal starting pose yields 0.
func DropDistance(g *Grid, p tetromino.Piece) int {
	if !IsLegal(g, p) {
		return 0
	}
	n := 0
	for IsLegal(g, p.Moved(0, n+1)) {
		n++
	}
	return n
}
