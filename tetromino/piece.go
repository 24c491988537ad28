package tetromino

// Piece is a kind placed at a pose: a rotation index plus the anchor the
// shape offsets are added to.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// Cells returns the absolute coordinates covered by the piece.
func (p Piece) Cells() [4]Point {
	var cells [4]Point
	for i, off := range Offsets(p.Kind, p.Rotation) {
		cells[i] = Point{X: p.X + off.DX, Y: p.Y + off.DY}
	}
	return cells
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned one step clockwise in place. No kick
// offsets are tried.
func (p Piece) Rotated() Piece {
	p.Rotation = p.Rotation.Next()
	return p
}

// Extent returns the topmost and bottommost rows the piece occupies.
func (p Piece) Extent() (top, bottom int) {
	cells := p.Cells()
	top, bottom = cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		top = min(top, c.Y)
		bottom = max(bottom, c.Y)
	}
	return top, bottom
}
