// Package playfield implements the cell store for the board and the pure
// legality checks that decide whether a piece pose fits on it.
//
// The grid is allocated with a Margin of cells on every side of the visible
// area. Every allocated cell outside the visible area is Border, so shape
// offsets (which are never negative) can be added to an anchor sitting in
// the margin without any special casing at the edges.
package playfield

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/tetromino"
)

// Margin is the number of non-visible cells allocated on each side of the
// visible area.
const Margin = 2

// Default visible dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is the content of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Border
	Locked
	Falling
)

var cellNames = [...]string{"Empty", "Border", "Locked", "Falling"}

func (c Cell) String() string {
	if int(c) >= len(cellNames) {
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
	return cellNames[c]
}

// glyph is the single character used by Grid.String.
func (c Cell) glyph() byte {
	switch c {
	case Border:
		return '#'
	case Locked:
		return 'X'
	case Falling:
		return '@'
	default:
		return '.'
	}
}

// Grid is a fixed-size rectangle of cells. Coordinates passed to Grid
// methods are allocated coordinates (the margin included) unless the method
// name says otherwise; visible column 0 is allocated column Margin.
type Grid struct {
	width  int
	height int
	stride int
	cells  []Cell
}

// New allocates a grid whose visible area is width x height, with every
// visible cell Empty and every surrounding cell Border. It panics if the
// visible area cannot hold a piece.
func New(width, height int) *Grid {
	if width < 4 || height < 4 {
		panic(fmt.Sprintf("playfield: visible area %dx%d too small", width, height))
	}

	g := &Grid{
		width:  width,
		height: height,
		stride: width + 2*Margin,
		cells:  make([]Cell, (width+2*Margin)*(height+2*Margin)),
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if !g.IsVisible(x, y) {
				g.cells[g.index(x, y)] = Border
			}
		}
	}
	return g
}

// Width returns the number of visible columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of visible rows.
func (g *Grid) Height() int { return g.height }

// Cols returns the number of allocated columns.
func (g *Grid) Cols() int { return g.stride }

// Rows returns the number of allocated rows.
func (g *Grid) Rows() int { return g.height + 2*Margin }

// Left is the allocated column of visible column 0.
func (g *Grid) Left() int { return Margin }

// Top is the allocated row of visible row 0.
func (g *Grid) Top() int { return Margin }

// Bottom is the allocated row of the last visible row.
func (g *Grid) Bottom() int { return Margin + g.height - 1 }

// InBounds reports whether (x, y) addresses an allocated cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.stride && y < g.Rows()
}

// IsVisible reports whether allocated coordinate (x, y) lies in the play
// area.
func (g *Grid) IsVisible(x, y int) bool {
	return x >= Margin && x < Margin+g.width && y >= Margin && y < Margin+g.height
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("playfield: cell (%d,%d) outside %dx%d grid", x, y, g.stride, g.Rows()))
	}
	return y*g.stride + x
}

// At returns the cell at allocated coordinate (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set writes a visible cell. Border cells are placed once by New and may not
// be overwritten, and Border may not be written into the play area.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.IsVisible(x, y) {
		panic(fmt.Sprintf("playfield: write to non-visible cell (%d,%d)", x, y))
	}
	if c == Border {
		panic("playfield: border cells are fixed at construction")
	}
	g.cells[g.index(x, y)] = c
}

// VisibleAt returns the cell at visible coordinate (col, row).
func (g *Grid) VisibleAt(col, row int) Cell {
	return g.At(col+Margin, row+Margin)
}

// SetVisible writes the cell at visible coordinate (col, row).
func (g *Grid) SetVisible(col, row int, c Cell) {
	g.Set(col+Margin, row+Margin, c)
}

// Count returns how many visible cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := g.Top(); y <= g.Bottom(); y++ {
		for x := g.Left(); x < g.Left()+g.width; x++ {
			if g.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Cell, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// Visible copies the play area row by row; Visible()[row][col].
func (g *Grid) Visible() [][]Cell {
	rows := make([][]Cell, g.height)
	for row := range rows {
		start := g.index(Margin, row+Margin)
		rows[row] = make([]Cell, g.width)
		copy(rows[row], g.cells[start:start+g.width])
	}
	return rows
}

// String renders the visible area and its border ring, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := Margin - 1; y <= g.Bottom()+1; y++ {
		for x := Margin - 1; x <= Margin+g.width; x++ {
			sb.WriteByte(g.At(x, y).glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fill writes c under every cell of p without any legality check.
func (g *Grid) fill(p tetromino.Piece, c Cell) {
	for _, pt := range p.Cells() {
		g.Set(pt.X, pt.Y, c)
	}
}

// Paint marks the footprint of p as Falling.
func (g *Grid) Paint(p tetromino.Piece) { g.fill(p, Falling) }

// Erase clears the footprint of p back to Empty.
func (g *Grid) Erase(p tetromino.Piece) { g.fill(p, Empty) }

// Stamp commits the footprint of p as Locked.
func (g *Grid) Stamp(p tetromino.Piece) { g.fill(p, Locked) }
