package playfield_test

import (
	"testing"

	"github.com/plus3/blockfall/playfield"
	"github.com/stretchr/testify/assert"
)

func fillRow(g *playfield.Grid, row int, except ...int) {
	skip := make(map[int]bool)
	for _, col := range except {
		skip[col] = true
	}
	for col := 0; col < g.Width(); col++ {
		if !skip[col] {
			g.SetVisible(col, row, playfield.Locked)
		}
	}
}

func TestFullRows(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 19)
	fillRow(g, 18, 4)
	fillRow(g, 17)

	full := g.FullRows(g.Top(), g.Bottom())
	assert.Equal(t, []int{g.Top() + 17, g.Top() + 19}, full)

	assert.Empty(t, g.FullRows(g.Top(), g.Top()+16))
	assert.Equal(t, []int{g.Top() + 19}, g.FullRows(g.Top()+18, g.Rows()+5), "range is clipped to the visible area")
}

func TestFullRowsIgnoresFallingCells(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 19, 0)
	g.SetVisible(0, 19, playfield.Falling)

	assert.Empty(t, g.FullRows(g.Top(), g.Bottom()))
}

func TestCollapseWithoutFullRowsIsNoop(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 19, 3)
	fillRow(g, 18, 0, 9)
	g.SetVisible(5, 10, playfield.Locked)
	before := g.String()

	assert.Equal(t, 0, g.Collapse())
	assert.Equal(t, before, g.String())
}

func TestCollapseSingleRow(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 19, 2)
	fillRow(g, 18)
	g.SetVisible(7, 17, playfield.Locked)
	g.SetVisible(1, 5, playfield.Locked)
	lockedBefore := g.Count(playfield.Locked)

	removed := g.Collapse()

	assert.Equal(t, 1, removed)
	assert.Equal(t, lockedBefore-g.Width(), g.Count(playfield.Locked))

	// Row 19 sat below the cleared row and is untouched.
	assert.Equal(t, playfield.Empty, g.VisibleAt(2, 19))
	assert.Equal(t, playfield.Locked, g.VisibleAt(3, 19))

	// Everything above shifted down by exactly one.
	assert.Equal(t, playfield.Locked, g.VisibleAt(7, 18))
	assert.Equal(t, playfield.Empty, g.VisibleAt(7, 17))
	assert.Equal(t, playfield.Locked, g.VisibleAt(1, 6))
	assert.Equal(t, playfield.Empty, g.VisibleAt(1, 5))
}

func TestCollapseInterleavedRows(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 19)
	fillRow(g, 18, 0)
	fillRow(g, 17)
	fillRow(g, 16, 9)
	fillRow(g, 15)
	fillRow(g, 14)

	removed := g.Collapse()

	assert.Equal(t, 4, removed)
	assert.Equal(t, playfield.Empty, g.VisibleAt(0, 19), "row with a gap at col 0 lands on the floor")
	assert.Equal(t, playfield.Locked, g.VisibleAt(9, 19))
	assert.Equal(t, playfield.Empty, g.VisibleAt(9, 18), "row with a gap at col 9 stacks on top")
	assert.Equal(t, playfield.Locked, g.VisibleAt(0, 18))
	assert.Equal(t, 18, g.Count(playfield.Locked))

	for row := 0; row < 18; row++ {
		for col := 0; col < g.Width(); col++ {
			assert.Equal(t, playfield.Empty, g.VisibleAt(col, row))
		}
	}
}

func TestCollapseTopRow(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 0)

	assert.Equal(t, 1, g.Collapse())
	assert.Equal(t, 0, g.Count(playfield.Locked))
}

func TestCollapseKeepsBorder(t *testing.T) {
	g := playfield.New(10, 20)
	fillRow(g, 19)
	fillRow(g, 18)
	g.Collapse()

	for y := 0; y < g.Rows(); y++ {
		assert.Equal(t, playfield.Border, g.At(g.Left()-1, y))
		assert.Equal(t, playfield.Border, g.At(g.Left()+g.Width(), y))
	}
	for x := 0; x < g.Cols(); x++ {
		assert.Equal(t, playfield.Border, g.At(x, g.Bottom()+1))
	}
}
