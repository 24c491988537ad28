package playfield_test

import (
	"testing"

	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/tetromino"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridBorderInvariant(t *testing.T) {
	g := playfield.New(playfield.DefaultWidth, playfield.DefaultHeight)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Equal(t, 10+2*playfield.Margin, g.Cols())
	assert.Equal(t, 20+2*playfield.Margin, g.Rows())

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.IsVisible(x, y) {
				assert.Equal(t, playfield.Empty, g.At(x, y), "visible (%d,%d)", x, y)
			} else {
				assert.Equal(t, playfield.Border, g.At(x, y), "margin (%d,%d)", x, y)
			}
		}
	}
}

func TestNewGridTooSmallPanics(t *testing.T) {
	assert.Panics(t, func() { playfield.New(3, 20) })
	assert.Panics(t, func() { playfield.New(10, 2) })
}

func TestSetRejectsBorderWrites(t *testing.T) {
	g := playfield.New(4, 4)

	assert.Panics(t, func() { g.Set(0, 0, playfield.Empty) })
	assert.Panics(t, func() { g.SetVisible(0, 0, playfield.Border) })
	assert.Panics(t, func() { g.At(-1, 0) })
}

func TestVisibleCoordinates(t *testing.T) {
	g := playfield.New(4, 4)
	g.SetVisible(0, 0, playfield.Locked)

	assert.Equal(t, playfield.Locked, g.At(playfield.Margin, playfield.Margin))
	assert.Equal(t, playfield.Locked, g.VisibleAt(0, 0))

	rows := g.Visible()
	require.Len(t, rows, 4)
	require.Len(t, rows[0], 4)
	assert.Equal(t, playfield.Locked, rows[0][0])

	rows[0][0] = playfield.Empty
	assert.Equal(t, playfield.Locked, g.VisibleAt(0, 0), "Visible must return a copy")
}

func TestCloneIsIndependent(t *testing.T) {
	g := playfield.New(4, 4)
	c := g.Clone()
	c.SetVisible(1, 1, playfield.Locked)

	assert.Equal(t, playfield.Empty, g.VisibleAt(1, 1))
	assert.Equal(t, 1, c.Count(playfield.Locked))
}

func TestPaintEraseStamp(t *testing.T) {
	g := playfield.New(10, 20)
	p := tetromino.Piece{Kind: tetromino.T, X: g.Left() + 3, Y: g.Top()}

	g.Paint(p)
	assert.Equal(t, 4, g.Count(playfield.Falling))

	g.Erase(p)
	assert.Equal(t, 0, g.Count(playfield.Falling))
	assert.Equal(t, 0, g.Count(playfield.Locked))

	g.Stamp(p)
	assert.Equal(t, 4, g.Count(playfield.Locked))
}

func TestGridStringGolden(t *testing.T) {
	g := playfield.New(4, 4)
	g.SetVisible(0, 3, playfield.Locked)
	g.SetVisible(1, 3, playfield.Locked)
	g.SetVisible(3, 3, playfield.Locked)
	g.Paint(tetromino.Piece{Kind: tetromino.O, X: g.Left() + 1, Y: g.Top()})

	gold := goldie.New(t)
	gold.Assert(t, "small_board", []byte(g.String()))
}
