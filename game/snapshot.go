package game

import (
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/tetromino"
)

// Snapshot is a read-only copy of everything a renderer draws in one frame.
// Mutating it has no effect on the game.
type Snapshot struct {
	State BoardState
	Score int
	Level int
	Lines int

	// Cells is the visible playfield, Cells[row][col]. The active piece is
	// included as Falling.
	Cells [][]playfield.Cell

	// Active and Ghost are nil when no piece is in play.
	Active []tetromino.Point
	Ghost  []tetromino.Point

	Preview tetromino.Piece

	// Pending lists visible rows that are full and about to collapse.
	Pending []int
}

// Snapshot copies the current renderable state.
func (g *Game) Snapshot() Snapshot {
	status := g.status()
	s := Snapshot{
		State:   status.State,
		Score:   status.Score,
		Level:   status.Level,
		Lines:   status.Lines,
		Cells:   g.grid.Visible(),
		Preview: g.Preview(),
		Pending: g.PendingRows(),
	}
	if p, ok := g.Active(); ok {
		cells := p.Cells()
		s.Active = cells[:]
	}
	if p, ok := g.Ghost(); ok {
		cells := p.Cells()
		s.Ghost = cells[:]
	}
	return s
}
