package game

import (
	"log/slog"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/tetromino"
)

// Singletons.

// Board holds the playfield. Cells stay in one dense grid rather than one
// entity per block so a legality check is an array lookup per cell.
type Board struct {
	Grid *playfield.Grid
}

// Status is the scoreboard and the state machine.
type Status struct {
	State BoardState
	Score int
	Level int
	Lines int
	// Pending holds allocated row indices that are full and wait for the
	// next tick to collapse.
	Pending []int
	Quit    bool
}

// TickInfo is written before each tick pass. State is the board state the
// tick began in; systems gate on it so that one tick never both clears and
// drops.
type TickInfo struct {
	Tick  uint64
	State BoardState
}

type Randomizer struct {
	Bag *bag.Bag
}

// Session carries what every system reports through.
type Session struct {
	Log    *slog.Logger
	Events *eventBuffer
	Ticks  uint64
}

// Entity components.

// Pose places a piece, in allocated grid coordinates for the active piece
// and in mini-grid coordinates for the preview.
type Pose struct {
	Piece tetromino.Piece
}

// Controlled marks the active piece.
type Controlled struct{}

// Queued marks the preview piece.
type Queued struct{}

// Command is one player input waiting for the input pipeline.
type Command struct {
	Input Input
}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Pose](registry)
	ecs.RegisterComponent[Controlled](registry)
	ecs.RegisterComponent[Queued](registry)
	ecs.RegisterComponent[Command](registry)
	return registry
}

type activePiece = struct {
	ecs.EntityId
	*Pose
	*Controlled
}

type queuedPiece = struct {
	*Pose
	*Queued
}

type pendingCommand = struct {
	ecs.EntityId
	*Command
}
