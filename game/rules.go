package game

import (
	"fmt"
	"log/slog"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/tetromino"
)

// spawnPose places kind at the top of the visible area, horizontally
// centred for three-wide shapes. I spawns upright (rotation 1) flush
// against the top boundary; every other kind spawns in rotation 0.
func spawnPose(g *playfield.Grid, kind tetromino.Kind) tetromino.Piece {
	p := tetromino.Piece{
		Kind: kind,
		X:    g.Left() + (g.Width()-3)/2,
		Y:    g.Top(),
	}
	if kind == tetromino.I {
		p.Rotation = 1
	}
	return p
}

// previewPose is the next piece in its spawn rotation, anchored at the
// origin of a separate mini-grid.
func previewPose(kind tetromino.Kind) tetromino.Piece {
	p := tetromino.Piece{Kind: kind}
	if kind == tetromino.I {
		p.Rotation = 1
	}
	return p
}

// PieceRules is the state shared by every system that moves, locks or
// spawns pieces. Systems embed it and the scheduler binds its fields.
type PieceRules struct {
	Board      ecs.Singleton[Board]
	Status     ecs.Singleton[Status]
	Randomizer ecs.Singleton[Randomizer]
	Session    ecs.Singleton[Session]

	Active ecs.Query[activePiece]
	Queued ecs.Query[queuedPiece]
}

func (r *PieceRules) grid() *playfield.Grid {
	return r.Board.Get().Grid
}

// try commits candidate as p's pose if the playfield allows it.
func (r *PieceRules) try(p activePiece, candidate tetromino.Piece) bool {
	grid := r.grid()
	if !playfield.IsLegal(grid, candidate) {
		return false
	}
	grid.Erase(p.Pose.Piece)
	p.Pose.Piece = candidate
	grid.Paint(candidate)
	return true
}

func (r *PieceRules) move(p activePiece, dx, dy int) bool {
	if !r.try(p, p.Pose.Piece.Moved(dx, dy)) {
		return false
	}
	r.emit(Event{Kind: EventMoved, Piece: p.Pose.Piece})
	return true
}

// stepDown is one gravity step: descend, or lock when blocked.
func (r *PieceRules) stepDown(commands *ecs.Commands, p activePiece) {
	if r.try(p, p.Pose.Piece.Moved(0, 1)) {
		return
	}
	r.setState(r.lockAndResolve(commands, p))
}

func (r *PieceRules) hardDrop(commands *ecs.Commands, p activePiece) {
	distance := 0
	for r.try(p, p.Pose.Piece.Moved(0, 1)) {
		distance++
	}
	r.emit(Event{Kind: EventDropped, Piece: p.Pose.Piece, Distance: distance})
	r.setState(r.lockAndResolve(commands, p))
}

// spawn draws the next kind, advances the preview, and places the new
// active piece. The grid is painted at once; the entity lands when
// commands flush. It returns Over when the spawn pose is blocked.
func (r *PieceRules) spawn(commands *ecs.Commands) BoardState {
	grid := r.grid()
	b := r.Randomizer.Get().Bag
	p := spawnPose(grid, b.Next())

	next := previewPose(b.Peek())
	for q := range r.Queued.Values() {
		q.Pose.Piece = next
	}

	status := r.Status.Get()
	if !playfield.IsLegal(grid, p) {
		r.log().Info("game over", "piece", p.Kind.String(), "score", status.Score, "level", status.Level)
		r.emit(Event{Kind: EventGameOver, Piece: p, Score: status.Score, Level: status.Level})
		return Over
	}

	grid.Paint(p)
	commands.Spawn(Pose{Piece: p}, Controlled{})
	r.log().Debug("spawned", "piece", p.Kind.String(), "next", next.Kind.String())
	r.emit(Event{Kind: EventSpawned, Piece: p})
	return Moving
}

// lockAndResolve commits p and decides what follows: a Clearing phase when
// it completed rows, otherwise a fresh spawn. The caller has already
// established that p cannot descend.
func (r *PieceRules) lockAndResolve(commands *ecs.Commands, p activePiece) BoardState {
	grid := r.grid()
	piece := p.Pose.Piece
	grid.Stamp(piece)
	commands.Delete(p.EntityId)
	r.emit(Event{Kind: EventLocked, Piece: piece})

	top, bottom := piece.Extent()
	full := grid.FullRows(top, bottom)
	r.log().Debug("locked", "piece", piece.Kind.String(), "x", piece.X-grid.Left(), "y", piece.Y-grid.Top(), "full", len(full))

	if len(full) > 0 {
		r.Status.Get().Pending = full
		r.emit(Event{Kind: EventRowsFull, Rows: visibleRows(grid, full)})
		return Clearing
	}
	return r.spawn(commands)
}

// resolveClear scores the pending rows, collapses them, and spawns.
func (r *PieceRules) resolveClear(commands *ecs.Commands) BoardState {
	grid := r.grid()
	status := r.Status.Get()
	cleared := len(status.Pending)
	rows := visibleRows(grid, status.Pending)
	r.award(cleared)

	if removed := grid.Collapse(); removed != cleared {
		panic(fmt.Sprintf("game: collapsed %d rows, expected %d", removed, cleared))
	}
	status.Pending = nil

	r.log().Debug("rows cleared", "count", cleared, "score", status.Score, "lines", status.Lines, "level", status.Level)
	r.emit(Event{Kind: EventRowsCleared, Rows: rows, Score: status.Score, Level: status.Level})
	return r.spawn(commands)
}

// award adds the result of one clear batch. The score uses the level in
// effect before any level-up the batch causes.
func (r *PieceRules) award(cleared int) {
	status := r.Status.Get()
	status.Score += Score(cleared, status.Level)
	status.Lines += cleared

	for status.Lines >= LinesPerLevel {
		status.Lines -= LinesPerLevel
		status.Level++
		r.emit(Event{Kind: EventLevelUp, Level: status.Level})
		r.log().Debug("level up", "level", status.Level)
	}
}

func (r *PieceRules) togglePause() {
	switch state := r.Status.Get().State; state {
	case Moving:
		r.setState(Paused)
		r.emit(Event{Kind: EventPaused})
	case Paused:
		r.setState(Moving)
		r.emit(Event{Kind: EventResumed})
	default:
		r.log().Debug("pause toggle ignored", "state", state.String())
	}
}

func (r *PieceRules) setState(s BoardState) {
	status := r.Status.Get()
	if s != status.State {
		r.log().Debug("state", "from", status.State.String(), "to", s.String())
	}
	status.State = s
}

func (r *PieceRules) emit(e Event) {
	session := r.Session.Get()
	e.Tick = session.Ticks
	session.Events.push(e)
}

func (r *PieceRules) log() *slog.Logger {
	return r.Session.Get().Log
}

func visibleRows(grid *playfield.Grid, rows []int) []int {
	out := make([]int, len(rows))
	for i, y := range rows {
		out[i] = y - grid.Top()
	}
	return out
}
