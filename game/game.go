// Package game is the rule engine: it owns the playfield, the active and
// preview pieces, the randomizer and the score, and advances them in
// response to gravity ticks and discrete player inputs.
//
// A Game is single-writer. The shell calls OnTick and OnInput from one
// goroutine, never concurrently, and reads state through the accessors or a
// Snapshot between calls.
package game

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/tetromino"
)

// Game is one running session. Its state lives in an ecs.Storage: the
// board, scoreboard and randomizer as singletons, the active and preview
// pieces and queued inputs as entities. Two pipelines act on it, one per
// gravity tick and one per input.
type Game struct {
	id  uuid.UUID
	cfg Config
	log *slog.Logger

	storage *ecs.Storage
	grid    *playfield.Grid
	bag     *bag.Bag
	rules   PieceRules
	tick    *ecs.Singleton[TickInfo]

	ticks     *ecs.Scheduler
	inputs    *ecs.Scheduler
	events    eventBuffer
	listeners []Listener
}

// Option customizes New.
type Option func(*Game)

// WithLogger sets the logger. The game attaches its session id.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// WithSource replaces the randomizer's shuffle source; Config.Seed is then
// ignored.
func WithSource(src bag.Source) Option {
	return func(g *Game) {
		g.bag = bag.New(src)
	}
}

// New validates cfg, builds an empty playfield, shuffles the first bag and
// spawns the first active and preview pieces.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		id:   uuid.New(),
		cfg:  cfg,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		grid: playfield.New(cfg.Width, cfg.Height),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bag == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		g.bag = bag.NewSeeded(seed)
	}
	g.log = g.log.With("game", g.id.String())

	g.storage = ecs.NewStorage(newRegistry())
	ecs.NewSingleton(g.storage, Board{Grid: g.grid})
	ecs.NewSingleton(g.storage, Status{State: Moving, Level: cfg.StartLevel})
	ecs.NewSingleton(g.storage, Randomizer{Bag: g.bag})
	ecs.NewSingleton(g.storage, Session{Log: g.log, Events: &g.events})
	g.tick = ecs.NewSingleton(g.storage, TickInfo{})
	g.storage.Spawn(Pose{}, Queued{})
	ecs.Bind(&g.rules, g.storage)

	g.ticks = ecs.NewScheduler(g.storage)
	g.ticks.Register(&ClearSystem{})
	g.ticks.Register(&GravitySystem{})

	g.inputs = ecs.NewScheduler(g.storage)
	g.inputs.Register(&InputSystem{})

	g.log.Debug("new game", "width", cfg.Width, "height", cfg.Height, "level", cfg.StartLevel)
	var commands ecs.Commands
	g.rules.setState(g.rules.spawn(&commands))
	commands.Flush(g.storage)
	g.flush()
	return g, nil
}

// Subscribe registers l to receive events from subsequent calls.
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

// OnTick advances gravity by n discrete steps.
func (g *Game) OnTick(n uint32) {
	session := g.rules.Session.Get()
	for i := uint32(0); i < n; i++ {
		*g.tick.Get() = TickInfo{Tick: session.Ticks, State: g.status().State}
		g.ticks.Once(session.Ticks)
		session.Ticks++
	}
	g.flush()
}

// OnInput applies one player input. Inputs that the current state does not
// accept, and moves the playfield does not allow, are silently dropped.
func (g *Game) OnInput(in Input) {
	g.storage.Spawn(Command{Input: in})
	g.inputs.Once(g.rules.Session.Get().Ticks)
	g.flush()
}

func (g *Game) flush() {
	g.events.flush(g.listeners)
}

func (g *Game) status() *Status {
	return g.rules.Status.Get()
}

// ID returns the session id.
func (g *Game) ID() uuid.UUID { return g.id }

// Config returns the configuration the game was created with.
func (g *Game) Config() Config { return g.cfg }

// State returns the current board state.
func (g *Game) State() BoardState { return g.status().State }

// Score returns the cumulative score.
func (g *Game) Score() int { return g.status().Score }

// Level returns the current level.
func (g *Game) Level() int { return g.status().Level }

// Lines returns the rows cleared since the last level-up.
func (g *Game) Lines() int { return g.status().Lines }

// Ticks returns how many gravity ticks have been delivered.
func (g *Game) Ticks() uint64 { return g.rules.Session.Get().Ticks }

// QuitRequested reports whether a Quit input has been received.
func (g *Game) QuitRequested() bool { return g.status().Quit }

// GravityInterval is the wall-clock time between gravity ticks at the
// current level.
func (g *Game) GravityInterval() time.Duration {
	return GravityInterval(g.cfg.Gravity, g.Level())
}

// Width returns the number of visible columns.
func (g *Game) Width() int { return g.grid.Width() }

// Height returns the number of visible rows.
func (g *Game) Height() int { return g.grid.Height() }

// Cell returns the content of visible cell (col, row).
func (g *Game) Cell(col, row int) playfield.Cell {
	return g.grid.VisibleAt(col, row)
}

// Cells copies the visible playfield; Cells()[row][col].
func (g *Game) Cells() [][]playfield.Cell {
	return g.grid.Visible()
}

// Active returns the active piece in visible coordinates, and false when no
// piece is in play (while Clearing, or once Over).
func (g *Game) Active() (tetromino.Piece, bool) {
	p, ok := g.rules.Active.First()
	if !ok {
		return tetromino.Piece{}, false
	}
	return g.toVisible(p.Pose.Piece), true
}

// Ghost returns where the active piece would lock after a hard drop.
func (g *Game) Ghost() (tetromino.Piece, bool) {
	p, ok := g.rules.Active.First()
	if !ok {
		return tetromino.Piece{}, false
	}
	drop := playfield.DropDistance(g.grid, p.Pose.Piece)
	return g.toVisible(p.Pose.Piece.Moved(0, drop)), true
}

// Preview returns the next piece anchored at the origin of its own
// mini-grid.
func (g *Game) Preview() tetromino.Piece {
	q, _ := g.rules.Queued.First()
	return q.Pose.Piece
}

// PendingRows returns the visible rows waiting to collapse.
func (g *Game) PendingRows() []int { return visibleRows(g.grid, g.status().Pending) }

// PieceCount returns how many pieces of kind have been drawn.
func (g *Game) PieceCount(kind tetromino.Kind) int { return g.bag.Drawn(kind) }

// SchedulerStats returns execution statistics for the tick pipeline.
func (g *Game) SchedulerStats() *ecs.SchedulerStats { return g.ticks.GetStats() }

// EntityCount returns the number of live entities: the preview, and the
// active piece while one is in play.
func (g *Game) EntityCount() int { return g.storage.Count() }

// String renders the playfield as text, border ring included.
func (g *Game) String() string { return g.grid.String() }

func (g *Game) toVisible(p tetromino.Piece) tetromino.Piece {
	return p.Moved(-g.grid.Left(), -g.grid.Top())
}
