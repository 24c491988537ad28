package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/tetromino"
)

const (
	boardMargin = 30
	debugOffset = 340

	// Held movement keys repeat after repeatDelay frames, every
	// repeatInterval frames.
	repeatDelay    = 12
	repeatInterval = 3
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	borderColor     = color.RGBA{180, 60, 60, 255}
	lockedColor     = color.RGBA{70, 110, 150, 255}
	clearingColor   = color.RGBA{240, 240, 240, 255}
	ghostColor      = color.RGBA{200, 200, 200, 90}
)

var kindColors = [tetromino.KindCount]color.RGBA{
	tetromino.I: {0, 220, 230, 255},
	tetromino.O: {240, 220, 0, 255},
	tetromino.T: {170, 60, 220, 255},
	tetromino.J: {40, 90, 230, 255},
	tetromino.L: {240, 150, 20, 255},
	tetromino.S: {60, 210, 80, 255},
	tetromino.Z: {230, 50, 50, 255},
}

type binding struct {
	key    ebiten.Key
	input  game.Input
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, game.Left, true},
	{ebiten.KeyArrowRight, game.Right, true},
	{ebiten.KeyArrowDown, game.SoftDrop, true},
	{ebiten.KeyArrowUp, game.Rotate, false},
	{ebiten.KeySpace, game.HardDrop, false},
	{ebiten.KeyP, game.PauseToggle, false},
	{ebiten.KeyQ, game.Quit, false},
	{ebiten.KeyEscape, game.Quit, false},
}

// shell implements ebiten.Game. It polls keys into game inputs, converts
// frame time into gravity ticks, and draws a snapshot of the game.
type shell struct {
	cfg     game.Config
	log     *slog.Logger
	game    *game.Game
	clock   *game.TickClock
	printer *message.Printer

	imgui *ebitenbackend.EbitenBackend
	panel *debugui.Panel

	frame     uint64
	lastFrame time.Time
}

func newShell(cfg game.Config, logger *slog.Logger) (*shell, error) {
	s := &shell{
		cfg:       cfg,
		log:       logger,
		clock:     game.NewTickClock(cfg.Gravity),
		printer:   message.NewPrinter(language.English),
		lastFrame: time.Now(),
	}
	if err := s.restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shell) restart() error {
	g, err := game.New(s.cfg, game.WithLogger(s.log))
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	s.game = g
	s.clock.Reset()
	s.attachPanel()
	return nil
}

// attachPanel binds the inspector to the current game when the ImGui
// overlay is enabled.
func (s *shell) attachPanel() {
	if s.imgui == nil {
		return
	}
	s.panel = debugui.NewPanel(s.game, 120, 40)
}

func (s *shell) Update() error {
	deltaTime := time.Since(s.lastFrame)
	s.lastFrame = time.Now()
	s.frame++

	if s.imgui != nil {
		s.imgui.BeginFrame()
		defer s.imgui.EndFrame()
	}

	// Keys typed into the inspector stay there.
	if s.imgui == nil || !imgui.CurrentIO().WantCaptureKeyboard() {
		for _, b := range bindings {
			if s.fired(b) {
				s.game.OnInput(b.input)
			}
		}
	}
	if s.game.QuitRequested() {
		return ebiten.Termination
	}
	if s.game.State() == game.Over && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.restart(); err != nil {
			return err
		}
	}

	switch s.game.State() {
	case game.Moving, game.Clearing:
		dt := time.Second / time.Duration(ebiten.TPS())
		s.game.OnTick(s.clock.Advance(dt, s.game.Level()))
	default:
		s.clock.Reset()
	}

	if s.panel != nil {
		s.panel.Render(float32(deltaTime.Seconds()))
	}
	return nil
}

func (s *shell) fired(b binding) bool {
	if inpututil.IsKeyJustPressed(b.key) {
		return true
	}
	if !b.repeat {
		return false
	}
	d := inpututil.KeyPressDuration(b.key)
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (s *shell) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := s.game.Snapshot()
	cellSize := s.cellSize(screen)
	originX := float32(boardMargin)
	if s.imgui != nil {
		originX = debugOffset
	}
	originY := float32(boardMargin)

	// Cells are drawn one ring out so the border sits at (-1, -1).
	drawCell := func(col, row int, c color.Color) {
		x := originX + float32(col+1)*cellSize
		y := originY + float32(row+1)*cellSize
		vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, c, false)
	}

	w, h := s.game.Width(), s.game.Height()
	for row := -1; row <= h; row++ {
		for col := -1; col <= w; col++ {
			if row < 0 || row == h || col < 0 || col == w {
				drawCell(col, row, borderColor)
			}
		}
	}

	pending := make(map[int]bool, len(snap.Pending))
	for _, row := range snap.Pending {
		pending[row] = true
	}
	flash := (s.frame/6)%2 == 0

	for row, cells := range snap.Cells {
		for col, c := range cells {
			if c != playfield.Locked {
				continue
			}
			if pending[row] && flash {
				drawCell(col, row, clearingColor)
			} else {
				drawCell(col, row, lockedColor)
			}
		}
	}

	if active, ok := s.game.Active(); ok {
		for _, p := range snap.Ghost {
			x := originX + float32(p.X+1)*cellSize
			y := originY + float32(p.Y+1)*cellSize
			vector.StrokeRect(screen, x+2, y+2, cellSize-4, cellSize-4, 2, ghostColor, false)
		}
		for _, p := range snap.Active {
			drawCell(p.X, p.Y, kindColors[active.Kind])
		}
	}

	s.drawSidebar(screen, snap, originX+float32(w+3)*cellSize, originY, cellSize)

	if s.imgui != nil {
		s.imgui.Draw(screen)
	}
}

func (s *shell) drawSidebar(screen *ebiten.Image, snap game.Snapshot, x, y, cellSize float32) {
	ebitenutil.DebugPrintAt(screen, "NEXT", int(x), int(y))
	previewSize := cellSize * 0.75
	for _, p := range snap.Preview.Cells() {
		px := x + float32(p.X)*previewSize
		py := y + 20 + float32(p.Y)*previewSize
		vector.DrawFilledRect(screen, px+1, py+1, previewSize-2, previewSize-2, kindColors[snap.Preview.Kind], false)
	}

	hud := s.printer.Sprintf("SCORE %d\nLEVEL %d\nLINES %d", snap.Score, snap.Level, snap.Lines)
	ebitenutil.DebugPrintAt(screen, hud, int(x), int(y+20+5*previewSize))

	var status string
	switch snap.State {
	case game.Paused:
		status = "PAUSED\nP to resume"
	case game.Over:
		status = "GAME OVER\nR to restart"
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, int(x), int(y+80+5*previewSize))
	}
}

// cellSize fits the board and its border ring into the window height.
func (s *shell) cellSize(screen *ebiten.Image) float32 {
	avail := float32(screen.Bounds().Dy() - 2*boardMargin)
	return avail / float32(s.game.Height()+2)
}

func (s *shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.imgui != nil {
		s.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
