// Package debugui provides Dear ImGui inspector windows for a running game:
// board state, the tick pipeline's system timings, piece statistics and a
// log of recent events.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetromino"
)

// Panel renders the inspector windows. Create it once per game; it
// subscribes to the game's events.
type Panel struct {
	game *game.Game
	log  *EventLog

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPanel attaches a panel to g, keeping historyFrames frame times and the
// last maxEvents events. Both are at least one.
func NewPanel(g *game.Game, historyFrames, maxEvents int) *Panel {
	historyFrames = max(historyFrames, 1)
	p := &Panel{
		game:          g,
		log:           NewEventLog(maxEvents),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
	g.Subscribe(p.log.Record)
	return p
}

// Render draws every window. Call it between the backend's BeginFrame and
// EndFrame.
func (p *Panel) Render(deltaTime float32) {
	p.recordFrame(deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)
	p.renderState()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)
	p.renderPipeline()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 510), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 200), imgui.CondOnce)
	p.renderEvents()
}

// recordFrame stores deltaTime, in milliseconds, in the frame time ring.
func (p *Panel) recordFrame(deltaTime float32) {
	p.frameHistory[p.frameIndex] = deltaTime * 1000.0
	p.frameIndex = (p.frameIndex + 1) % p.historyFrames
}

func (p *Panel) renderState() {
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := p.game
	imgui.Text(fmt.Sprintf("Session: %s", g.ID()))
	imgui.Text(fmt.Sprintf("State: %s", g.State()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", g.Level(), g.Lines()))
	imgui.Text(fmt.Sprintf("Ticks: %d  Interval: %s", g.Ticks(), g.GravityInterval()))
	imgui.Text(fmt.Sprintf("Entities: %d", g.EntityCount()))
	imgui.Separator()

	if active, ok := g.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s rot=%d at (%d,%d)", active.Kind, active.Rotation, active.X, active.Y))
	} else {
		imgui.Text("Active: none")
	}
	imgui.Text(fmt.Sprintf("Next: %s", g.Preview().Kind))
	if rows := g.PendingRows(); len(rows) > 0 {
		imgui.Text(fmt.Sprintf("Clearing rows: %v", rows))
	}

	if imgui.TreeNodeStr("Piece Statistics") {
		for _, kind := range tetromino.Kinds {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, g.PieceCount(kind)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (p *Panel) renderPipeline() {
	if !imgui.BeginV("Tick Pipeline", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range p.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(p.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))
	imgui.Separator()

	stats := p.game.SchedulerStats()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (p *Panel) renderEvents() {
	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range p.log.Lines() {
		imgui.Text(line)
	}

	imgui.End()
}
