package sim

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	Options

	// Results
	Results       []Result
	TotalTime     time.Duration
	UpdateTime    Stats
	BestScore     int
	AverageScore  int
	TotalLines    int
	TotalPieces   int
	GamesOver     int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) finalize() {
	r.UpdateTime.Finalize()

	total := 0
	for _, res := range r.Results {
		total += res.Score
		if res.Score > r.BestScore {
			r.BestScore = res.Score
		}
		r.TotalLines += res.Lines
		r.TotalPieces += res.Pieces
		if res.State == game.Over {
			r.GamesOver++
		}
	}
	if len(r.Results) > 0 {
		r.AverageScore = total / len(r.Results)
	}
}

var printer = message.NewPrinter(language.English)

// formatNumber groups digits the English way, 12345 as "12,345".
func formatNumber(v any) string {
	return printer.Sprintf("%d", v)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Playfield:** {{.Config.Width}}x{{.Config.Height}}
- **Start Level:** {{.Config.StartLevel}}
- **Base Seed:** {{.Config.Seed}}
- **Max Ticks:** {{if gt .MaxTicks 0}}{{num .MaxTicks}}{{else}}unlimited{{end}}
- **Moves Per Tick:** {{.MovesPerTick}}

## Results
- **Games Over:** {{.GamesOver}} of {{len .Results}}
- **Best Score:** {{num .BestScore}}
- **Average Score:** {{num .AverageScore}}
- **Lines Cleared:** {{num .TotalLines}}
- **Pieces Locked:** {{num .TotalPieces}}

| Game | Seed | State | Score | Level | Lines | Pieces | Ticks |
|------|------|-------|-------|-------|-------|--------|-------|
{{- range .Results}}
| {{.Index}} | {{.Seed}} | {{.State}} | {{num .Score}} | {{.Level}} | {{.Lines}} | {{.Pieces}} | {{num .Ticks}} |
{{- end}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Total Alloc:** {{num (usub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} bytes
{{if .ShowBoard}}
## Final Boards
{{- range .Results}}

Game {{.Index}}:
` + "```" + `
{{.Board}}
` + "```" + `
{{- end}}
{{end}}
`

	fm := template.FuncMap{
		"num": formatNumber,
		"usub": func(a, b uint64) uint64 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
