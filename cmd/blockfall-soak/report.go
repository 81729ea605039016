package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Columns  int
	Rows     int
	MaxGames int

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Games          []GameResult
	BestScore      int
	AvgScore       float64
	TotalLines     int
	Events         []EventCount
	Systems        []game.SystemStats
	Violations     []string
	ViolationCount int
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type EventCount struct {
	Event game.Event
	Count int
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

var allEvents = []game.Event{
	game.EventGameStarted,
	game.EventPieceLocked,
	game.EventRowsCleared,
	game.EventGameOver,
	game.EventPaused,
	game.EventResumed,
}

// Collect fills the results from a finished soak.
func (r *Report) Collect(s *Soak) {
	r.TotalTicks = s.ticks
	r.Games = s.Games()
	r.Violations = s.violations
	r.ViolationCount = s.violationCount
	r.Systems = s.session.Stats().Systems

	total := 0
	for _, g := range r.Games {
		total += g.Score
		r.TotalLines += g.Lines
		r.BestScore = max(r.BestScore, g.Score)
	}
	if len(r.Games) > 0 {
		r.AvgScore = float64(total) / float64(len(r.Games))
	}

	for _, event := range allEvents {
		r.Events = append(r.Events, EventCount{Event: event, Count: s.EventCount(event)})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Grid:** {{.Columns}}x{{.Rows}}
- **Game Limit:** {{if .MaxGames}}{{.MaxGames}}{{else}}none{{end}}

## Play Results
- **Games Finished:** {{len .Games}}
- **Best Score:** {{.BestScore}}
- **Avg Score:** {{printf "%.1f" .AvgScore}}
- **Lines Cleared:** {{.TotalLines}}

## Events
{{range .Events}}- {{.Event}}: {{.Count}}
{{end}}
## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

## Invariant Violations: {{.ViolationCount}}
{{range .Violations}}- {{.}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
