package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/playfield"
)

const maxViolations = 20

// GameResult summarizes one finished game.
type GameResult struct {
	Score  int
	Lines  int
	Pieces int
	Ticks  int64
}

// Soak plays sessions with random input and checks the play field after every
// tick.
type Soak struct {
	cfg     game.Config
	session *game.Session
	rng     *rand.Rand
	frame   time.Duration

	events  *intmap.Map[game.Event, int]
	current GameResult
	games   []GameResult
	ticks   int64

	lastScore int
	lastSpeed time.Duration

	violations     []string
	violationCount int
}

// NewSoak starts the first session. The same seed replays the same run.
func NewSoak(cfg game.Config, seed uint64) *Soak {
	s := &Soak{
		cfg:       cfg,
		rng:       rand.New(rand.NewPCG(seed, seed+1)),
		frame:     time.Second / 60,
		events:    intmap.New[game.Event, int](8),
		lastSpeed: cfg.InitialFallSpeed,
	}
	cfg.Seed = seed
	s.session = game.NewSession(cfg, game.WithNotifier(game.NotifierFunc(s.record)))
	return s
}

func (s *Soak) record(event game.Event) {
	n, _ := s.events.Get(event)
	s.events.Put(event, n+1)

	if event == game.EventPieceLocked {
		s.current.Pieces++
	}
}

// Step runs one tick and restarts the session if the game ended.
func (s *Soak) Step() {
	s.session.Tick(s.frame, s.randomActions()...)
	s.ticks++
	s.current.Ticks++
	s.check()

	if s.session.State() == game.GameOver {
		s.current.Score = s.session.Score()
		s.current.Lines = s.session.Lines()
		s.games = append(s.games, s.current)

		s.current = GameResult{}
		s.session.Tick(0, game.ActionRestart)
		s.lastScore = 0
		s.lastSpeed = s.cfg.InitialFallSpeed
	}
}

var weightedActions = []struct {
	action game.Action
	weight float64
}{
	{game.ActionMoveLeft, 0.25},
	{game.ActionMoveRight, 0.25},
	{game.ActionRotateCW, 0.2},
	{game.ActionSoftDrop, 0.2},
	{game.ActionHardDrop, 0.1},
}

func (s *Soak) randomActions() []game.Action {
	if s.rng.Float64() > 0.3 {
		return nil
	}

	pick := s.rng.Float64()
	for _, wa := range weightedActions {
		if pick < wa.weight {
			return []game.Action{wa.action}
		}
		pick -= wa.weight
	}
	return nil
}

func (s *Soak) check() {
	score := s.session.Score()
	if score < s.lastScore {
		s.violate("score decreased from %d to %d", s.lastScore, score)
	}
	s.lastScore = score

	speed := s.session.FallSpeed()
	if speed > s.lastSpeed {
		s.violate("fall speed increased from %s to %s", s.lastSpeed, speed)
	}
	if speed < s.cfg.MinFallSpeed {
		s.violate("fall speed %s below minimum %s", speed, s.cfg.MinFallSpeed)
	}
	s.lastSpeed = speed

	snap := s.session.Snapshot()
	if snap.Active {
		for _, b := range snap.Current.Blocks {
			if b.Col < 0 || b.Col >= snap.Columns || b.Row >= snap.Rows {
				s.violate("piece block (%d, %d) outside the grid", b.Col, b.Row)
			} else if b.Row >= 0 && snap.Cells[b.Row][b.Col].Filled() {
				s.violate("piece block (%d, %d) overlaps a locked cell", b.Col, b.Row)
			}
		}
	}

	if snap.State == game.Playing || snap.State == game.Paused {
		for row, cells := range snap.Cells {
			if complete(cells) {
				s.violate("row %d complete outside the line clear", row)
			}
		}
	}
}

func complete(cells []playfield.Cell) bool {
	for _, c := range cells {
		if !c.Filled() {
			return false
		}
	}
	return true
}

func (s *Soak) violate(format string, args ...any) {
	s.violationCount++
	if len(s.violations) < maxViolations {
		msg := fmt.Sprintf(format, args...)
		s.violations = append(s.violations, fmt.Sprintf("tick %d: %s", s.ticks, msg))
	}
}

// Games returns the finished games.
func (s *Soak) Games() []GameResult {
	return s.games
}

// EventCount returns how many times event was delivered.
func (s *Soak) EventCount(event game.Event) int {
	n, _ := s.events.Get(event)
	return n
}
