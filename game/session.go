// Package game drives a single play session: a grid, the falling piece, the
// queued next piece, scoring and speed, stepped by a fixed-rate tick.
//
// A Session is not safe for concurrent use. Hosts own it on one goroutine, call
// Tick once per frame and read Snapshot between ticks.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/playfield"
)

// Animation is the pending line clear: the flashing rows and the time left
// before they are removed.
type Animation struct {
	Rows      []int
	Remaining time.Duration
}

// Active reports whether rows are flashing.
func (a Animation) Active() bool {
	return len(a.Rows) > 0
}

// Session is one game from first spawn to game over, restartable in place.
type Session struct {
	cfg Config

	grid    *playfield.Grid
	current playfield.Piece
	next    playfield.Piece

	state     State
	score     int
	lines     int
	fallSpeed time.Duration
	fallTimer time.Duration
	anim      Animation
	elapsed   time.Duration
	exit      Exit

	rng       *rand.Rand
	notifier  Notifier
	scheduler *Scheduler
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithNotifier routes session events to n.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithRand replaces the piece generator's source.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// NewSession builds the grid, spawns the current and next pieces and starts in
// Playing. GameStarted is delivered before NewSession returns.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		notifier: nopNotifier{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	s.scheduler = NewScheduler(s)
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&LineClearSystem{})
	s.scheduler.Register(&GravitySystem{})

	cmds := newCommands()
	s.reset(cmds)
	cmds.Flush(s.notifier)

	return s
}

// Tick advances the session by dt after applying the input batch. Once the
// session has requested an exit further ticks are ignored.
func (s *Session) Tick(dt time.Duration, actions ...Action) {
	if s.exit != ExitNone {
		return
	}
	s.elapsed += dt
	s.scheduler.Once(dt, actions)
}

func (s *Session) reset(cmds *Commands) {
	s.grid = playfield.NewGrid(s.cfg.Columns, s.cfg.Rows)
	s.score = 0
	s.lines = 0
	s.fallSpeed = s.cfg.InitialFallSpeed
	s.fallTimer = 0
	s.anim = Animation{}
	s.current = s.newPiece()
	s.next = s.newPiece()
	s.state = Playing
	cmds.Notify(EventGameStarted)
}

func (s *Session) newPiece() playfield.Piece {
	kind := playfield.Kinds[s.rng.IntN(len(playfield.Kinds))]
	return playfield.Spawn(kind, s.cfg.SpawnColumn())
}

// advance promotes the next piece and ends the game if it does not fit.
func (s *Session) advance(cmds *Commands) {
	s.current = s.next
	s.next = s.newPiece()

	if !s.grid.IsValid(s.current, 0, 0) {
		s.state = GameOver
		cmds.Notify(EventGameOver)
	}
}

func (s *Session) shift(dx, dy int) {
	if s.grid.IsValid(s.current, dx, dy) {
		s.current.Move(dx, dy)
	}
}

// State returns the current top-level state.
func (s *Session) State() State {
	return s.state
}

// Score returns the points earned this game.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the rows cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// FallSpeed returns the current auto-fall interval.
func (s *Session) FallSpeed() time.Duration {
	return s.fallSpeed
}

// Exit returns the exit requested through QuitToMenu or QuitApplication.
func (s *Session) Exit() Exit {
	return s.exit
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Stats returns per-system timing for the ticks run so far.
func (s *Session) Stats() *SchedulerStats {
	return s.scheduler.GetStats()
}
