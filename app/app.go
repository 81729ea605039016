// Package app is the top-level screen state machine: a start menu and the play
// screen, switched in place without restarting the process.
package app

import (
	"time"

	"github.com/plus3/blockfall/game"
)

//go:generate go tool stringer -type=Screen -trimprefix=Screen
//go:generate go tool stringer -type=MenuAction -trimprefix=Menu

// Screen is the screen currently shown.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPlaying
)

// MenuAction is a menu navigation input.
type MenuAction uint8

const (
	MenuUp MenuAction = iota
	MenuDown
	MenuConfirm
)

// MenuItem is an entry of the start menu.
type MenuItem struct {
	Label string
	apply func(*App)
}

// Input is one frame of host input. Menu actions are read on the menu screen,
// game actions on the play screen.
type Input struct {
	Menu []MenuAction
	Game []game.Action
}

// Audio is what the app needs from the audio service: session events, and a
// way to silence the music when leaving the play screen.
type Audio interface {
	game.Notifier
	StopMusic()
}

// App owns the current screen and, while playing, the session.
type App struct {
	cfg   game.Config
	audio Audio

	screen   Screen
	items    []MenuItem
	cursor   int
	session  *game.Session
	sessions int
	done     bool
}

// Option customizes an App.
type Option func(*App)

// WithAudio routes session events to a and stops its music on leaving play.
func WithAudio(a Audio) Option {
	return func(app *App) {
		if a != nil {
			app.audio = a
		}
	}
}

// New returns an App on the menu screen.
func New(cfg game.Config, opts ...Option) *App {
	a := &App{
		cfg:   cfg,
		audio: silentAudio{},
		items: []MenuItem{
			{Label: "Start", apply: (*App).start},
			{Label: "Quit", apply: (*App).quit},
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Update advances the app by one frame.
func (a *App) Update(dt time.Duration, in Input) {
	if a.done {
		return
	}

	switch a.screen {
	case ScreenMenu:
		a.updateMenu(in.Menu)
	case ScreenPlaying:
		a.updatePlaying(dt, in.Game)
	}
}

func (a *App) updateMenu(actions []MenuAction) {
	for _, action := range actions {
		switch action {
		case MenuUp:
			a.cursor = (a.cursor + len(a.items) - 1) % len(a.items)
		case MenuDown:
			a.cursor = (a.cursor + 1) % len(a.items)
		case MenuConfirm:
			a.items[a.cursor].apply(a)
			return
		}
	}
}

func (a *App) updatePlaying(dt time.Duration, actions []game.Action) {
	a.session.Tick(dt, actions...)

	switch a.session.Exit() {
	case game.ExitToMenu:
		a.audio.StopMusic()
		a.session = nil
		a.screen = ScreenMenu
	case game.ExitApplication:
		a.audio.StopMusic()
		a.done = true
	}
}

func (a *App) start() {
	cfg := a.cfg
	if cfg.Seed != 0 {
		cfg.Seed += uint64(a.sessions)
	}
	a.sessions++
	a.session = game.NewSession(cfg, game.WithNotifier(a.audio))
	a.screen = ScreenPlaying
}

func (a *App) quit() {
	a.done = true
}

// Screen returns the current screen.
func (a *App) Screen() Screen {
	return a.screen
}

// Menu returns the menu entries and the highlighted index.
func (a *App) Menu() ([]MenuItem, int) {
	return a.items, a.cursor
}

// Session returns the running session, or nil on the menu screen.
func (a *App) Session() *game.Session {
	return a.session
}

// Sessions returns how many games have been started.
func (a *App) Sessions() int {
	return a.sessions
}

// Done reports whether the player asked to leave the application.
func (a *App) Done() bool {
	return a.done
}

type silentAudio struct{}

func (silentAudio) Notify(game.Event) {}
func (silentAudio) StopMusic()        {}
