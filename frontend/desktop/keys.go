package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/game"
)

const (
	repeatDelay    = 10
	repeatInterval = 3
)

// keyDurations reports how many ticks a key has been held, 0 when released.
type keyDurations func(ebiten.Key) int

type binding[A any] struct {
	keys   []ebiten.Key
	action A
	repeat bool
}

var gameBindings = []binding[game.Action]{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: game.ActionMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: game.ActionMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: game.ActionSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, action: game.ActionRotateCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: game.ActionHardDrop},
	{keys: []ebiten.Key{ebiten.KeyP}, action: game.ActionPauseToggle},
	{keys: []ebiten.Key{ebiten.KeyR}, action: game.ActionRestart},
	{keys: []ebiten.Key{ebiten.KeyEscape}, action: game.ActionQuitToMenu},
	{keys: []ebiten.Key{ebiten.KeyQ}, action: game.ActionQuitApplication},
}

var menuBindings = []binding[app.MenuAction]{
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: app.MenuUp, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: app.MenuDown, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, action: app.MenuConfirm},
}

func collect[A any](bindings []binding[A], held keyDurations) []A {
	var actions []A
	for _, b := range bindings {
		for _, key := range b.keys {
			d := held(key)
			if d == 1 || (b.repeat && repeats(d)) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

// repeats reports whether a held key fires again this tick.
func repeats(ticks int) bool {
	return ticks >= repeatDelay && (ticks-repeatDelay)%repeatInterval == 0
}

// readInput maps the keys held this tick to the current screen's actions.
func readInput(screen app.Screen, held keyDurations) app.Input {
	if screen == app.ScreenMenu {
		return app.Input{Menu: collect(menuBindings, held)}
	}
	return app.Input{Game: collect(gameBindings, held)}
}
