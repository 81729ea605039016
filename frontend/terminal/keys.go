package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/game"
)

var gameRunes = map[rune]game.Action{
	'a': game.ActionMoveLeft,
	'h': game.ActionMoveLeft,
	'd': game.ActionMoveRight,
	'l': game.ActionMoveRight,
	's': game.ActionSoftDrop,
	'j': game.ActionSoftDrop,
	'w': game.ActionRotateCW,
	'k': game.ActionRotateCW,
	'x': game.ActionRotateCW,
	' ': game.ActionHardDrop,
	'p': game.ActionPauseToggle,
	'r': game.ActionRestart,
	'q': game.ActionQuitApplication,
}

var gameKeys = map[tcell.Key]game.Action{
	tcell.KeyLeft:   game.ActionMoveLeft,
	tcell.KeyRight:  game.ActionMoveRight,
	tcell.KeyDown:   game.ActionSoftDrop,
	tcell.KeyUp:     game.ActionRotateCW,
	tcell.KeyEscape: game.ActionQuitToMenu,
}

var menuRunes = map[rune]app.MenuAction{
	'w': app.MenuUp,
	'k': app.MenuUp,
	's': app.MenuDown,
	'j': app.MenuDown,
	' ': app.MenuConfirm,
}

var menuKeys = map[tcell.Key]app.MenuAction{
	tcell.KeyUp:    app.MenuUp,
	tcell.KeyDown:  app.MenuDown,
	tcell.KeyEnter: app.MenuConfirm,
}

// mapKey adds the action bound to ev on the given screen to in. It reports
// false for keys that have no binding.
func mapKey(screen app.Screen, ev *tcell.EventKey, in *app.Input) bool {
	if screen == app.ScreenMenu {
		action, ok := lookup(ev, menuKeys, menuRunes)
		if ok {
			in.Menu = append(in.Menu, action)
		}
		return ok
	}

	action, ok := lookup(ev, gameKeys, gameRunes)
	if ok {
		in.Game = append(in.Game, action)
	}
	return ok
}

func lookup[A any](ev *tcell.EventKey, keys map[tcell.Key]A, runes map[rune]A) (A, bool) {
	if ev.Key() == tcell.KeyRune {
		action, ok := runes[toLower(ev.Rune())]
		return action, ok
	}
	action, ok := keys[ev.Key()]
	return action, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// interrupt reports whether ev asks to leave immediately, regardless of screen.
func interrupt(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC
}
