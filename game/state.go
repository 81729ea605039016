package game

//go:generate go tool stringer -type=State
//go:generate go tool stringer -type=Action -trimprefix=Action
//go:generate go tool stringer -type=Event -trimprefix=Event

// State is the top-level state of a session.
type State uint8

const (
	Playing State = iota
	Paused
	LineClearAnimation
	GameOver
)

// Action is a discrete input event delivered with a tick.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionPauseToggle
	ActionRestart
	ActionQuitToMenu
	ActionQuitApplication
)

// Exit records why a session asked its host to stop driving it.
type Exit uint8

const (
	ExitNone Exit = iota
	ExitToMenu
	ExitApplication
)

// Event is a fire-and-forget notification for collaborators such as audio.
type Event uint8

const (
	EventGameStarted Event = iota
	EventPieceLocked
	EventRowsCleared
	EventGameOver
	EventPaused
	EventResumed
)

// Notifier receives session events after each tick. Implementations must not
// block; the session never waits on them.
type Notifier interface {
	Notify(event Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(event Event) {
	f(event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}
