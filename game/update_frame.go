package game

import "time"

// UpdateFrame is the per-tick context handed to every system.
type UpdateFrame struct {
	DeltaTime time.Duration
	Actions   []Action
	// State is what the update systems act on: the session state once input has
	// been applied. Systems that change the session state do not update it, so a
	// tick never runs both the line-clear and gravity steps.
	State    State
	Commands *Commands
	Session  *Session
}

func newUpdateFrame(dt time.Duration, actions []Action, session *Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Actions:   actions,
		State:     session.state,
		Commands:  newCommands(),
		Session:   session,
	}
}
