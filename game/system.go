package game

// System is one step of a session tick. Systems run in registration order and
// may keep their own counters between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
