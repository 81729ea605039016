package game

// Commands buffers events raised while systems run. They are delivered after the
// last system so collaborators observe a consistent session.
type Commands struct {
	events []Event
}

func newCommands() *Commands {
	return &Commands{}
}

// Notify queues an event for delivery at the end of the tick.
func (c *Commands) Notify(event Event) {
	c.events = append(c.events, event)
}

// Pending returns the events queued so far, in order.
func (c *Commands) Pending() []Event {
	return c.events
}

// Flush delivers every queued event in order and resets the buffer.
func (c *Commands) Flush(notifier Notifier) {
	for _, event := range c.events {
		notifier.Notify(event)
	}
	c.events = c.events[:0]
}
