package audio

import (
	"sync"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/game"
)

// clipCache holds one backend-specific handle per event, built from the
// event's synthesized clip the first time it is played.
type clipCache[T any] struct {
	mu      sync.Mutex
	entries *intmap.Map[game.Event, T]
	build   func(Clip) (T, error)
}

func newClipCache[T any](build func(Clip) (T, error)) *clipCache[T] {
	return &clipCache[T]{
		entries: intmap.New[game.Event, T](8),
		build:   build,
	}
}

// get returns the handle for event. ok is false for events without an effect.
func (c *clipCache[T]) get(event game.Event) (handle T, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if handle, ok := c.entries.Get(event); ok {
		return handle, true, nil
	}

	clip, ok := effectClip(event)
	if !ok {
		return handle, false, nil
	}

	handle, err = c.build(clip)
	if err != nil {
		return handle, false, err
	}
	c.entries.Put(event, handle)
	return handle, true, nil
}

// preload builds every effect up front so the first play does not synthesize.
func (c *clipCache[T]) preload() error {
	for event := range effectNotes {
		if _, _, err := c.get(event); err != nil {
			return err
		}
	}
	return nil
}

func (c *clipCache[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
