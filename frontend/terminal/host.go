// Package terminal runs the App in a terminal through tcell.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/app"
)

// DefaultInterval is the tick interval of the terminal loop.
const DefaultInterval = time.Second / 60

// Run drives a on screen, ticking every interval with the measured elapsed
// time, until the App is done, Ctrl-C is pressed or ctx is cancelled. The
// caller owns screen and must have initialized it; Run does not call Fini.
func Run(ctx context.Context, screen tcell.Screen, a *app.App, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go pollEvents(ctx, screen, events)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	var pending app.Input

	draw(screen, a)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if interrupt(ev) {
					return nil
				}
				mapKey(a.Screen(), ev, &pending)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now

			a.Update(dt, pending)
			pending = app.Input{}

			if a.Done() {
				return nil
			}
			draw(screen, a)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx ends.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
