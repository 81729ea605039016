package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/app"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/frontend/desktop"
	"github.com/plus3/blockfall/frontend/terminal"
	"github.com/plus3/blockfall/game"
)

type musicLoader interface {
	audio.Backend
	LoadMusic(path string) error
}

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Columns, "cols", cfg.Columns, "Grid columns.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid rows.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Piece generator seed; 0 picks one at random.")
	frontend := flag.String("frontend", "desktop", "Host to run in: desktop or terminal.")
	music := flag.String("music", "", "Music file to loop (mp3, wav, or ogg on desktop); empty plays the built-in melody.")
	volume := flag.Float64("volume", 0.8, "Master volume between 0 and 1.")
	mute := flag.Bool("mute", false, "Disable all audio.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay (desktop only).")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *frontend != "desktop" && *frontend != "terminal" {
		log.Fatalf("Unknown frontend %q", *frontend)
	}

	// The terminal owns stdout and stderr once initialized.
	if *frontend == "terminal" {
		f, err := os.OpenFile("blockfall.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	backend := openAudio(*frontend, *music, *mute)
	sound := audio.NewService(backend,
		audio.WithVolume(*volume),
		audio.WithErrorHandler(func(err error) {
			log.Printf("Audio: %v", err)
		}),
	)
	defer func() {
		if err := sound.Close(); err != nil {
			log.Printf("Failed to close audio: %v", err)
		}
	}()

	a := app.New(cfg, app.WithAudio(sound))

	switch *frontend {
	case "desktop":
		if err := desktop.Run(a, desktop.Options{Config: cfg, Debug: *debug}); err != nil {
			log.Fatalf("Desktop host failed: %v", err)
		}
	case "terminal":
		if err := runTerminal(a); err != nil {
			log.Fatalf("Terminal host failed: %v", err)
		}
	}
}

func runTerminal(a *app.App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = terminal.Run(ctx, screen, a, terminal.DefaultInterval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openAudio picks the backend for the host. Failures are logged and fall back
// to silence.
func openAudio(frontend, music string, mute bool) audio.Backend {
	if mute {
		return audio.Silent{}
	}

	var (
		backend musicLoader
		err     error
	)
	switch frontend {
	case "desktop":
		backend, err = audio.NewEbitenBackend()
	case "terminal":
		backend, err = audio.NewBeepBackend()
	}
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return audio.Silent{}
	}

	if music != "" {
		if err := backend.LoadMusic(music); err != nil {
			log.Printf("Using built-in melody: %v", err)
		}
	}
	return backend
}
