// Package audio plays background music and sound effects in response to game
// events. A Service is built once by the program and handed to whatever drives
// sessions; it never blocks the caller and never reports failures back into the
// game.
package audio

import (
	"errors"
	"sync"

	"github.com/plus3/blockfall/game"
)

// ErrNoDevice is returned when no audio output could be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Backend is a playback device. Implementations must be safe to call from one
// goroutine while their own mixer runs on another.
type Backend interface {
	// PlayEffect starts the event's sound effect; events without one are ignored.
	PlayEffect(event game.Event) error
	// StartMusic plays the music loop from the beginning.
	StartMusic() error
	StopMusic()
	PauseMusic()
	ResumeMusic()
	// SetVolume sets the master volume in [0, 1].
	SetVolume(volume float64)
	Close() error
}

type musicState uint8

const (
	musicStopped musicState = iota
	musicPlaying
	musicPaused
)

// Service routes game events to a Backend and tracks the music state.
type Service struct {
	mu      sync.Mutex
	backend Backend
	music   musicState
	volume  float64
	onError func(error)
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithErrorHandler receives playback errors that would otherwise be dropped.
func WithErrorHandler(fn func(error)) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.onError = fn
		}
	}
}

// WithVolume sets the initial master volume.
func WithVolume(volume float64) ServiceOption {
	return func(s *Service) {
		s.volume = clampVolume(volume)
	}
}

// NewService wraps backend. A nil backend plays nothing.
func NewService(backend Backend, opts ...ServiceOption) *Service {
	if backend == nil {
		backend = Silent{}
	}

	s := &Service{
		backend: backend,
		volume:  1,
		onError: func(error) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.backend.SetVolume(s.volume)
	return s
}

// Notify implements game.Notifier.
func (s *Service) Notify(event game.Event) {
	switch event {
	case game.EventGameStarted:
		s.PlayMusic()
	case game.EventPaused:
		s.PauseMusic()
	case game.EventResumed:
		s.ResumeMusic()
	case game.EventGameOver:
		s.StopMusic()
		s.playEffect(event)
	case game.EventPieceLocked, game.EventRowsCleared:
		s.playEffect(event)
	}
}

func (s *Service) playEffect(event game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.PlayEffect(event); err != nil {
		s.onError(err)
	}
}

// PlayMusic starts the music loop, restarting it if it is already playing.
func (s *Service) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music != musicStopped {
		s.backend.StopMusic()
	}
	if err := s.backend.StartMusic(); err != nil {
		s.music = musicStopped
		s.onError(err)
		return
	}
	s.music = musicPlaying
}

// StopMusic stops the music loop.
func (s *Service) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == musicStopped {
		return
	}
	s.backend.StopMusic()
	s.music = musicStopped
}

// PauseMusic pauses playing music at its current position.
func (s *Service) PauseMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music != musicPlaying {
		return
	}
	s.backend.PauseMusic()
	s.music = musicPaused
}

// ResumeMusic continues paused music.
func (s *Service) ResumeMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music != musicPaused {
		return
	}
	s.backend.ResumeMusic()
	s.music = musicPlaying
}

// MusicPlaying reports whether the music loop is audible.
func (s *Service) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music == musicPlaying
}

// SetVolume sets the master volume, clamped to [0, 1].
func (s *Service) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = clampVolume(volume)
	s.backend.SetVolume(s.volume)
}

// Volume returns the master volume.
func (s *Service) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Close stops playback and releases the backend.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music != musicStopped {
		s.backend.StopMusic()
		s.music = musicStopped
	}
	return s.backend.Close()
}

func clampVolume(volume float64) float64 {
	return max(0, min(1, volume))
}

// Silent is a Backend that plays nothing.
type Silent struct{}

func (Silent) PlayEffect(game.Event) error { return nil }
func (Silent) StartMusic() error           { return nil }
func (Silent) StopMusic()                  {}
func (Silent) PauseMusic()                 {}
func (Silent) ResumeMusic()                {}
func (Silent) SetVolume(float64)           {}
func (Silent) Close() error                { return nil }
