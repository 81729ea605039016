package audio_test

import (
	"errors"
	"testing"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls    []string
	effects  []game.Event
	volume   float64
	startErr error
	closed   bool
}

func (f *fakeBackend) PlayEffect(event game.Event) error {
	f.effects = append(f.effects, event)
	return nil
}

func (f *fakeBackend) StartMusic() error {
	f.calls = append(f.calls, "start")
	return f.startErr
}

func (f *fakeBackend) StopMusic()   { f.calls = append(f.calls, "stop") }
func (f *fakeBackend) PauseMusic()  { f.calls = append(f.calls, "pause") }
func (f *fakeBackend) ResumeMusic() { f.calls = append(f.calls, "resume") }

func (f *fakeBackend) SetVolume(volume float64) { f.volume = volume }

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func TestServiceRoutesEvents(t *testing.T) {
	backend := &fakeBackend{}
	svc := audio.NewService(backend)

	svc.Notify(game.EventGameStarted)
	assert.True(t, svc.MusicPlaying())

	svc.Notify(game.EventPieceLocked)
	svc.Notify(game.EventRowsCleared)
	svc.Notify(game.EventPaused)
	assert.False(t, svc.MusicPlaying())

	svc.Notify(game.EventResumed)
	assert.True(t, svc.MusicPlaying())

	svc.Notify(game.EventGameOver)
	assert.False(t, svc.MusicPlaying())

	assert.Equal(t, []string{"start", "pause", "resume", "stop"}, backend.calls)
	assert.Equal(t, []game.Event{game.EventPieceLocked, game.EventRowsCleared, game.EventGameOver}, backend.effects)
}

func TestServiceIgnoresUnknownEvents(t *testing.T) {
	backend := &fakeBackend{}
	svc := audio.NewService(backend)

	svc.Notify(game.Event(200))

	assert.Empty(t, backend.calls)
	assert.Empty(t, backend.effects)
}

func TestServiceMusicTransitions(t *testing.T) {
	backend := &fakeBackend{}
	svc := audio.NewService(backend)

	svc.ResumeMusic()
	svc.PauseMusic()
	svc.StopMusic()
	assert.Empty(t, backend.calls, "nothing to pause, resume or stop")

	svc.PlayMusic()
	svc.PlayMusic()
	assert.Equal(t, []string{"start", "stop", "start"}, backend.calls, "playing again restarts")

	svc.PauseMusic()
	svc.PauseMusic()
	assert.Equal(t, "pause", backend.calls[len(backend.calls)-1])
	assert.Len(t, backend.calls, 4)

	svc.StopMusic()
	svc.ResumeMusic()
	assert.Equal(t, []string{"start", "stop", "start", "pause", "stop"}, backend.calls)
}

func TestServiceStartFailure(t *testing.T) {
	backend := &fakeBackend{startErr: errors.New("device lost")}
	var reported []error
	svc := audio.NewService(backend, audio.WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))

	svc.Notify(game.EventGameStarted)

	assert.False(t, svc.MusicPlaying())
	require.Len(t, reported, 1)
	assert.EqualError(t, reported[0], "device lost")
}

func TestServiceVolume(t *testing.T) {
	backend := &fakeBackend{}
	svc := audio.NewService(backend, audio.WithVolume(0.4))

	assert.InDelta(t, 0.4, backend.volume, 1e-9)

	svc.SetVolume(2)
	assert.Equal(t, 1.0, svc.Volume())
	assert.Equal(t, 1.0, backend.volume)

	svc.SetVolume(-1)
	assert.Equal(t, 0.0, svc.Volume())
}

func TestServiceClose(t *testing.T) {
	backend := &fakeBackend{}
	svc := audio.NewService(backend)
	svc.PlayMusic()

	require.NoError(t, svc.Close())

	assert.True(t, backend.closed)
	assert.False(t, svc.MusicPlaying())
	assert.Equal(t, []string{"start", "stop"}, backend.calls)
}

func TestServiceAsNotifier(t *testing.T) {
	backend := &fakeBackend{}
	svc := audio.NewService(backend)

	session := game.NewSession(game.DefaultConfig(), game.WithNotifier(svc))
	assert.True(t, svc.MusicPlaying(), "a new session starts the music")

	session.Tick(0, game.ActionPauseToggle)
	assert.False(t, svc.MusicPlaying())
}

func TestSilentBackend(t *testing.T) {
	svc := audio.NewService(nil)

	svc.Notify(game.EventGameStarted)
	svc.Notify(game.EventRowsCleared)

	assert.True(t, svc.MusicPlaying())
	assert.NoError(t, svc.Close())
}
