package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/plus3/blockfall/game"
)

// EbitenBackend plays through ebiten's audio context. It is meant for the
// desktop host, where ebiten already owns the process's audio device.
type EbitenBackend struct {
	ctx     *ebitenaudio.Context
	effects *clipCache[*ebitenaudio.Player]
	music   *ebitenaudio.Player
	volume  float64
}

// NewEbitenBackend opens ebiten's audio context and prepares the synthesized
// effects and melody. Call LoadMusic to replace the melody with a file.
func NewEbitenBackend() (*EbitenBackend, error) {
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("%w: context already open at %d Hz", ErrNoDevice, ctx.SampleRate())
	}

	b := &EbitenBackend{
		ctx:    ctx,
		volume: 1,
	}
	b.effects = newClipCache(func(clip Clip) (*ebitenaudio.Player, error) {
		return ctx.NewPlayerFromBytes(clip.PCM16()), nil
	})
	if err := b.effects.preload(); err != nil {
		return nil, fmt.Errorf("preload effects: %w", err)
	}

	melody := melodyClip().PCM16()
	music, err := b.loop(bytes.NewReader(melody), int64(len(melody)))
	if err != nil {
		return nil, fmt.Errorf("synthesize music: %w", err)
	}
	b.music = music
	return b, nil
}

// LoadMusic replaces the music loop with an mp3, wav or ogg file. On error the
// current loop is kept.
func (b *EbitenBackend) LoadMusic(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read music: %w", err)
	}

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	src := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, src)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, src)
	default:
		return fmt.Errorf("music %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("decode music %s: %w", path, err)
	}

	music, err := b.loop(stream, stream.Length())
	if err != nil {
		return fmt.Errorf("music %s: %w", path, err)
	}

	if b.music != nil {
		_ = b.music.Close()
	}
	b.music = music
	return nil
}

func (b *EbitenBackend) loop(src io.ReadSeeker, length int64) (*ebitenaudio.Player, error) {
	player, err := b.ctx.NewPlayer(ebitenaudio.NewInfiniteLoop(src, length))
	if err != nil {
		return nil, err
	}
	player.SetVolume(b.volume)
	return player, nil
}

func (b *EbitenBackend) PlayEffect(event game.Event) error {
	player, ok, err := b.effects.get(event)
	if err != nil || !ok {
		return err
	}

	if err := player.Rewind(); err != nil {
		return fmt.Errorf("rewind %s effect: %w", event, err)
	}
	player.SetVolume(b.volume)
	player.Play()
	return nil
}

func (b *EbitenBackend) StartMusic() error {
	if err := b.music.Rewind(); err != nil {
		return fmt.Errorf("rewind music: %w", err)
	}
	b.music.Play()
	return nil
}

func (b *EbitenBackend) StopMusic() {
	b.music.Pause()
	_ = b.music.Rewind()
}

func (b *EbitenBackend) PauseMusic() {
	b.music.Pause()
}

func (b *EbitenBackend) ResumeMusic() {
	b.music.Play()
}

func (b *EbitenBackend) SetVolume(volume float64) {
	b.volume = volume
	b.music.SetVolume(volume)
}

func (b *EbitenBackend) Close() error {
	return b.music.Close()
}
