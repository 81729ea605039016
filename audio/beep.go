package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/plus3/blockfall/game"
)

const beepRate = beep.SampleRate(SampleRate)

var beepFormat = beep.Format{SampleRate: beepRate, NumChannels: 2, Precision: 2}

// BeepBackend plays through the beep speaker. It is meant for the terminal
// host, which has no other audio stack.
type BeepBackend struct {
	mixer   *beep.Mixer
	master  *effects.Volume
	effects *clipCache[*beep.Buffer]

	music      *beep.Buffer
	musicTrack *beep.Ctrl
}

// NewBeepBackend initializes the speaker and starts an always-running mixer.
func NewBeepBackend() (*BeepBackend, error) {
	if err := speaker.Init(beepRate, beepRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	b := &BeepBackend{
		mixer: &beep.Mixer{},
	}
	b.master = &effects.Volume{Streamer: b.mixer, Base: 2}
	b.effects = newClipCache(func(clip Clip) (*beep.Buffer, error) {
		buf := beep.NewBuffer(beepFormat)
		buf.Append(&clipStreamer{clip: clip})
		return buf, nil
	})
	if err := b.effects.preload(); err != nil {
		speaker.Close()
		return nil, fmt.Errorf("preload effects: %w", err)
	}

	music, err := toneMelody()
	if err != nil {
		speaker.Close()
		return nil, fmt.Errorf("synthesize music: %w", err)
	}
	b.music = music

	speaker.Play(b.master)
	return b, nil
}

// toneMelody renders the background melody from beep's sine generator.
func toneMelody() (*beep.Buffer, error) {
	buf := beep.NewBuffer(beepFormat)
	for _, n := range melody {
		count := beepRate.N(n.dur)
		if n.freq == 0 {
			buf.Append(beep.Silence(count))
			continue
		}
		sine, err := generators.SineTone(beepRate, n.freq)
		if err != nil {
			return nil, err
		}
		tone := &envelope{streamer: beep.Take(count, sine), length: count}
		buf.Append(&effects.Volume{Streamer: tone, Base: 2, Volume: -2.5})
	}
	return buf, nil
}

// LoadMusic replaces the music loop with an mp3 or wav file. On error the
// current loop is kept.
func (b *BeepBackend) LoadMusic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open music: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("music %s: unsupported format %q", path, ext)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode music %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != beepRate {
		src = beep.Resample(4, format.SampleRate, beepRate, stream)
	}

	buf := beep.NewBuffer(beepFormat)
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return fmt.Errorf("decode music %s: %w", path, err)
	}

	speaker.Lock()
	b.music = buf
	speaker.Unlock()
	return nil
}

func (b *BeepBackend) PlayEffect(event game.Event) error {
	buf, ok, err := b.effects.get(event)
	if err != nil || !ok {
		return err
	}

	speaker.Lock()
	b.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	return nil
}

func (b *BeepBackend) StartMusic() error {
	speaker.Lock()
	defer speaker.Unlock()

	if b.musicTrack != nil {
		b.musicTrack.Streamer = nil
	}
	b.musicTrack = &beep.Ctrl{Streamer: beep.Loop(-1, b.music.Streamer(0, b.music.Len()))}
	b.mixer.Add(b.musicTrack)
	return nil
}

func (b *BeepBackend) StopMusic() {
	speaker.Lock()
	defer speaker.Unlock()

	if b.musicTrack != nil {
		b.musicTrack.Streamer = nil
		b.musicTrack = nil
	}
}

func (b *BeepBackend) PauseMusic() {
	b.setMusicPaused(true)
}

func (b *BeepBackend) ResumeMusic() {
	b.setMusicPaused(false)
}

func (b *BeepBackend) setMusicPaused(paused bool) {
	speaker.Lock()
	defer speaker.Unlock()

	if b.musicTrack != nil {
		b.musicTrack.Paused = paused
	}
}

func (b *BeepBackend) SetVolume(volume float64) {
	speaker.Lock()
	defer speaker.Unlock()

	if volume <= 0 {
		b.master.Silent = true
		b.master.Volume = 0
		return
	}
	b.master.Silent = false
	b.master.Volume = math.Log2(volume)
}

func (b *BeepBackend) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// clipStreamer streams a Clip as stereo samples.
type clipStreamer struct {
	clip Clip
	pos  int
}

func (c *clipStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= len(c.clip) {
		return 0, false
	}
	for i := range samples {
		if c.pos >= len(c.clip) {
			return i, true
		}
		samples[i][0] = c.clip[c.pos]
		samples[i][1] = c.clip[c.pos]
		c.pos++
	}
	return len(samples), true
}

func (c *clipStreamer) Err() error { return nil }

// envelope fades a tone out linearly over its length to avoid clicks between
// notes.
type envelope struct {
	streamer beep.Streamer
	pos      int
	length   int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		gain := 1 - float64(e.pos)/float64(e.length)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
