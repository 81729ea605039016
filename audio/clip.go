package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/plus3/blockfall/game"
)

// SampleRate is the rate every backend mixes at.
const SampleRate = 44100

// Clip is mono PCM in [-1, 1] at SampleRate.
type Clip []float64

type note struct {
	freq float64
	dur  time.Duration
}

// Duration returns the playing time of the clip.
func (c Clip) Duration() time.Duration {
	return time.Duration(len(c)) * time.Second / SampleRate
}

// PCM16 encodes the clip as interleaved little-endian signed 16-bit stereo.
func (c Clip) PCM16() []byte {
	buf := make([]byte, len(c)*4)
	for i, s := range c {
		v := uint16(int16(max(-1, min(1, s)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// synthesize renders notes back to back, each a sine with an exponential decay
// and a fundamental plus a quieter fifth.
func synthesize(gain, decay float64, notes ...note) Clip {
	total := 0
	for _, n := range notes {
		total += samplesFor(n.dur)
	}

	clip := make(Clip, 0, total)
	for _, n := range notes {
		count := samplesFor(n.dur)
		for i := range count {
			t := float64(i) / SampleRate
			env := math.Exp(-decay * t)
			if n.freq == 0 {
				clip = append(clip, 0)
				continue
			}
			v := math.Sin(2*math.Pi*n.freq*t) + 0.35*math.Sin(2*math.Pi*n.freq*1.5*t)
			clip = append(clip, gain*env*v/1.35)
		}
	}
	return clip
}

func samplesFor(d time.Duration) int {
	return int(d * SampleRate / time.Second)
}

var effectNotes = map[game.Event][]note{
	game.EventPieceLocked: {
		{220, 60 * time.Millisecond},
	},
	game.EventRowsCleared: {
		{523.25, 80 * time.Millisecond},
		{659.25, 80 * time.Millisecond},
		{783.99, 140 * time.Millisecond},
	},
	game.EventGameOver: {
		{392.00, 180 * time.Millisecond},
		{329.63, 180 * time.Millisecond},
		{261.63, 180 * time.Millisecond},
		{196.00, 420 * time.Millisecond},
	},
}

// effectClip synthesizes the sound effect for an event. Events without an
// effect report false.
func effectClip(event game.Event) (Clip, bool) {
	notes, ok := effectNotes[event]
	if !ok {
		return nil, false
	}
	return synthesize(0.5, 6, notes...), true
}

var melody = []note{
	{329.63, 400 * time.Millisecond}, {246.94, 200 * time.Millisecond},
	{261.63, 200 * time.Millisecond}, {293.66, 400 * time.Millisecond},
	{261.63, 200 * time.Millisecond}, {246.94, 200 * time.Millisecond},
	{220.00, 400 * time.Millisecond}, {220.00, 200 * time.Millisecond},
	{261.63, 200 * time.Millisecond}, {329.63, 400 * time.Millisecond},
	{293.66, 200 * time.Millisecond}, {261.63, 200 * time.Millisecond},
	{246.94, 600 * time.Millisecond}, {261.63, 200 * time.Millisecond},
	{293.66, 400 * time.Millisecond}, {329.63, 400 * time.Millisecond},
	{261.63, 400 * time.Millisecond}, {220.00, 400 * time.Millisecond},
	{220.00, 400 * time.Millisecond}, {0, 400 * time.Millisecond},
}

// melodyClip is the background loop used when no music file is configured.
func melodyClip() Clip {
	return synthesize(0.25, 1.5, melody...)
}
