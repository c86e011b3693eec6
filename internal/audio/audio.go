// Package audio plays short procedural sound cues through oto.
package audio

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2

	bytesPerFrame = 8 // stereo float32
	volume        = 0.6
)

// Sound identifies a sound cue.
type Sound int

const (
	SoundEat Sound = iota
	SoundSpeedUp
	SoundGameOver
)

// String returns a human-readable sound name.
func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundSpeedUp:
		return "speed_up"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// System owns the audio device. A nil *System is silent.
type System struct {
	ctx   *oto.Context
	ready chan struct{}
	cues  map[Sound][]byte
}

// New opens the audio device and renders the sound cues.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &System{
		ctx:   ctx,
		ready: ready,
		cues: map[Sound][]byte{
			SoundEat:      Generate(SoundEat),
			SoundSpeedUp:  Generate(SoundSpeedUp),
			SoundGameOver: Generate(SoundGameOver),
		},
	}, nil
}

// Play starts a cue in the background. It returns immediately and drops
// the cue if the device is not ready yet.
func (s *System) Play(sound Sound) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := s.cues[sound]
	if len(samples) == 0 {
		return
	}

	go func() {
		player := s.ctx.NewPlayer(&sampleReader{data: samples})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Generate renders a cue as interleaved stereo float32 little-endian frames.
func Generate(sound Sound) []byte {
	switch sound {
	case SoundEat:
		return sweep(0.08, 520, 1100)
	case SoundSpeedUp:
		return arpeggio(0.07, 523.25, 659.25, 783.99, 1046.5)
	case SoundGameOver:
		return arpeggio(0.18, 329.63, 261.63, 196.0)
	default:
		return nil
	}
}

// sweep is a sine glide from f0 to f1 over dur seconds.
func sweep(dur, f0, f1 float64) []byte {
	n := int(dur * SampleRate)
	buf := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		phase += 2 * math.Pi * (f0 + (f1-f0)*p) / SampleRate
		putFrame(buf, i, math.Sin(phase)*envelope(p)*0.5)
	}
	return buf
}

// arpeggio plays each note for step seconds, one after another.
func arpeggio(step float64, notes ...float64) []byte {
	per := int(step * SampleRate)
	buf := make([]byte, per*len(notes)*bytesPerFrame)
	for ni, freq := range notes {
		for j := 0; j < per; j++ {
			t := float64(j) / SampleRate
			p := float64(j) / float64(per)
			s := math.Sin(2*math.Pi*freq*t) * 0.4
			s += math.Sin(2*math.Pi*freq*2*t) * 0.08
			putFrame(buf, ni*per+j, s*envelope(p))
		}
	}
	return buf
}

// envelope is a short linear attack and release over progress p in [0,1].
func envelope(p float64) float64 {
	const attack, release = 0.05, 0.3
	switch {
	case p < attack:
		return p / attack
	case p > 1-release:
		return (1 - p) / release
	default:
		return 1
	}
}

// putFrame writes sample to both channels of frame i.
func putFrame(buf []byte, i int, sample float64) {
	sample = math.Max(-1, math.Min(1, sample))
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*bytesPerFrame + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}
