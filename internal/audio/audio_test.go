package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func TestGenerateCues(t *testing.T) {
	for _, sound := range []Sound{SoundEat, SoundSpeedUp, SoundGameOver} {
		buf := Generate(sound)
		if len(buf) == 0 {
			t.Errorf("Generate(%v) returned no samples", sound)
			continue
		}
		if len(buf)%bytesPerFrame != 0 {
			t.Errorf("Generate(%v) length %d is not whole frames", sound, len(buf))
		}
		for off := 0; off < len(buf); off += 4 {
			s := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
			if s < -1 || s > 1 {
				t.Fatalf("Generate(%v) sample %f out of range", sound, s)
			}
		}
	}

	if Generate(Sound(99)) != nil {
		t.Error("Generate of an unknown sound should return nil")
	}
}

func TestSoundString(t *testing.T) {
	tests := []struct {
		sound    Sound
		expected string
	}{
		{SoundEat, "eat"},
		{SoundSpeedUp, "speed_up"},
		{SoundGameOver, "game_over"},
		{Sound(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.sound.String(); got != tt.expected {
			t.Errorf("Sound(%d).String() = %q, want %q", tt.sound, got, tt.expected)
		}
	}
}

func TestNilSystemIsSilent(t *testing.T) {
	var s *System
	s.Play(SoundEat)
}

func TestSampleReader(t *testing.T) {
	r := &sampleReader{data: []byte{1, 2, 3}}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("read %d bytes, want 3", len(got))
	}
}
