package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
			if smp[0] != smp[1] {
				t.Fatalf("sample %d is not mono: %v", total, smp)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestTone(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{name: "sine", wave: WaveSine},
		{name: "square", wave: WaveSquare},
		{name: "saw", wave: WaveSaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTone(440, 100*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, tt.wave, testRate)

			n, peak := drain(t, s)
			if want := testRate.N(100 * time.Millisecond); n != want {
				t.Errorf("streamed %d samples, want %d", n, want)
			}
			if peak > 1 {
				t.Errorf("peak = %f, want <= 1", peak)
			}
			if peak < 0.5 {
				t.Errorf("peak = %f, tone is too quiet", peak)
			}
			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestTone_Ramps(t *testing.T) {
	s := NewTone(1000, 10*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, WaveSquare, testRate)

	buf := make([][2]float64, testRate.N(10*time.Millisecond))
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream() = %d, %v, want %d, true", n, ok, len(buf))
	}

	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at the start of the attack", buf[0][0])
	}
	if got := math.Abs(buf[n-1][0]); got > 0.01 {
		t.Errorf("last sample = %f, want near 0 at the end of the release", got)
	}

	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() after drain = %d, %v, want 0, false", n, ok)
	}
}

func TestSound(t *testing.T) {
	for _, cue := range []Cue{CueCatch, CueMiss, CueLevelUp, CueGameOver} {
		t.Run(cue.String(), func(t *testing.T) {
			s := Sound(cue, testRate)
			if s == nil {
				t.Fatal("Sound() returned nil")
			}

			n, peak := drain(t, s)
			if want := Length(cue, testRate); n != want {
				t.Errorf("streamed %d samples, want %d", n, want)
			}
			if want := effectsByCue[cue].volume; peak > want+1e-9 {
				t.Errorf("peak = %f, want <= volume %f", peak, want)
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
		})
	}
}

func TestSound_Unknown(t *testing.T) {
	if s := Sound(Cue(99), testRate); s != nil {
		t.Error("Sound() of an unknown cue should be nil")
	}
	if got := Cue(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}

func TestSpeaker_PlayBeforeInitialize(t *testing.T) {
	s := NewSpeaker()

	// Must not touch the device.
	s.Play(CueCatch)

	if err := s.Close(); err != nil {
		t.Errorf("Close() before Initialize error = %v", err)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Player = &r

	p.Play(CueCatch)
	p.Play(CueGameOver)
	p.Close()

	got := r.Cues()
	if len(got) != 2 || got[0] != CueCatch || got[1] != CueGameOver {
		t.Errorf("Cues() = %v, want [catch game-over]", got)
	}
	if !r.Closed() {
		t.Error("Closed() should be true")
	}

	var m Player = Mute{}
	m.Play(CueMiss)
	if err := m.Close(); err != nil {
		t.Errorf("Mute.Close() error = %v", err)
	}
}
