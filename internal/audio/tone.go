package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a single note with a linear attack and release.
type tone struct {
	freq    float64
	wave    Wave
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// NewTone returns a streamer that plays freq for d with the given attack and
// release ramps. It drains after d.
func NewTone(freq float64, d, attack, release time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att, rel := rate.N(attack), rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		v := t.sample() * t.gain()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if remaining := t.total - t.pos; t.release > 0 && remaining < t.release {
		return float64(remaining) / float64(t.release)
	}
	return 1
}

// withVolume scales s linearly by vol; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
