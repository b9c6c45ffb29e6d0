// Package audio synthesizes and plays the game's sound effects.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a game moment that has a sound.
type Cue int

const (
	CueCatch Cue = iota
	CueMiss
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueMiss:
		return "miss"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

type effect struct {
	notes  []note
	volume float64
}

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

var effectsByCue = map[Cue]effect{
	// A5 then E6, a bright two-note chime.
	CueCatch: {
		notes:  []note{{880, 70 * time.Millisecond, WaveSine}, {1318.51, 120 * time.Millisecond, WaveSine}},
		volume: 0.5,
	},
	CueMiss: {
		notes:  []note{{110, 250 * time.Millisecond, WaveSaw}},
		volume: 0.3,
	},
	// C5 E5 G5 arpeggio.
	CueLevelUp: {
		notes: []note{
			{523.25, 90 * time.Millisecond, WaveSquare},
			{659.25, 90 * time.Millisecond, WaveSquare},
			{783.99, 160 * time.Millisecond, WaveSquare},
		},
		volume: 0.2,
	},
	// G4 E4 C4, falling.
	CueGameOver: {
		notes: []note{
			{392, 200 * time.Millisecond, WaveSine},
			{329.63, 200 * time.Millisecond, WaveSine},
			{261.63, 450 * time.Millisecond, WaveSine},
		},
		volume: 0.5,
	},
}

// Sound returns a fresh streamer for cue at rate, or nil for an unknown cue.
func Sound(cue Cue, rate beep.SampleRate) beep.Streamer {
	e, ok := effectsByCue[cue]
	if !ok {
		return nil
	}

	tones := make([]beep.Streamer, len(e.notes))
	for i, n := range e.notes {
		tones[i] = NewTone(n.freq, n.dur, attack, release, n.wave, rate)
	}
	return withVolume(beep.Seq(tones...), e.volume)
}

// Length returns the number of samples Sound(cue, rate) produces.
func Length(cue Cue, rate beep.SampleRate) int {
	total := 0
	for _, n := range effectsByCue[cue].notes {
		total += rate.N(n.dur)
	}
	return total
}
