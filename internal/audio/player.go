package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Player plays cues without blocking the caller.
type Player interface {
	Play(cue Cue)
	Close() error
}

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a Speaker. Call Initialize before playing.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device with a 100ms buffer and starts the mixer.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues cue on the mixer. It is a no-op before Initialize.
func (s *Speaker) Play(cue Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	st := Sound(cue, SampleRate)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	s.initialized = false
	return nil
}

// Mute is a Player that discards every cue.
type Mute struct{}

func (Mute) Play(Cue)     {}
func (Mute) Close() error { return nil }

// Recorder is a Player that remembers cues for testing.
type Recorder struct {
	mu     sync.Mutex
	cues   []Cue
	closed bool
}

func (r *Recorder) Play(cue Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Cues returns a copy of the recorded cues in play order.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
