package game

import (
	"image"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/colorcatch/internal/vision"
)

// Game rules.
const (
	// DefaultWidth and DefaultHeight are the logical playfield size.
	DefaultWidth  = 1280
	DefaultHeight = 720
	// InitialLives is the number of misses a player can afford.
	InitialLives = 3
	// CatchPoints is multiplied by the current level on every catch.
	CatchPoints = 10
	// PointsPerLevel is the score needed to advance one level.
	PointsPerLevel = 100
	// MissMargin is how far below the bottom edge an object must fall to
	// count as missed.
	MissMargin = 50
)

// Phase is the coarse position in the game flow.
type Phase int

const (
	// PhaseCalibration waits for the player to confirm the tracked color.
	PhaseCalibration Phase = iota
	// PhaseAwaitingMove waits for the first detection after calibration.
	PhaseAwaitingMove
	// PhasePlaying runs spawning, collisions and scoring.
	PhasePlaying
	// PhaseGameOver waits for a restart.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCalibration:
		return "calibration"
	case PhaseAwaitingMove:
		return "awaiting-move"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is a snapshot of the scalar game state.
type State struct {
	Round         uuid.UUID
	Score         int
	Lives         int
	Level         int
	Calibration   bool
	Started       bool
	Over          bool
	PresetIndex   int
	SpawnInterval time.Duration
}

func newState() State {
	return State{
		Round:         uuid.New(),
		Lives:         InitialLives,
		Level:         1,
		Calibration:   true,
		SpawnInterval: SpawnInterval(0),
	}
}

// Active reports whether spawning, collisions and scoring run this tick.
func (s State) Active() bool {
	return !s.Calibration && s.Started && !s.Over
}

// Phase derives the current phase from the state flags.
func (s State) Phase() Phase {
	switch {
	case s.Over:
		return PhaseGameOver
	case s.Calibration:
		return PhaseCalibration
	case !s.Started:
		return PhaseAwaitingMove
	default:
		return PhasePlaying
	}
}

// Result describes what happened during one Update.
type Result struct {
	// Started is set on the tick the first detection starts play.
	Started bool
	Caught  int
	Missed  int
	LevelUp bool
	// Ended is set on the tick the last life is lost.
	Ended bool
}

// Config holds configuration options for a Machine.
type Config struct {
	// Bounds is the playfield size; zero means DefaultWidth x DefaultHeight.
	Bounds image.Point
	// Presets is the color preset list; empty means vision.DefaultPresets().
	Presets []vision.ColorPreset
	// Rand drives spawning and particles; nil seeds from the clock.
	Rand *rand.Rand
}

// Machine owns the game state, the falling objects and the particles.
// It is not safe for concurrent use; one goroutine drives the game loop.
type Machine struct {
	state     State
	bounds    image.Point
	presets   []vision.ColorPreset
	spawner   *Spawner
	particles *ParticleSystem
	objects   []FallingObject
	lastSpawn time.Time
}

// NewMachine creates a Machine in calibration. now starts the spawn timer.
func NewMachine(config Config, now time.Time) *Machine {
	bounds := config.Bounds
	if bounds.X <= 0 || bounds.Y <= 0 {
		bounds = image.Pt(DefaultWidth, DefaultHeight)
	}

	presets := config.Presets
	if len(presets) == 0 {
		presets = vision.DefaultPresets()
	}

	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Machine{
		state:     newState(),
		bounds:    bounds,
		presets:   presets,
		spawner:   NewSpawner(rng),
		particles: NewParticleSystem(rng),
		lastSpawn: now,
	}
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	return m.state
}

// Bounds returns the playfield size.
func (m *Machine) Bounds() image.Point {
	return m.bounds
}

// Preset returns the active color preset.
func (m *Machine) Preset() vision.ColorPreset {
	return m.presets[m.state.PresetIndex]
}

// Objects returns a copy of the active falling objects.
func (m *Machine) Objects() []FallingObject {
	out := make([]FallingObject, len(m.objects))
	copy(out, m.objects)
	return out
}

// Particles returns a copy of the live particles.
func (m *Machine) Particles() []Particle {
	return m.particles.Particles()
}

// Handle applies a player command and reports whether it changed anything.
// Quit is left to the caller.
func (m *Machine) Handle(ev Event, now time.Time) bool {
	switch ev {
	case EventConfirm:
		if m.state.Calibration {
			m.state.Calibration = false
			return true
		}
	case EventCycleColor:
		m.state.PresetIndex = (m.state.PresetIndex + 1) % len(m.presets)
		return true
	case EventRestart:
		if m.state.Over {
			m.Reset(now)
			return true
		}
	}
	return false
}

// Reset discards the current round and starts a fresh one in calibration.
func (m *Machine) Reset(now time.Time) {
	m.state = newState()
	m.objects = nil
	m.particles.Clear()
	m.lastSpawn = now
}

// Update advances the game by one frame. tracked is the player's position
// and ok is false when nothing was detected this frame.
//
// Update logic:
// 1. First detection outside calibration starts play
// 2. Spawn an object once the spawn interval has elapsed
// 3. Move every object; a catch beats a miss for the same object
// 4. Remove caught and missed objects
// 5. Advance particles
// 6. Recompute the level and, if it went up, the spawn interval
func (m *Machine) Update(now time.Time, tracked image.Point, ok bool) Result {
	var res Result

	if ok && !m.state.Calibration && !m.state.Started && !m.state.Over {
		m.state.Started = true
		res.Started = true
	}

	if !m.state.Active() {
		return res
	}

	if now.Sub(m.lastSpawn) > m.state.SpawnInterval {
		m.objects = append(m.objects, m.spawner.Spawn(m.state.Level, m.bounds))
		m.lastSpawn = now
	}

	floor := float64(m.bounds.Y + MissMargin)
	for i := range m.objects {
		o := &m.objects[i]
		if o.Caught || o.missed {
			continue
		}

		o.Fall()

		switch {
		case ok && o.Touches(tracked):
			o.Caught = true
			m.state.Score += CatchPoints * m.state.Level
			c := o.Center()
			m.particles.Burst(float64(c.X), float64(c.Y), o.Color)
			res.Caught++

		case o.Y > floor:
			o.missed = true
			if m.state.Lives > 0 {
				m.state.Lives--
			}
			res.Missed++
			if m.state.Lives <= 0 && !m.state.Over {
				m.state.Over = true
				res.Ended = true
			}
		}
	}

	m.sweep()
	m.particles.Advance()

	if level := m.state.Score/PointsPerLevel + 1; level > m.state.Level {
		m.state.Level = level
		m.state.SpawnInterval = SpawnInterval(level)
		res.LevelUp = true
	}

	return res
}

// sweep compacts the object slice in place, dropping caught and missed ones.
func (m *Machine) sweep() {
	kept := m.objects[:0]
	for _, o := range m.objects {
		if o.Caught || o.missed {
			continue
		}
		kept = append(kept, o)
	}
	clear(m.objects[len(kept):])
	m.objects = kept
}
