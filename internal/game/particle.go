package game

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Particle burst settings.
const (
	BurstSize        = 20
	ParticleLife     = 30
	MinParticleSpeed = 2.0
	MaxParticleSpeed = 8.0
	MaxParticleSize  = 5
)

// Particle is a short-lived spark thrown out by a catch.
type Particle struct {
	X     float64
	Y     float64
	VX    float64
	VY    float64
	Color color.RGBA
	Life  int
}

// Radius shrinks with the remaining life and never drops below 1.
func (p Particle) Radius() int {
	return max(1, int(math.Round(MaxParticleSize*float64(p.Life)/ParticleLife)))
}

// ParticleSystem owns every live particle.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty ParticleSystem drawing from rng.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Burst adds BurstSize particles at (x, y) flying in random directions.
func (ps *ParticleSystem) Burst(x, y float64, c color.RGBA) {
	for i := 0; i < BurstSize; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := MinParticleSpeed + ps.rng.Float64()*(MaxParticleSpeed-MinParticleSpeed)
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			VX:    speed * math.Cos(angle),
			VY:    speed * math.Sin(angle),
			Color: c,
			Life:  ParticleLife,
		})
	}
}

// Advance moves every particle one tick and drops the ones that expired.
func (ps *ParticleSystem) Advance() {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(ps.particles[len(live):])
	ps.particles = live
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = nil
}

// Instructions returns one filled disc per live particle.
func (ps *ParticleSystem) Instructions() []Instruction {
	out := make([]Instruction, 0, len(ps.particles))
	for _, p := range ps.particles {
		out = append(out, Disc(image.Pt(int(p.X), int(p.Y)), p.Radius(), p.Color))
	}
	return out
}
