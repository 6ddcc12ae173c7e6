package anim

import "math/rand"

// Field defaults. Units are virtual pixels; one terminal cell is CellWidth
// by CellHeight of them.
const (
	DefaultParticles = 120
	// ParticleSpeed bounds each velocity component to ±ParticleSpeed/2 per frame.
	ParticleSpeed     = 0.3
	ParticleMinRadius = 1.0
	ParticleMaxRadius = 3.0
	ParticleMinAlpha  = 0.1
	ParticleMaxAlpha  = 0.4

	CellWidth  = 8.0
	CellHeight = 16.0
)

// Particle is one dot of the ambient field.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Radius  float64
	Opacity float64
}

// Field is a fixed set of particles bouncing inside [0,W]x[0,H].
type Field struct {
	Particles []Particle
	W, H      float64
}

// NewField scatters n particles over a w by h field.
func NewField(n int, w, h float64, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if n < 0 {
		n = 0
	}
	f := &Field{Particles: make([]Particle, n), W: w, H: h}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			Pos:     Vec2{X: rng.Float64() * w, Y: rng.Float64() * h},
			Vel:     Vec2{X: (rng.Float64() - 0.5) * ParticleSpeed, Y: (rng.Float64() - 0.5) * ParticleSpeed},
			Radius:  ParticleMinRadius + rng.Float64()*(ParticleMaxRadius-ParticleMinRadius),
			Opacity: ParticleMinAlpha + rng.Float64()*(ParticleMaxAlpha-ParticleMinAlpha),
		}
	}
	return f
}

// Step moves every particle by its velocity. A particle that has crossed a
// bound and is still heading outward gets that velocity component negated;
// position, radius and opacity are left alone.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		if (p.Pos.X < 0 && p.Vel.X < 0) || (p.Pos.X > f.W && p.Vel.X > 0) {
			p.Vel.X = -p.Vel.X
		}
		if (p.Pos.Y < 0 && p.Vel.Y < 0) || (p.Pos.Y > f.H && p.Vel.Y > 0) {
			p.Vel.Y = -p.Vel.Y
		}
	}
}

// Resize changes the bounds. Particles keep their positions and velocities;
// any left outside drift back in.
func (f *Field) Resize(w, h float64) {
	f.W, f.H = w, h
}
