// Package anim runs the ambient visuals: a trailing cursor, a drifting
// particle field and the breathing sphere. Each simulation is optional; the
// Engine steps whichever ones it was built with.
package anim

import "math/rand"

// Engine owns the per-frame simulations.
type Engine struct {
	Pointer *Pointer
	Field   *Field
	Scene   *Scene
	Source  ScaleSource

	cols, rows int
	frames     uint64
	// unitField is set while the field is still laid out on the unit square
	// waiting for its first real size.
	unitField bool
}

// Option adds a simulation to an Engine.
type Option func(*Engine)

func WithPointer() Option {
	return func(e *Engine) { e.Pointer = NewPointer() }
}

// WithField adds a particle field of n particles. Its bounds follow Resize.
func WithField(n int, rng *rand.Rand) Option {
	return func(e *Engine) {
		e.Field = NewField(n, 1, 1, rng)
		e.unitField = true
	}
}

// WithScene adds the breathing sphere, scaled toward src's target. A nil src
// keeps the sphere at IdleScale.
func WithScene(src ScaleSource, rng *rand.Rand) Option {
	return func(e *Engine) {
		e.Scene = NewScene(rng)
		e.Source = src
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Frame advances every simulation one step: pointer, then field, then scene.
func (e *Engine) Frame() {
	e.frames++
	if e.Pointer != nil {
		e.Pointer.Step()
	}
	if e.Field != nil {
		e.Field.Step()
	}
	if e.Scene != nil {
		target := IdleScale
		if e.Source != nil {
			target = e.Source.TargetScale(IdleScale)
		}
		e.Scene.Step(target)
	}
}

// Frames is the number of frames run so far.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Resize recomputes size-dependent state for a cols by rows viewport.
// Particle positions, rotations and scales carry over.
func (e *Engine) Resize(cols, rows int) {
	first := e.cols == 0 && e.rows == 0
	e.cols, e.rows = cols, rows
	if e.Field != nil {
		w, h := float64(cols)*CellWidth, float64(rows)*CellHeight
		if e.unitField && w > 0 && h > 0 {
			for i := range e.Field.Particles {
				p := &e.Field.Particles[i]
				p.Pos = Vec2{X: p.Pos.X * w, Y: p.Pos.Y * h}
			}
			e.unitField = false
		}
		e.Field.Resize(w, h)
	}
	if e.Scene != nil {
		e.Scene.Resize(cols, rows)
	}
	if e.Pointer != nil && first {
		center := Vec2{X: float64(cols) * CellWidth / 2, Y: float64(rows) * CellHeight / 2}
		e.Pointer.Current, e.Pointer.Target = center, center
	}
}

// MoveCursor points the trailing cursor at a terminal cell.
func (e *Engine) MoveCursor(col, row int) {
	if e.Pointer == nil {
		return
	}
	e.Pointer.MoveTo(Vec2{X: (float64(col) + 0.5) * CellWidth, Y: (float64(row) + 0.5) * CellHeight})
}

// Size returns the last viewport passed to Resize.
func (e *Engine) Size() (cols, rows int) {
	return e.cols, e.rows
}
