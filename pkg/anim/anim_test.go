package anim

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldReflectsAtRightEdge(t *testing.T) {
	f := &Field{W: 100, H: 100, Particles: []Particle{{
		Pos: Vec2{X: 99.9, Y: 50}, Vel: Vec2{X: 0.15, Y: 0}, Radius: 2, Opacity: 0.3,
	}}}

	f.Step()
	p := f.Particles[0]
	assert.InDelta(t, 100.05, p.Pos.X, 1e-9)
	assert.InDelta(t, -0.15, p.Vel.X, 1e-9)
	assert.Equal(t, 0.0, p.Vel.Y)
	assert.Equal(t, 2.0, p.Radius)
	assert.Equal(t, 0.3, p.Opacity)

	f.Step()
	assert.InDelta(t, 99.9, f.Particles[0].Pos.X, 1e-9)
	assert.InDelta(t, -0.15, f.Particles[0].Vel.X, 1e-9, "no second flip while heading inward")
}

func TestFieldStaysNearBounds(t *testing.T) {
	f := NewField(50, 80, 40, rand.New(rand.NewSource(1)))
	for i := 0; i < 5000; i++ {
		f.Step()
	}
	slack := ParticleSpeed
	for _, p := range f.Particles {
		assert.True(t, p.Pos.X >= -slack && p.Pos.X <= f.W+slack, "x=%v", p.Pos.X)
		assert.True(t, p.Pos.Y >= -slack && p.Pos.Y <= f.H+slack, "y=%v", p.Pos.Y)
		assert.LessOrEqual(t, math.Abs(p.Vel.X), ParticleSpeed/2)
	}
}

func TestFieldShrinkDriftsBackIn(t *testing.T) {
	f := &Field{W: 200, H: 200, Particles: []Particle{{Pos: Vec2{X: 150, Y: 10}, Vel: Vec2{X: 0.1}}}}
	f.Resize(100, 200)
	f.Step()
	assert.Less(t, f.Particles[0].Vel.X, 0.0)
	for i := 0; i < 600; i++ {
		f.Step()
	}
	assert.LessOrEqual(t, f.Particles[0].Pos.X, 100.0)
}

func TestPointerConverges(t *testing.T) {
	p := NewPointer()
	p.MoveTo(Vec2{X: 100, Y: 50})

	prev := p.Target.Sub(p.Current).Len()
	for i := 0; i < 60; i++ {
		p.Step()
		d := p.Target.Sub(p.Current).Len()
		require.Less(t, d, prev, "frame %d", i)
		require.LessOrEqual(t, p.Current.X, 100.0)
		prev = d
	}
	assert.InDelta(t, 100, p.Current.X, 0.01)
	assert.InDelta(t, 50, p.Current.Y, 0.01)
	assert.InDelta(t, 20.0, Approach(0, 100, PointerSmoothing), 1e-9)
}

type fixedScale float64

func (f fixedScale) TargetScale(float64) float64 { return float64(f) }

func TestSceneApproachesTarget(t *testing.T) {
	s := NewScene(rand.New(rand.NewSource(2)))
	s.Step(1.8)
	assert.InDelta(t, 1.032, s.CoreScale, 1e-9)
	assert.InDelta(t, 1.25+0.8*ScaleSmoothing, s.HaloScale, 1e-9)
	assert.InDelta(t, CoreSpinY, s.Core.Y, 1e-12)

	for i := 0; i < 400; i++ {
		s.Step(1.8)
	}
	assert.InDelta(t, 1.8, s.CoreScale, 1e-3)
	assert.InDelta(t, 2.05, s.HaloScale, 1e-3)
}

func TestEngineResizeKeepsState(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := New(WithPointer(), WithField(10, rng), WithScene(fixedScale(1.9), rng))
	e.Resize(80, 24)
	for i := 0; i < 30; i++ {
		e.Frame()
	}

	before := append([]Particle(nil), e.Field.Particles...)
	rot := e.Scene.Core
	scale := e.Scene.CoreScale
	cursor := e.Pointer.Current

	e.Resize(120, 40)
	assert.Equal(t, before, e.Field.Particles)
	assert.Equal(t, rot, e.Scene.Core)
	assert.Equal(t, scale, e.Scene.CoreScale)
	assert.Equal(t, cursor, e.Pointer.Current)
	assert.Equal(t, 120*CellWidth, e.Field.W)
	assert.Equal(t, uint64(30), e.Frames())
}

func TestEngineFirstResizeSpreadsField(t *testing.T) {
	e := New(WithField(40, rand.New(rand.NewSource(4))))
	e.Resize(10, 5)
	w, h := 10*CellWidth, 5*CellHeight
	for _, p := range e.Field.Particles {
		assert.True(t, p.Pos.X >= 0 && p.Pos.X <= w)
		assert.True(t, p.Pos.Y >= 0 && p.Pos.Y <= h)
	}
}

func TestEngineSkipsAbsentSimulations(t *testing.T) {
	e := New()
	e.Resize(40, 10)
	e.MoveCursor(3, 3)
	e.Frame()
	c := NewCanvas(40, 10)
	e.Draw(c)
	assert.Equal(t, strings.Repeat(" ", 40), c.Lines()[0])
	assert.Equal(t, uint64(1), e.Frames())
}

func TestBuildHonoursCapabilities(t *testing.T) {
	cfg := Config{Particles: 20, Rand: rand.New(rand.NewSource(5))}

	e := Build(cfg, Capabilities{})
	assert.Nil(t, e.Pointer)
	assert.Nil(t, e.Field)
	assert.Nil(t, e.Scene)

	e = Build(cfg, Capabilities{TTY: true})
	assert.NotNil(t, e.Pointer)
	assert.Nil(t, e.Field, "field needs color")
	assert.NotNil(t, e.Scene)

	e = Build(cfg, Capabilities{TTY: true, Color: true})
	assert.Len(t, e.Field.Particles, 20)

	cfg.NoScene = true
	cfg.Particles = 0
	e = Build(cfg, Capabilities{TTY: true, Color: true})
	assert.Nil(t, e.Scene)
	assert.Nil(t, e.Field)
}

func TestDrawPlotsCoreAndCursor(t *testing.T) {
	e := New(WithPointer(), WithScene(nil, rand.New(rand.NewSource(6))))
	e.Resize(60, 20)
	c := NewCanvas(60, 20)
	e.Draw(c)

	assert.True(t, strings.ContainsAny(c.Lines()[10], "-=+*#%"), "core shading on the middle row")
	_, ok := c.At(60, 0)
	assert.False(t, ok)

	e.Pointer.Current = Vec2{X: 2.5 * CellWidth, Y: 1.5 * CellHeight}
	e.Draw(c)
	cell, _ := c.At(2, 1)
	assert.Equal(t, '◉', cell.Rune)
	assert.NotEmpty(t, c.Render())
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Plot(-1, 0, 'x', StarColor, 1)
	c.Plot(3, 1, 'x', StarColor, 1)
	c.Plot(1, 1, 'x', StarColor, 1)
	assert.Equal(t, []string{"   ", " x "}, c.Lines())
}
