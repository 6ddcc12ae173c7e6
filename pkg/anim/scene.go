package anim

import (
	"math"
	"math/rand"
)

// Scene defaults, per frame.
const (
	ScaleSmoothing = 0.04
	IdleScale      = 1.0
	HaloOffset     = 0.25

	CoreSpinY  = 0.003
	HaloSpinY  = -0.002
	HaloSpinX  = 0.001
	StarsSpinY = 0.0008

	CoreRadius = 1.0
	HaloRadius = 1.2
	StarCount  = 400
	StarSpread = 6.0

	CameraZ = 4.2
	FOV     = 60.0 // vertical, degrees
)

// ScaleSource supplies the scale the breathing sphere should grow toward.
// *phase.Machine implements it.
type ScaleSource interface {
	TargetScale(idle float64) float64
}

// Scene is the breathing sphere: a shaded core, a wireframe halo around it
// and a slowly turning star backdrop.
type Scene struct {
	CoreScale float64
	HaloScale float64
	Core      Euler
	Halo      Euler
	Stars     Euler
	Points    []Vec3

	// Aspect is viewport width over height in square units.
	Aspect float64
}

// NewScene places StarCount backdrop stars in a cube of side StarSpread.
func NewScene(rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Scene{
		CoreScale: IdleScale,
		HaloScale: IdleScale + HaloOffset,
		Points:    make([]Vec3, StarCount),
		Aspect:    1,
	}
	for i := range s.Points {
		s.Points[i] = Vec3{
			X: (rng.Float64() - 0.5) * StarSpread,
			Y: (rng.Float64() - 0.5) * StarSpread,
			Z: (rng.Float64() - 0.5) * StarSpread,
		}
	}
	return s
}

// Step spins every object and eases both shells toward target (the core)
// and target+HaloOffset (the halo). Rotation does not depend on target.
func (s *Scene) Step(target float64) {
	s.Core.Y += CoreSpinY
	s.Halo.Y += HaloSpinY
	s.Halo.X += HaloSpinX
	s.Stars.Y += StarsSpinY

	s.CoreScale = Approach(s.CoreScale, target, ScaleSmoothing)
	s.HaloScale = Approach(s.HaloScale, target+HaloOffset, ScaleSmoothing)
}

// Resize updates the projection for a cols by rows viewport. Nothing else
// about the scene changes.
func (s *Scene) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.Aspect = (float64(cols) * CellWidth) / (float64(rows) * CellHeight)
}

// Project maps a scene point to normalized device coordinates in [-1,1]
// (y up). ok is false for points at or behind the camera.
func (s *Scene) Project(p Vec3) (x, y float64, ok bool) {
	depth := CameraZ - p.Z
	if depth <= 0.1 {
		return 0, 0, false
	}
	f := 1 / math.Tan(FOV*math.Pi/360)
	aspect := s.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return p.X * f / (depth * aspect), p.Y * f / depth, true
}

// StarPositions returns the backdrop stars after rotation.
func (s *Scene) StarPositions() []Vec3 {
	out := make([]Vec3, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.RotateY(s.Stars.Y)
	}
	return out
}

// HaloPoints samples the halo wireframe along lat rings and lon meridians.
func (s *Scene) HaloPoints(lat, lon int) []Vec3 {
	if lat < 2 {
		lat = 2
	}
	if lon < 3 {
		lon = 3
	}
	r := HaloRadius * s.HaloScale
	out := make([]Vec3, 0, lat*lon*2)
	for i := 1; i < lat; i++ {
		theta := math.Pi * float64(i) / float64(lat)
		for j := 0; j < lon*2; j++ {
			phi := math.Pi * float64(j) / float64(lon)
			out = append(out, s.haloPoint(r, theta, phi))
		}
	}
	for j := 0; j < lon; j++ {
		phi := 2 * math.Pi * float64(j) / float64(lon)
		for i := 0; i <= lat*2; i++ {
			theta := math.Pi * float64(i) / float64(lat*2)
			out = append(out, s.haloPoint(r, theta, phi))
		}
	}
	return out
}

func (s *Scene) haloPoint(r, theta, phi float64) Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	p := Vec3{X: r * st * cp, Y: r * ct, Z: r * st * sp}
	return p.RotateX(s.Halo.X).RotateY(s.Halo.Y)
}

// CoreShade returns the lit intensity in [0,1] of the core surface point
// whose view-space normal is n, using the core's spin to band the surface
// so rotation is visible.
func (s *Scene) CoreShade(n Vec3) float64 {
	light := Vec3{X: 4, Y: 6, Z: 5}.Normalize()
	diffuse := math.Max(0, n.Dot(light))
	local := n.RotateY(-s.Core.Y)
	lon := math.Atan2(local.Z, local.X)
	band := 0.88 + 0.12*math.Cos(6*lon)
	v := (0.35 + 0.65*diffuse) * band
	return math.Min(1, math.Max(0, v))
}
