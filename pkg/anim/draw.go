package anim

import "math"

const shadeRamp = " .:-=+*#%@"

// Draw renders the current state of every simulation into c, which should
// match the size passed to Resize.
func (e *Engine) Draw(c *Canvas) {
	c.Clear()
	if e.Field != nil {
		drawField(c, e.Field)
	}
	if e.Scene != nil {
		drawScene(c, e.Scene)
	}
	if e.Pointer != nil {
		col := int(e.Pointer.Current.X / CellWidth)
		row := int(e.Pointer.Current.Y / CellHeight)
		c.Plot(col, row, '◉', CursorColor, 1)
	}
}

func drawField(c *Canvas, f *Field) {
	for _, p := range f.Particles {
		r := '·'
		switch {
		case p.Radius >= 2.4:
			r = '●'
		case p.Radius >= 1.7:
			r = '•'
		}
		c.Plot(int(p.Pos.X/CellWidth), int(p.Pos.Y/CellHeight), r, ParticleColor, p.Opacity)
	}
}

// toCell maps normalized device coordinates to a canvas cell.
func toCell(c *Canvas, x, y float64) (int, int) {
	col := int(math.Floor((x + 1) / 2 * float64(c.W)))
	row := int(math.Floor((1 - y) / 2 * float64(c.H)))
	return col, row
}

func drawScene(c *Canvas, s *Scene) {
	for _, p := range s.StarPositions() {
		if x, y, ok := s.Project(p); ok {
			col, row := toCell(c, x, y)
			c.Plot(col, row, '.', StarColor, 0.7)
		}
	}

	halo := s.HaloPoints(10, 16)
	for _, p := range halo {
		if p.Z < 0 {
			plotHalo(c, s, p)
		}
	}
	drawCore(c, s)
	for _, p := range halo {
		if p.Z >= 0 {
			plotHalo(c, s, p)
		}
	}
}

func plotHalo(c *Canvas, s *Scene, p Vec3) {
	if x, y, ok := s.Project(p); ok {
		col, row := toCell(c, x, y)
		c.Plot(col, row, '·', HaloColor, 0.35)
	}
}

// drawCore shades the cells covered by the core's silhouette.
func drawCore(c *Canvas, s *Scene) {
	if c.W == 0 || c.H == 0 {
		return
	}
	radius := CoreRadius * s.CoreScale
	f := 1 / math.Tan(FOV*math.Pi/360)
	ry := f * radius / math.Sqrt(CameraZ*CameraZ-radius*radius)
	aspect := s.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	rx := ry / aspect

	for row := 0; row < c.H; row++ {
		y := 1 - (float64(row)+0.5)/float64(c.H)*2
		dy := y / ry
		if dy < -1 || dy > 1 {
			continue
		}
		for col := 0; col < c.W; col++ {
			x := (float64(col)+0.5)/float64(c.W)*2 - 1
			dx := x / rx
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			n := Vec3{X: dx, Y: dy, Z: math.Sqrt(1 - d2)}
			shade := s.CoreShade(n)
			idx := 1 + int(shade*float64(len(shadeRamp)-2))
			if idx >= len(shadeRamp) {
				idx = len(shadeRamp) - 1
			}
			c.Plot(col, row, rune(shadeRamp[idx]), CoreColor, 0.3+0.6*shade)
		}
	}
}
