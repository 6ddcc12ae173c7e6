package anim

// PointerSmoothing is the per-frame fraction the drawn cursor closes on the
// real pointer.
const PointerSmoothing = 0.2

// Pointer trails the mouse. Target is set from input events; Current moves
// toward it once per frame and never jumps.
type Pointer struct {
	Target  Vec2
	Current Vec2
	Factor  float64
}

func NewPointer() *Pointer {
	return &Pointer{Factor: PointerSmoothing}
}

// MoveTo records a new pointer position. It takes effect over the next frames.
func (p *Pointer) MoveTo(pos Vec2) {
	p.Target = pos
}

// Step advances Current one frame.
func (p *Pointer) Step() {
	p.Current.X = Approach(p.Current.X, p.Target.X, p.Factor)
	p.Current.Y = Approach(p.Current.Y, p.Target.Y, p.Factor)
}
