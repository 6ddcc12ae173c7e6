package anim

import (
	"math/rand"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities describe what the output terminal can show.
type Capabilities struct {
	// TTY is true for an interactive terminal: needed for mouse tracking and
	// the full-screen sphere.
	TTY bool
	// Color is true when the terminal renders color, without which particle
	// opacity cannot be shown.
	Color bool
}

// Detect inspects f.
func Detect(f *os.File) Capabilities {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	profile := termenv.NewOutput(f).ColorProfile()
	return Capabilities{TTY: tty, Color: tty && profile != termenv.Ascii}
}

// Config chooses which simulations to build.
type Config struct {
	Particles int
	NoPointer bool
	NoField   bool
	NoScene   bool
	Source    ScaleSource
	Rand      *rand.Rand
}

// Build constructs an Engine with every simulation that both cfg and caps
// allow. A missing capability drops only its own simulation.
func Build(cfg Config, caps Capabilities) *Engine {
	var opts []Option
	if caps.TTY && !cfg.NoPointer {
		opts = append(opts, WithPointer())
	}
	if caps.Color && !cfg.NoField && cfg.Particles > 0 {
		opts = append(opts, WithField(cfg.Particles, cfg.Rand))
	}
	if caps.TTY && !cfg.NoScene {
		opts = append(opts, WithScene(cfg.Source, cfg.Rand))
	}
	return New(opts...)
}
