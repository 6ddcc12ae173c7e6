package anim

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette used by the engine.
var (
	Background    = colorful.MustParseHex("#0b1320")
	ParticleColor = colorful.MustParseHex("#9b6bcc")
	CoreColor     = colorful.MustParseHex("#32b8c6")
	HaloColor     = colorful.MustParseHex("#9b6bcc")
	StarColor     = colorful.MustParseHex("#e8f1f5")
	CursorColor   = colorful.MustParseHex("#f5c2e7")
)

// Cell is one character of the canvas.
type Cell struct {
	Rune  rune
	Color colorful.Color
	Set   bool
}

// Canvas is a character-cell raster the engine draws into each frame.
type Canvas struct {
	W, H  int
	cells []Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the raster; contents are cleared.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.W, c.H = w, h
	c.cells = make([]Cell, w*h)
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// At returns the cell at col,row; ok is false outside the canvas.
func (c *Canvas) At(col, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= c.W || row >= c.H {
		return Cell{}, false
	}
	return c.cells[row*c.W+col], true
}

// Plot draws r at col,row in fg, blended over whatever is below by alpha.
// Out of range coordinates are ignored.
func (c *Canvas) Plot(col, row int, r rune, fg colorful.Color, alpha float64) {
	if col < 0 || row < 0 || col >= c.W || row >= c.H {
		return
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	cell := &c.cells[row*c.W+col]
	base := Background
	if cell.Set {
		base = cell.Color
	}
	cell.Rune = r
	cell.Color = base.BlendRgb(fg, alpha).Clamped()
	cell.Set = true
}

// Lines returns the canvas as plain text rows.
func (c *Canvas) Lines() []string {
	out := make([]string, c.H)
	var b strings.Builder
	for row := 0; row < c.H; row++ {
		b.Reset()
		for col := 0; col < c.W; col++ {
			cell := c.cells[row*c.W+col]
			if !cell.Set {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(cell.Rune)
		}
		out[row] = b.String()
	}
	return out
}

// Render returns the canvas as styled rows joined by newlines.
func (c *Canvas) Render() string {
	rows := make([]string, c.H)
	for row := range rows {
		rows[row] = c.RenderSpan(row, 0, c.W)
	}
	return strings.Join(rows, "\n")
}

// RenderSpan styles columns [from,to) of row. Runs of the same color share
// one style; unset cells are plain spaces.
func (c *Canvas) RenderSpan(row, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > c.W {
		to = c.W
	}
	if row < 0 || row >= c.H || from >= to {
		return ""
	}

	var b, run strings.Builder
	var runColor colorful.Color
	inRun := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if inRun {
			b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for col := from; col < to; col++ {
		cell := c.cells[row*c.W+col]
		if !cell.Set {
			if inRun {
				flush()
				inRun = false
			}
			run.WriteRune(' ')
			continue
		}
		if !inRun || cell.Color != runColor {
			flush()
			inRun = true
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return b.String()
}
