package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reignite/pkg/tui/help"
)

const (
	headerRows = 1
	footerRows = 1
	maxPanel   = 72
)

func (m *Model) bodySize() (int, int) {
	return max(m.width, 0), max(m.height-headerRows-footerRows, 0)
}

// layout resizes everything that depends on the terminal size.
func (m *Model) layout() {
	w, h := m.bodySize()
	m.engine.Resize(w, h)
	m.canvas.Resize(w, h)
	if m.form != nil {
		m.form.SetWidth(m.panelWidth())
	}
	hw, hh := min(max(w-4, 1), 80), max(h-2, 1)
	if m.help == nil {
		m.help = help.New(hw, hh)
	} else {
		m.help.SetSize(hw, hh)
	}
}

func (m *Model) panelWidth() int {
	return min(max(m.width-4, 20), maxPanel)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading…"
	}
	w, h := m.bodySize()
	m.engine.Draw(m.canvas)

	block, atBottom := m.overlay()
	bw, bh := blockSize(block)
	x := max((w-bw)/2, 0)
	y := max((h-bh)/2, 0)
	if atBottom {
		y = max(h-bh-1, 0)
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.header())
	blockLines := strings.Split(block, "\n")
	for r := 0; r < h; r++ {
		i := r - y
		if block == "" || i < 0 || i >= len(blockLines) {
			rows = append(rows, m.canvas.RenderSpan(r, 0, w))
			continue
		}
		line := blockLines[i]
		pad := bw - lipgloss.Width(line)
		rows = append(rows,
			m.canvas.RenderSpan(r, 0, x)+line+strings.Repeat(" ", max(pad, 0))+m.canvas.RenderSpan(r, x+bw, w))
	}
	rows = append(rows, m.footer())
	return strings.Join(rows, "\n")
}

// overlay is the block drawn over the background: help, a modal, an open
// form, or the current pane.
func (m *Model) overlay() (block string, atBottom bool) {
	switch m.mode {
	case modeHelp:
		if m.help != nil {
			return m.help.View(), false
		}
	case modeModal:
		return m.renderModal(), false
	case modeForm:
		return m.framed(m.form.title, m.form.View(m.labelStyles())), false
	}
	if m.pane == PaneBreathe {
		return m.renderBreathe(), true
	}
	return m.framed(m.pane.String(), m.renderPane()), false
}

func blockSize(block string) (int, int) {
	if block == "" {
		return 0, 0
	}
	return lipgloss.Width(block), lipgloss.Height(block)
}

func (m *Model) header() string {
	t := m.theme.Tabs
	parts := make([]string, 0, paneCount)
	for p := Pane(0); p < paneCount; p++ {
		label := fmt.Sprintf("%d %s", p+1, p)
		if p == m.pane {
			parts = append(parts, t.Active.Render(label))
		} else {
			parts = append(parts, t.Inactive.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

func (m *Model) footer() string {
	f := m.theme.Footer
	status := f.Status.Render(m.status)
	if m.statusErr {
		status = f.Error.Render(m.status)
	}
	line := f.Help.Render("? help · tab switch · q quit") + "  " + status
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m *Model) framed(title, body string) string {
	p := m.theme.Panel
	inner := m.innerWidth()
	content := p.Title.Render(title) + "\n\n" + body
	return p.Frame.Render(lipgloss.NewStyle().Width(inner).Render(content))
}

// innerWidth is the text width available inside a pane frame.
func (m *Model) innerWidth() int {
	return max(m.panelWidth()-m.theme.Panel.Frame.GetHorizontalFrameSize(), 10)
}

func (m *Model) renderModal() string {
	t := m.theme.Modal
	width := min(max(m.width-8, 20), 60)
	body := t.Body.Width(width).Render(m.modal.body)
	if m.modal.title != "" {
		body = t.Title.Render(m.modal.title) + "\n\n" + body
	}
	body += "\n\n" + m.theme.Panel.Dim.Render("press enter to continue")
	return t.Frame.Render(body)
}

func (m *Model) labelStyles() labelStyles {
	p := m.theme.Panel
	return labelStyles{label: p.Label, selected: p.Selected, hint: p.Dim}
}
