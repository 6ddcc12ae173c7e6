package theme

import "github.com/charmbracelet/lipgloss/v2"

// Palette shared with the animation.
var (
	Teal   = lipgloss.Color("#32b8c6")
	Violet = lipgloss.Color("#9b6bcc")
	Text   = lipgloss.Color("#e8f1f5")
	Dim    = lipgloss.Color("#a7b8c4")
	Alert  = lipgloss.Color("#f28b82")
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabTheme
	Panel  PanelTheme
	Modal  ModalTheme
	Footer FooterTheme
	Breath BreathTheme
}

// TabTheme styles the pane switcher across the top.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// PanelTheme styles the framed pane in the middle of the screen.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Label    lipgloss.Style
}

// ModalTheme styles notices that wait for a key press.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// BreathTheme styles the breathing instruction under the sphere.
type BreathTheme struct {
	Label lipgloss.Style
	Timer lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Tabs: TabTheme{
			Active:   lipgloss.NewStyle().Foreground(Teal).Bold(true).Underline(true),
			Inactive: lipgloss.NewStyle().Foreground(Dim),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Violet).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(Teal),
			Body:     lipgloss.NewStyle().Foreground(Text),
			Dim:      lipgloss.NewStyle().Foreground(Dim),
			Selected: lipgloss.NewStyle().Foreground(Violet).Bold(true),
			Done:     lipgloss.NewStyle().Foreground(Dim).Strikethrough(true),
			Label:    lipgloss.NewStyle().Foreground(Dim).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(Teal).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle().Foreground(Text),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(Alert),
		},
		Breath: BreathTheme{
			Label: lipgloss.NewStyle().Bold(true).Foreground(Text),
			Timer: lipgloss.NewStyle().Foreground(Teal),
		},
	}
}
