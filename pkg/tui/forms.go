package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
)

// form is a stack of labelled text inputs. submit returns the confirmation
// to show once the values are stored.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	submit func(values []string) (string, error)
	// onChange runs after every edit, for fields that save as you type.
	onChange func(values []string)
}

type fieldSpec struct {
	label       string
	placeholder string
	value       string
}

func newForm(title string, fields ...fieldSpec) *form {
	f := &form{title: title}
	for _, spec := range fields {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = spec.placeholder
		in.CharLimit = 500
		in.SetValue(spec.value)
		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *form) Focus() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) last() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) SetWidth(w int) {
	for i := range f.inputs {
		f.inputs[i].SetWidth(max(w-4, 8))
	}
}

func (f *form) View(t labelStyles) string {
	var b strings.Builder
	for i, in := range f.inputs {
		if i > 0 {
			b.WriteString("\n")
		}
		label := t.label.Render(f.labels[i])
		if i == f.focus {
			label = t.selected.Render(f.labels[i])
		}
		b.WriteString(label + "\n" + in.View())
	}
	b.WriteString("\n\n" + t.hint.Render("tab next field · enter save · esc cancel"))
	return b.String()
}

type labelStyles struct {
	label, selected, hint lipgloss.Style
}

// handleFormKey routes a key press to the open form.
func (m *Model) handleFormKey(msg tea.KeyPressMsg) tea.Cmd {
	f := m.form
	switch msg.String() {
	case "esc":
		m.closeForm()
		return nil
	case "tab", "down":
		return f.move(1)
	case "shift+tab", "up":
		return f.move(-1)
	case "enter":
		if !f.last() {
			return f.move(1)
		}
		return m.submitForm()
	}

	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.onChange != nil && f.inputs[f.focus].Value() != before {
		f.onChange(f.values())
	}
	return cmd
}

func (m *Model) submitForm() tea.Cmd {
	notice, err := m.form.submit(m.form.values())
	if err != nil {
		if errors.Is(err, journal.ErrMissingInput) {
			m.openModal("", err.Error())
			return nil
		}
		m.setError(err)
		return nil
	}
	m.closeForm()
	m.setStatus(notice)
	return nil
}

func (m *Model) openForm(f *form) tea.Cmd {
	m.form = f
	m.mode = modeForm
	f.SetWidth(m.panelWidth())
	return f.Focus()
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modeNormal
}

func (m *Model) moodForm() *form {
	f := newForm("How are you feeling?",
		fieldSpec{label: "Mood (1-5 or " + strings.Join(journal.MoodNames(), ", ") + ")", placeholder: "good"},
		fieldSpec{label: "Note (optional)", placeholder: "What is on your mind?"},
	)
	f.submit = func(v []string) (string, error) {
		score := 0
		if strings.TrimSpace(v[0]) != "" {
			s, ok := journal.ScoreFor(v[0])
			if !ok {
				return "", fmt.Errorf("unknown mood %q", strings.TrimSpace(v[0]))
			}
			score = s
		}
		e, err := m.svc.SaveMood(score, v[1])
		if err != nil {
			return "", err
		}
		moods := make([]journal.MoodEntry, 0, len(m.moods)+1)
		m.moods = journal.Recent(append(append(moods, m.moods...), e), app.ChartEntries)
		return app.MoodSaved, nil
	}
	return f
}

func (m *Model) gratitudeForm() *form {
	f := newForm("Three good things",
		fieldSpec{label: "1.", placeholder: m.prompt},
		fieldSpec{label: "2."},
		fieldSpec{label: "3."},
	)
	f.submit = func(v []string) (string, error) {
		g, err := m.svc.SaveGratitude(v[0], v[1], v[2])
		if err != nil {
			return "", err
		}
		m.gratitude = g
		return app.GratitudeSaved, nil
	}
	return f
}

func (m *Model) thoughtForm() *form {
	f := newForm("Thought diary",
		fieldSpec{label: "Situation", placeholder: "Where were you, what happened?"},
		fieldSpec{label: "Automatic thought", placeholder: "What went through your mind?"},
		fieldSpec{label: "Balanced thought (optional)", placeholder: "A kinder, more realistic view"},
	)
	f.submit = func(v []string) (string, error) {
		e, err := m.svc.SaveThought(v[0], v[1], v[2])
		if err != nil {
			return "", err
		}
		thoughts := make([]journal.ThoughtEntry, 0, len(m.thoughts)+1)
		m.thoughts = append(append(thoughts, m.thoughts...), e)
		return app.ThoughtSaved, nil
	}
	return f
}

func (m *Model) routineForm() *form {
	f := newForm("Add to your routine",
		fieldSpec{label: "Item", placeholder: "Stretch for five minutes"},
	)
	f.submit = func(v []string) (string, error) {
		items, err := m.svc.AddRoutineItem(v[0])
		if err != nil {
			return "", err
		}
		m.setRoutine(items)
		return app.RoutineSaved, nil
	}
	return f
}

func (m *Model) worryForm() *form {
	f := newForm("Daily worry time",
		fieldSpec{label: "Time (HH:MM)", placeholder: "18:30", value: m.worry},
	)
	f.submit = func(v []string) (string, error) {
		if err := m.svc.SetWorryTime(v[0]); err != nil {
			return "", err
		}
		h, mm, _ := journal.ParseClock(strings.TrimSpace(v[0]))
		m.worry = fmt.Sprintf("%02d:%02d", h, mm)
		return app.WorrySaved(m.worry), nil
	}
	return f
}

func (m *Model) sleepForm() *form {
	f := newForm("Sleep calculator",
		fieldSpec{label: "I need to wake up at (HH:MM)", placeholder: "07:00", value: m.wake},
	)
	f.submit = func(v []string) (string, error) {
		times, err := m.svc.Bedtimes(v[0])
		if err != nil {
			return "", err
		}
		m.wake, m.bedtimes = strings.TrimSpace(v[0]), times
		return "Try to fall asleep at one of these times.", nil
	}
	return f
}

func (m *Model) countryForm() *form {
	f := newForm("Where are you?",
		fieldSpec{label: "Country", placeholder: "United Kingdom", value: m.country},
	)
	f.submit = func(v []string) (string, error) {
		panel, err := m.svc.SetCountry(v[0])
		if err != nil {
			return "", err
		}
		m.country, m.panel = panel.Country, panel
		if panel.Local {
			return "Showing crisis support for " + panel.Country + ".", nil
		}
		return "No local line listed for " + panel.Country + "; showing global directories.", nil
	}
	return f
}

func (m *Model) noteForm(field journal.NoteField) *form {
	f := newForm(noteTitles[field],
		fieldSpec{label: "Notes", placeholder: "Type freely, everything is kept as you go", value: m.notes[field]},
	)
	f.inputs[0].CharLimit = 0
	f.onChange = func(v []string) {
		m.notes[field] = v[0]
		if err := m.svc.SetNote(field, v[0]); err != nil {
			m.setError(err)
		}
	}
	f.submit = func([]string) (string, error) {
		return "Notes saved.", nil
	}
	return f
}
