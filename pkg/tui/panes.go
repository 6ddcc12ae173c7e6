package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/printers"
)

func (m *Model) renderPane() string {
	switch m.pane {
	case PaneMood:
		return m.renderMood()
	case PaneGratitude:
		return m.renderGratitude()
	case PaneThoughts:
		return m.renderThoughts()
	case PaneRoutine:
		return m.renderRoutine()
	case PaneWorry:
		return m.renderWorry()
	case PaneSleep:
		return m.renderSleep()
	case PaneCrisis:
		return m.renderCrisis()
	case PaneNotes:
		return m.renderNotes()
	}
	return ""
}

func (m *Model) wrap(s string) string {
	return wordwrap.String(s, m.innerWidth())
}

func (m *Model) hint(s string) string {
	return m.theme.Panel.Dim.Render(s)
}

// renderBreathe is the caption under the sphere.
func (m *Model) renderBreathe() string {
	b := m.theme.Breath
	label := b.Label.Render(m.machine.Label())
	if st := m.machine.Snapshot(); st.Running {
		label += "  " + b.Timer.Render(fmt.Sprintf("%ds", st.Remaining))
		return label + "\n" + m.hint("x stop")
	}
	return label + "\n" + m.hint("s start")
}

func (m *Model) renderMood() string {
	p := m.theme.Panel
	if len(m.moods) == 0 {
		return p.Body.Render("No check-ins yet.") + "\n\n" + m.hint("a add a check-in")
	}

	var b strings.Builder
	names := journal.MoodNames()
	for level := len(names); level >= 1; level-- {
		b.WriteString(p.Label.Render(fmt.Sprintf("%-11s", journal.MoodName(level))))
		for _, e := range m.moods {
			if e.MoodScore >= level {
				b.WriteString(p.Selected.Render("█ "))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(p.Dim.Render(fmt.Sprintf("%-11s%s", "trend", printers.Sparkline(m.moods))))
	b.WriteString("\n\n")

	shown := 0
	for i := len(m.moods) - 1; i >= 0 && shown < 3; i-- {
		e := m.moods[i]
		if e.Note == "" {
			continue
		}
		line := fmt.Sprintf("%s  %s  %s", e.Label, journal.MoodName(e.MoodScore), e.Note)
		b.WriteString(p.Body.Render(m.wrap(line)) + "\n")
		shown++
	}
	b.WriteString("\n" + m.hint("a add a check-in"))
	return b.String()
}

func (m *Model) renderGratitude() string {
	p := m.theme.Panel
	var b strings.Builder
	b.WriteString(p.Label.Render(m.wrap(m.prompt)) + "\n\n")
	if m.gratitude == nil {
		b.WriteString(p.Body.Render("Nothing saved yet."))
	} else {
		for i, e := range m.gratitude.Entries {
			if e == "" {
				continue
			}
			b.WriteString(p.Body.Render(m.wrap(fmt.Sprintf("%d. %s", i+1, e))) + "\n")
		}
		b.WriteString(p.Dim.Render("saved " + m.gratitude.Timestamp.Format(journal.LabelLayout+" "+journal.ClockLayout)))
	}
	b.WriteString("\n\n" + m.hint("a write · p new prompt"))
	return b.String()
}

func (m *Model) renderThoughts() string {
	p := m.theme.Panel
	if len(m.thoughts) == 0 {
		return p.Body.Render("Your thought diary is empty.") + "\n\n" + m.hint("a new entry")
	}
	var b strings.Builder
	recent := journal.Recent(m.thoughts, 3)
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		b.WriteString(p.Label.Render(e.Timestamp.Format(journal.LabelLayout+" "+journal.ClockLayout)) + "\n")
		b.WriteString(p.Body.Render(m.wrap("Situation: "+e.Situation)) + "\n")
		b.WriteString(p.Body.Render(m.wrap("Thought: "+e.Thought)) + "\n")
		if e.Balance != "" {
			b.WriteString(p.Selected.Render(m.wrap("Balanced: "+e.Balance)) + "\n")
		}
		b.WriteString("\n")
	}
	if n := len(m.thoughts) - len(recent); n > 0 {
		b.WriteString(p.Dim.Render(fmt.Sprintf("%d older entries", n)) + "\n\n")
	}
	b.WriteString(m.hint("a new entry"))
	return b.String()
}

func (m *Model) renderRoutine() string {
	p := m.theme.Panel
	var b strings.Builder
	done := 0
	for i, item := range m.routine {
		box := "[ ]"
		text := p.Body.Render(item.Text)
		if item.Checked {
			box = "[x]"
			text = p.Done.Render(item.Text)
			done++
		}
		cursor := "  "
		if i == m.routineCursor {
			cursor = p.Selected.Render("› ")
		}
		b.WriteString(cursor + box + " " + text + "\n")
	}
	b.WriteString("\n" + p.Dim.Render(fmt.Sprintf("%d of %d done", done, len(m.routine))))
	b.WriteString("\n\n" + m.hint("space tick · a add · d remove"))
	return b.String()
}

func (m *Model) renderWorry() string {
	p := m.theme.Panel
	var b strings.Builder
	b.WriteString(p.Body.Render(m.wrap("Pick a daily window for worries. When one shows up earlier, note it and let it wait until then.")) + "\n\n")
	if m.worry == "" {
		b.WriteString(p.Label.Render("No worry time set."))
	} else {
		b.WriteString(p.Label.Render("Daily worry time: ") + p.Selected.Render(m.worry))
	}
	b.WriteString("\n\n" + m.hint("a set time"))
	return b.String()
}

func (m *Model) renderSleep() string {
	p := m.theme.Panel
	var b strings.Builder
	b.WriteString(p.Body.Render(m.wrap("Sleep runs in roughly 90 minute cycles. Waking between cycles feels easier.")) + "\n\n")
	if len(m.bedtimes) == 0 {
		b.WriteString(p.Label.Render("Tell me when you need to wake up."))
	} else {
		b.WriteString(p.Label.Render("To wake at "+m.wake+", fall asleep at:") + "\n")
		b.WriteString(p.Selected.Render(strings.Join(m.bedtimes, "  ·  ")))
	}
	b.WriteString("\n\n" + m.hint("a wake-up time"))
	return b.String()
}

func (m *Model) renderCrisis() string {
	p := m.theme.Panel
	c := m.panel
	var b strings.Builder
	b.WriteString(p.Selected.Render(c.Title) + "\n")
	b.WriteString(p.Body.Render(m.wrap(c.Description)) + "\n\n")
	b.WriteString(p.Title.Render(c.Action) + "  " + p.Dim.Render(c.Target) + "\n")
	if c.Subtext != "" {
		b.WriteString(p.Label.Render(m.wrap(c.Subtext)) + "\n")
	}
	b.WriteString("\n")
	for _, l := range c.Links {
		b.WriteString(p.Body.Render("• "+l.Label) + "\n  " + p.Dim.Render(l.URL) + "\n")
	}
	hint := "a choose country"
	if m.country != "" {
		hint += " · c clear"
	}
	b.WriteString("\n" + m.hint(hint))
	return b.String()
}

func (m *Model) renderNotes() string {
	p := m.theme.Panel
	var b strings.Builder
	width := uint(max(m.innerWidth()-4, 8))
	for i, f := range journal.NoteFields() {
		title := noteTitles[f]
		preview := strings.TrimSpace(strings.SplitN(m.notes[f], "\n", 2)[0])
		if preview == "" {
			preview = "empty"
		}
		if i == m.noteCursor {
			b.WriteString(p.Selected.Render("› " + title))
		} else {
			b.WriteString(p.Body.Render("  " + title))
		}
		b.WriteString("\n    " + p.Dim.Render(truncate.StringWithTail(preview, width, "…")) + "\n")
	}
	b.WriteString("\n" + m.hint("enter edit · changes save as you type"))
	return b.String()
}
