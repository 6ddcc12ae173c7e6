package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/reignite/pkg/crisis"
	"tableflip.dev/reignite/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) w() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// Writer is where pp prints.
func (pp *PrettyPrint) Writer() io.Writer {
	return pp.w()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.w(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.w(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.w(), title)
	_, _ = c.Fprintf(pp.w(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.w(), " entry")
	default:
		_, _ = c.Fprintln(pp.w(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.w(), " none\n\n")
}

// Notice prints a confirmation line.
func (pp *PrettyPrint) Notice(msg string) {
	_, _ = color.New(color.FgGreen).Fprintln(pp.w(), msg)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	enc := json.NewEncoder(pp.w())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// moodColors index by score-1.
var moodColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgYellow),
	color.New(color.FgWhite),
	color.New(color.FgCyan),
	color.New(color.FgMagenta, color.Bold),
}

func moodColor(score int) *color.Color {
	if score < 1 || score > len(moodColors) {
		return color.New(color.Faint)
	}
	return moodColors[score-1]
}

func (pp *PrettyPrint) Moods(entries ...journal.MoodEntry) {
	pp.TitleWithCount("Mood", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}
	_, _ = fmt.Fprintf(pp.w(), "%s\n\n", Sparkline(entries))

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, e := range entries {
		row := []interface{}{
			e.Timestamp.Local().Format("Mon Jan 2 15:04"),
			moodColor(e.MoodScore).Sprintf("%d %s", e.MoodScore, journal.MoodName(e.MoodScore)),
			e.Note,
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Thoughts(entries ...journal.ThoughtEntry) {
	pp.TitleWithCount("Thought diary", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}
	label := color.New(color.Faint)
	when := color.New(color.Bold)
	for _, e := range entries {
		_, _ = when.Fprintln(pp.w(), e.Timestamp.Local().Format("Mon Jan 2 15:04"))
		if pp.ShowID {
			_, _ = label.Fprintf(pp.w(), "  id         %s\n", e.ID)
		}
		_, _ = label.Fprint(pp.w(), "  situation  ")
		_, _ = fmt.Fprintln(pp.w(), e.Situation)
		_, _ = label.Fprint(pp.w(), "  thought    ")
		_, _ = fmt.Fprintln(pp.w(), e.Thought)
		if e.Balance != "" {
			_, _ = label.Fprint(pp.w(), "  balance    ")
			_, _ = fmt.Fprintln(pp.w(), e.Balance)
		}
		pp.NewLine()
	}
}

func (pp *PrettyPrint) Routine(items ...journal.RoutineItem) {
	pp.Title("Nightly routine")
	done := color.New(color.Faint, color.CrossedOut)
	tbl := uitable.New()
	tbl.Separator = " "
	for i, it := range items {
		if it.Checked {
			tbl.AddRow(fmt.Sprintf("%d.", i+1), "[x]", done.Sprint(it.Text))
		} else {
			tbl.AddRow(fmt.Sprintf("%d.", i+1), "[ ]", it.Text)
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Gratitude(g *journal.GratitudeEntry) {
	pp.Title("Gratitude")
	if g == nil {
		pp.none()
		return
	}
	_, _ = color.New(color.Faint).Fprintln(pp.w(), g.Timestamp.Local().Format("Mon Jan 2 15:04"))
	for i, e := range g.Entries {
		if e == "" {
			continue
		}
		_, _ = fmt.Fprintf(pp.w(), "%d. %s\n", i+1, e)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Crisis(p crisis.Panel) {
	pp.Title(p.Title)
	_, _ = fmt.Fprintln(pp.w(), p.Description)
	_, _ = color.New(color.Bold, color.FgRed).Fprintf(pp.w(), "\n  %s", p.Action)
	_, _ = color.New(color.Faint).Fprintf(pp.w(), "  %s\n", p.Target)
	_, _ = fmt.Fprintf(pp.w(), "  %s\n\n", p.Subtext)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, l := range p.Links {
		tbl.AddRow(l.Label, color.New(color.Underline).Sprint(l.URL))
	}
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Bedtimes(wake string, times []string) {
	_, _ = fmt.Fprintf(pp.w(), "To wake up around %s, try falling asleep at one of these times (including ~15 minutes to fall asleep):\n\n  ", color.New(color.Bold).Sprint(wake))
	_, _ = fmt.Fprintln(pp.w(), strings.Join(times, "  ·  "))
	pp.NewLine()
}

// Note prints one free-text field.
func (pp *PrettyPrint) Note(field journal.NoteField, text string) {
	pp.Title(string(field))
	if text == "" {
		pp.none()
		return
	}
	_, _ = fmt.Fprintln(pp.w(), text)
	pp.NewLine()
}
