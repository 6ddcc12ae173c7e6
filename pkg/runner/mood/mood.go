// Package mood runs the mood check-in commands.
package mood

import (
	"context"
	"time"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/printers"
	"tableflip.dev/reignite/pkg/timeutil"
)

// Add records one check-in.
type Add struct {
	Service *app.Service
	Score   int
	Note    string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (a *Add) Do(_ context.Context) error {
	e, err := a.Service.SaveMood(a.Score, a.Note)
	if err != nil {
		return err
	}
	pp := printer(a.Printer)
	if a.JSON {
		return pp.JSON(e)
	}
	pp.Notice(app.MoodSaved)
	pp.NewLine()
	pp.Moods(a.Service.MoodHistory(0)...)
	return nil
}

// List shows recent check-ins, either the chart tail or a time window.
type List struct {
	Service *app.Service
	// Window, when set, lists everything within it instead of the last
	// app.ChartEntries check-ins. Calendar without a window covers the
	// current month.
	Window   time.Duration
	Calendar bool
	JSON     bool
	Printer  *printers.PrettyPrint
}

func (l *List) Do(_ context.Context) error {
	pp := printer(l.Printer)
	now := l.Service.Clock.Now()

	if l.Window <= 0 && !l.Calendar {
		entries := l.Service.MoodHistory(0)
		if l.JSON {
			return pp.JSON(entries)
		}
		pp.Moods(entries...)
		return nil
	}

	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if l.Window > 0 {
		since = timeutil.Since(now, l.Window)
	}
	r := l.Service.MoodReport(since, now)
	if l.JSON {
		return pp.JSON(r)
	}
	pp.Moods(r.Entries...)
	if l.Calendar {
		for m := time.Date(r.Since.Year(), r.Since.Month(), 1, 12, 0, 0, 0, now.Location()); !m.After(now); m = m.AddDate(0, 1, 0) {
			pp.MoodMonth(m, r.Entries...)
		}
		pp.Legend()
	}
	return nil
}

func printer(pp *printers.PrettyPrint) *printers.PrettyPrint {
	if pp == nil {
		return &printers.PrettyPrint{}
	}
	return pp
}
