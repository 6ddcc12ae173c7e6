package thought

import (
	"context"
	"time"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/printers"
	"tableflip.dev/reignite/pkg/timeutil"
)

// Add appends a thought-diary record.
type Add struct {
	Service   *app.Service
	Situation string
	Thought   string
	Balance   string
	JSON      bool
	Printer   *printers.PrettyPrint
}

func (a *Add) Do(_ context.Context) error {
	e, err := a.Service.SaveThought(a.Situation, a.Thought, a.Balance)
	if err != nil {
		return err
	}
	pp := a.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if a.JSON {
		return pp.JSON(e)
	}
	pp.Notice(app.ThoughtSaved)
	return nil
}

// List prints the diary, optionally limited to a lookback window.
type List struct {
	Service *app.Service
	Window  time.Duration
	ShowID  bool
	JSON    bool
	Printer *printers.PrettyPrint
}

func (l *List) Do(_ context.Context) error {
	pp := l.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: l.ShowID}
	}
	entries := l.Service.Thoughts()
	if l.Window > 0 {
		entries = l.Service.ThoughtsSince(timeutil.Since(l.Service.Clock.Now(), l.Window))
	}
	if l.JSON {
		return pp.JSON(entries)
	}
	pp.Thoughts(entries...)
	return nil
}
