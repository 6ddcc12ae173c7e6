// Package breathe runs the box-breathing timer without the full-screen UI.
package breathe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/reignite/pkg/phase"
)

// Breathe prints each second of the breathing cycle until ctx is done or
// Cycles full cycles have run. Zero Cycles runs until cancelled.
type Breathe struct {
	Cycles   int
	Interval time.Duration
	Out      io.Writer
}

func (b *Breathe) Do(ctx context.Context) error {
	out := b.Out
	if out == nil {
		out = color.Output
	}
	m := phase.Breathing()
	label := color.New(color.Bold, color.FgCyan)

	finished := make(chan struct{})
	ticks := 0
	total := b.Cycles * m.Len() * m.Duration()

	t := &phase.Ticker{
		Machine:  m,
		Interval: b.Interval,
		OnTick: func(s phase.TimerState) {
			if total > 0 && ticks >= total {
				return
			}
			ticks++
			printState(out, label, m, s)
			if total > 0 && ticks == total {
				close(finished)
			}
		},
	}
	m.Start()
	printState(out, label, m, m.Snapshot())
	t.Start(ctx)

	select {
	case <-ctx.Done():
	case <-finished:
	}
	t.Stop()
	_, _ = fmt.Fprintln(out, phase.IdleLabel)
	return nil
}

func printState(out io.Writer, label *color.Color, m *phase.Machine, s phase.TimerState) {
	p, ok := m.Current()
	if !ok {
		return
	}
	_, _ = label.Fprintf(out, "%-12s", p.Label)
	_, _ = fmt.Fprintf(out, " %d\n", s.Remaining)
}
