// Package reminder implements the once-a-day worry-time alert.
package reminder

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/clock"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/logging"
)

// PollInterval is how often the wall clock is compared to the worry time.
const PollInterval = 30 * time.Second

// Message is the text of the worry-time alert.
const Message = `This is your scheduled "worry time". If worries pop up earlier in the day, try to park them until this window.`

// Watcher fires Notify when the clock reaches the stored worry time, at most
// once per calendar day.
type Watcher struct {
	Journal *journal.Journal
	Clock   clock.Clock
	Notify  func(msg string)
	Log     *zap.Logger

	mu    sync.Mutex
	fired string
}

func (w *Watcher) now() time.Time {
	if w.Clock == nil {
		return time.Now()
	}
	return w.Clock.Now()
}

// Armed reports whether a worry time has been stored.
func (w *Watcher) Armed() bool {
	return journal.Load(w.Journal, journal.WorryTime) != ""
}

// Check compares now against the stored worry time and fires when they
// match and no alert has been recorded for today. It reports whether it
// fired.
func (w *Watcher) Check(now time.Time) bool {
	target := journal.Load(w.Journal, journal.WorryTime)
	if target == "" || now.Format(journal.ClockLayout) != target {
		return false
	}
	today := journal.DayKey(now)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fired == today || journal.Load(w.Journal, journal.WorryAlertDay) == today {
		return false
	}
	// w.fired covers the case where the store drops the write.
	w.fired = today
	journal.Save(w.Journal, journal.WorryAlertDay, today)
	logging.OrNop(w.Log).Info("worry time reached", zap.String("time", target), zap.String("day", today))
	if w.Notify != nil {
		w.Notify(Message)
	}
	return true
}

// Run polls every interval until ctx is done. It returns immediately when no
// worry time is stored.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) {
	if !w.Armed() {
		return
	}
	if interval <= 0 {
		interval = PollInterval
	}
	tk := time.NewTicker(interval)
	defer tk.Stop()

	w.Check(w.now())
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			w.Check(w.now())
		}
	}
}
