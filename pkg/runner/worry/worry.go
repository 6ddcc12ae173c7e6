package worry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/logging"
	"tableflip.dev/reignite/pkg/printers"
	"tableflip.dev/reignite/pkg/reminder"
)

// Set stores the daily worry time.
type Set struct {
	Service *app.Service
	At      string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (s *Set) Do(_ context.Context) error {
	if err := s.Service.SetWorryTime(s.At); err != nil {
		return err
	}
	pp := orDefault(s.Printer)
	at := s.Service.WorryTime()
	if s.JSON {
		return pp.JSON(map[string]string{"worryTime": at})
	}
	pp.Notice(app.WorrySaved(at))
	return nil
}

// Show prints the stored worry time.
type Show struct {
	Service *app.Service
	JSON    bool
	Printer *printers.PrettyPrint
}

func (s *Show) Do(_ context.Context) error {
	pp := orDefault(s.Printer)
	at := s.Service.WorryTime()
	if s.JSON {
		return pp.JSON(map[string]string{"worryTime": at})
	}
	if at == "" {
		pp.Notice("No worry time set.")
		return nil
	}
	pp.Notice("Daily worry time: " + at)
	return nil
}

// Watch polls until ctx is done, printing the alert when the worry time
// comes around.
type Watch struct {
	Service  *app.Service
	Interval time.Duration
	Printer  *printers.PrettyPrint
}

func (w *Watch) Do(ctx context.Context) error {
	pp := orDefault(w.Printer)
	rw := &reminder.Watcher{
		Journal: w.Service.Journal,
		Clock:   w.Service.Clock,
		Log:     w.Service.Log,
		Notify: func(msg string) {
			pp.Notice(fmt.Sprintf("%s  %s", w.Service.Clock.Now().Format("15:04"), msg))
		},
	}
	if !rw.Armed() {
		return fmt.Errorf("worry: no worry time set, run `reignite worry set HH:MM` first")
	}
	interval := w.Interval
	if interval <= 0 {
		interval = reminder.PollInterval
	}
	logging.OrNop(w.Service.Log).Info("watching for worry time", zap.String("at", w.Service.WorryTime()), zap.Duration("interval", interval))
	pp.Notice("Waiting for " + w.Service.WorryTime() + ", press ctrl+c to stop.")
	rw.Run(ctx, interval)
	return nil
}

func orDefault(pp *printers.PrettyPrint) *printers.PrettyPrint {
	if pp == nil {
		return &printers.PrettyPrint{}
	}
	return pp
}
