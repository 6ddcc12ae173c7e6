package timeutil

import (
	"fmt"
	"time"

	"tableflip.dev/reignite/pkg/journal"
)

// SleepCycles are the suggested amounts of sleep, in full 90 minute cycles.
var SleepCycles = []time.Duration{
	6 * time.Hour,
	7*time.Hour + 30*time.Minute,
	9 * time.Hour,
}

// Bedtimes returns the HH:MM times to fall asleep to wake at wake after each
// of SleepCycles, wrapping past midnight.
func Bedtimes(wake string) ([]string, error) {
	if wake == "" {
		return nil, journal.MissingInput("Please choose the time you need to wake up.")
	}
	h, m, err := journal.ParseClock(wake)
	if err != nil {
		return nil, fmt.Errorf("timeutil: wake time: %w", err)
	}
	at := time.Date(2000, 1, 2, h, m, 0, 0, time.UTC)
	out := make([]string, 0, len(SleepCycles))
	for _, c := range SleepCycles {
		out = append(out, at.Add(-c).Format(journal.ClockLayout))
	}
	return out, nil
}
