package app

import (
	"time"

	"tableflip.dev/reignite/pkg/journal"
)

// MoodReport summarizes the check-ins inside a time window.
type MoodReport struct {
	Since   time.Time           `json:"since"`
	Until   time.Time           `json:"until"`
	Entries []journal.MoodEntry `json:"entries"`
	Average float64             `json:"average"`
	// Counts[i] is the number of check-ins with score i+1.
	Counts [5]int `json:"counts"`
}

// Total is the number of check-ins in the window.
func (r MoodReport) Total() int {
	return len(r.Entries)
}

// MoodReport returns the check-ins between since and until, oldest first.
// Entries with no timestamp are skipped.
func (s *Service) MoodReport(since, until time.Time) MoodReport {
	if since.After(until) {
		since, until = until, since
	}
	r := MoodReport{Since: since, Until: until, Entries: []journal.MoodEntry{}}
	sum := 0
	for _, e := range journal.Load(s.Journal, journal.MoodLog) {
		if e.Timestamp.IsZero() || e.Timestamp.Before(since) || e.Timestamp.After(until) {
			continue
		}
		if e.MoodScore < 1 || e.MoodScore > 5 {
			continue
		}
		r.Entries = append(r.Entries, e)
		r.Counts[e.MoodScore-1]++
		sum += e.MoodScore
	}
	if len(r.Entries) > 0 {
		r.Average = float64(sum) / float64(len(r.Entries))
	}
	return r
}

// ThoughtsSince returns thought-diary records written at or after since.
func (s *Service) ThoughtsSince(since time.Time) []journal.ThoughtEntry {
	out := []journal.ThoughtEntry{}
	for _, e := range s.Thoughts() {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out
}
