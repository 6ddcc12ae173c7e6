package app

import (
	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/journal"
)

// CompactResult counts the entries dropped from each log.
type CompactResult struct {
	Mood     int `json:"mood"`
	Thoughts int `json:"thoughts"`
}

// Compact trims the append-only logs to r. Logs grow without bound unless
// this is called; a zero Retention leaves them untouched.
func (s *Service) Compact(r journal.Retention) (CompactResult, error) {
	var res CompactResult
	if r.MaxEntries <= 0 {
		return res, nil
	}
	n, err := journal.Compact(s.Journal, journal.MoodLog, r)
	if err != nil {
		return res, err
	}
	res.Mood = n
	if n, err = journal.Compact(s.Journal, journal.ThoughtLog, r); err != nil {
		return res, err
	}
	res.Thoughts = n
	s.logger().Info("logs compacted",
		zap.Int("max_entries", r.MaxEntries),
		zap.Int("mood_dropped", res.Mood),
		zap.Int("thoughts_dropped", res.Thoughts))
	return res, nil
}
