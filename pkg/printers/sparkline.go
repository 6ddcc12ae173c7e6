package printers

import "tableflip.dev/reignite/pkg/journal"

var bars = []rune("▁▃▄▆█")

// Sparkline draws one bar per check-in, low to high by score.
func Sparkline(entries []journal.MoodEntry) string {
	out := make([]rune, 0, len(entries))
	for _, e := range entries {
		if e.MoodScore < 1 || e.MoodScore > len(bars) {
			out = append(out, ' ')
			continue
		}
		out = append(out, bars[e.MoodScore-1])
	}
	return string(out)
}
