package journal

import (
	"strconv"
	"strings"
)

var moodScores = map[string]int{
	"great":      5,
	"good":       4,
	"okay":       3,
	"low":        2,
	"struggling": 1,
	"happy":      5,
	"calm":       4,
	"neutral":    3,
	"sad":        2,
	"awful":      1,
}

// MoodNames lists the primary mood words from best to worst.
func MoodNames() []string {
	return []string{"great", "good", "okay", "low", "struggling"}
}

// ScoreFor maps either an explicit score ("1".."5") or a mood word to a score.
func ScoreFor(v string) (int, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if n, err := strconv.Atoi(v); err == nil {
		if n >= 1 && n <= 5 {
			return n, true
		}
		return 0, false
	}
	score, ok := moodScores[v]
	return score, ok
}

// MoodName is the primary word for score, or "" when out of range.
func MoodName(score int) string {
	names := MoodNames()
	if score < 1 || score > len(names) {
		return ""
	}
	return names[len(names)-score]
}
