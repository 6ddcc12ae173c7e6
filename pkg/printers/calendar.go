package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/reignite/pkg/journal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// MoodMonth prints a month grid with each day colored by that day's average
// mood. Days without a check-in are faint.
func (pp *PrettyPrint) MoodMonth(then time.Time, entries ...journal.MoodEntry) {
	days := DaysIn(then)
	sum := make([]int, days)
	count := make([]int, days)
	for _, e := range entries {
		t := e.Timestamp.Local()
		if t.Year() != then.Year() || t.Month() != then.Month() {
			continue
		}
		sum[t.Day()-1] += e.MoodScore
		count[t.Day()-1]++
	}

	tf := color.New(color.FgWhite, color.Italic)
	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.w(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	d := StartDay(then)
	_, _ = fmt.Fprint(pp.w(), strings.Repeat("   ", int(d)))

	faint := color.New(color.Faint, color.FgWhite)
	for i := 0; i < days; i++ {
		if count[i] == 0 {
			_, _ = faint.Fprintf(pp.w(), "%2d ", i+1)
		} else {
			avg := (sum[i] + count[i]/2) / count[i]
			_, _ = moodColor(avg).Fprintf(pp.w(), "%2d ", i+1)
		}
		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.w(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.w(), "\n\n")
}

// Legend prints the score colors used by MoodMonth.
func (pp *PrettyPrint) Legend() {
	for score := 5; score >= 1; score-- {
		_, _ = moodColor(score).Fprintf(pp.w(), "%d %s  ", score, journal.MoodName(score))
	}
	pp.NewLine()
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
