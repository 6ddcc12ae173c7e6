package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/reignite/pkg/crisis"
	"tableflip.dev/reignite/pkg/journal"
)

func init() {
	color.NoColor = true
}

func TestSparkline(t *testing.T) {
	entries := []journal.MoodEntry{{MoodScore: 1}, {MoodScore: 3}, {MoodScore: 5}, {MoodScore: 9}}
	if got := Sparkline(entries); got != "▁▄█ " {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestMoodsTable(t *testing.T) {
	var b bytes.Buffer
	pp := PrettyPrint{Out: &b}
	pp.Moods(journal.MoodEntry{
		Timestamp: journal.Now(time.Date(2024, 3, 3, 9, 0, 0, 0, time.Local)),
		MoodScore: 4,
		Note:      "walked",
	})
	out := b.String()
	for _, want := range []string{"Mood - 1 entry", "4 good", "walked", "Sun Mar 3 09:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRoutineAndEmpty(t *testing.T) {
	var b bytes.Buffer
	pp := PrettyPrint{Out: &b}
	pp.Routine(journal.RoutineItem{Text: "Read", Checked: true}, journal.RoutineItem{Text: "Tea"})
	pp.Thoughts()
	out := b.String()
	if !strings.Contains(out, "1. [x] Read") || !strings.Contains(out, "2. [ ] Tea") {
		t.Fatalf("unexpected routine output:\n%s", out)
	}
	if !strings.Contains(out, "none") {
		t.Fatalf("expected empty marker:\n%s", out)
	}
}

func TestCrisisPanel(t *testing.T) {
	var b bytes.Buffer
	pp := PrettyPrint{Out: &b}
	pp.Crisis(crisis.Localize("India"))
	out := b.String()
	if !strings.Contains(out, "Call 14416 (Tele-MANAS)") || !strings.Contains(out, crisis.Befrienders) {
		t.Fatalf("unexpected crisis output:\n%s", out)
	}
}

func TestMoodMonth(t *testing.T) {
	var b bytes.Buffer
	pp := PrettyPrint{Out: &b}
	march := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	pp.MoodMonth(march, journal.MoodEntry{Timestamp: journal.Now(march.AddDate(0, 0, 2)), MoodScore: 5})
	lines := strings.Split(b.String(), "\n")
	if !strings.Contains(lines[0], "March") {
		t.Fatalf("expected month header, got %q", lines[0])
	}
	// March 2024 starts on a Friday.
	if !strings.HasPrefix(lines[1], strings.Repeat("   ", 5)+" 1  2") {
		t.Fatalf("unexpected first week %q", lines[1])
	}
	if DaysIn(march) != 31 {
		t.Fatalf("expected 31 days")
	}
}
