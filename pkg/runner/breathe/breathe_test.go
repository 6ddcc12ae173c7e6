package breathe

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/goleak"
)

func TestBreatheRunsCycles(t *testing.T) {
	defer goleak.VerifyNone(t)
	color.NoColor = true

	var b bytes.Buffer
	br := &Breathe{Cycles: 1, Interval: time.Millisecond, Out: &b}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := br.Do(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	// initial state, 16 ticks, idle label
	if len(lines) != 18 {
		t.Fatalf("expected 18 lines, got %d:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "Breathe In") || !strings.HasSuffix(lines[0], " 4") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "Hold") {
		t.Errorf("expected hold after four seconds, got %q", lines[4])
	}
	if lines[17] != "Click Start to Begin" {
		t.Errorf("unexpected last line %q", lines[17])
	}
}

func TestBreatheStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	color.NoColor = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var b bytes.Buffer
	if err := (&Breathe{Interval: time.Hour, Out: &b}).Do(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "Click Start to Begin") {
		t.Fatalf("expected idle label, got %q", b.String())
	}
}
