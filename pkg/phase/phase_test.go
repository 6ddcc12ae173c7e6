package phase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestBreathingTwentySecondsAdvancesFiveTimes(t *testing.T) {
	m := Breathing()
	gen, started := m.Start()
	if !started {
		t.Fatalf("expected start from idle")
	}

	advances := 0
	last := m.Snapshot().Index
	for i := 0; i < 20; i++ {
		if !m.Tick(gen) {
			t.Fatalf("tick %d rejected", i)
		}
		if idx := m.Snapshot().Index; idx != last {
			advances++
			last = idx
		}
	}
	if advances != 5 {
		t.Fatalf("expected 5 advances, got %d", advances)
	}
	s := m.Snapshot()
	if s.Index != 1 || s.Remaining != 4 {
		t.Fatalf("expected Running(1, 4), got %+v", s)
	}
	if m.Label() != "Hold" {
		t.Fatalf("expected Hold, got %q", m.Label())
	}
}

func TestTickCountsDown(t *testing.T) {
	m := Breathing()
	gen, _ := m.Start()
	m.Tick(gen)
	m.Tick(gen)
	if s := m.Snapshot(); s.Index != 0 || s.Remaining != 2 {
		t.Fatalf("expected Running(0, 2), got %+v", s)
	}
}

func TestStopThenStartResets(t *testing.T) {
	m := Breathing()
	gen, _ := m.Start()
	for i := 0; i < 7; i++ {
		m.Tick(gen)
	}
	m.Stop()
	if s := m.Snapshot(); s.Running || s.Index != 0 || s.Remaining != 4 {
		t.Fatalf("expected idle reset, got %+v", s)
	}
	if m.Label() != IdleLabel {
		t.Fatalf("expected idle label, got %q", m.Label())
	}

	gen2, started := m.Start()
	if !started {
		t.Fatalf("expected restart")
	}
	if s := m.Snapshot(); !s.Running || s.Index != 0 || s.Remaining != 4 {
		t.Fatalf("expected Running(0, 4), got %+v", s)
	}
	if m.Tick(gen) {
		t.Fatalf("stale generation must not tick")
	}
	if !m.Tick(gen2) {
		t.Fatalf("current generation should tick")
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	m := Breathing()
	gen, _ := m.Start()
	m.Tick(gen)
	again, started := m.Start()
	if started {
		t.Fatalf("second start must not restart")
	}
	if again != gen {
		t.Fatalf("expected live generation %d, got %d", gen, again)
	}
	if s := m.Snapshot(); s.Remaining != 3 {
		t.Fatalf("second start must not reset, got %+v", s)
	}
}

func TestTickWhileIdleIgnored(t *testing.T) {
	m := Breathing()
	if m.Tick(0) {
		t.Fatalf("idle machine accepted a tick")
	}
}

func TestTargetScale(t *testing.T) {
	m := Breathing()
	if got := m.TargetScale(1.0); got != 1.0 {
		t.Fatalf("expected idle scale, got %v", got)
	}
	m.Start()
	if got := m.TargetScale(1.0); got != 1.8 {
		t.Fatalf("expected Breathe In scale, got %v", got)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(nil, 4); err == nil {
		t.Fatalf("expected error for empty phases")
	}
	if _, err := New(BreathingPhases(), 0); err == nil {
		t.Fatalf("expected error for zero duration")
	}
}

func TestTickerSingleSourceAndStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	ticks := 0
	tk := &Ticker{
		Machine:  Breathing(),
		Interval: 5 * time.Millisecond,
		OnTick: func(TimerState) {
			mu.Lock()
			ticks++
			mu.Unlock()
		},
	}
	tk.Start(context.Background())
	tk.Start(context.Background())

	time.Sleep(60 * time.Millisecond)
	tk.Stop()

	mu.Lock()
	n := ticks
	mu.Unlock()
	if n == 0 {
		t.Fatalf("expected ticks while running")
	}
	// A single 5ms source cannot deliver more than ~12 ticks in 60ms.
	if n > 14 {
		t.Fatalf("expected one tick source, saw %d ticks", n)
	}

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	after := ticks
	mu.Unlock()
	if after != n {
		t.Fatalf("tick landed after Stop: %d -> %d", n, after)
	}
	if tk.Machine.Running() {
		t.Fatalf("machine should be idle after Stop")
	}
}

func TestTickerStopFromOnTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	tk := &Ticker{Machine: Breathing(), Interval: time.Millisecond}
	tk.OnTick = func(TimerState) {
		if calls.Add(1) == 2 {
			tk.Stop()
		}
	}
	tk.Start(context.Background())

	finished := make(chan struct{})
	go func() {
		tk.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("tick goroutine did not exit after Stop from OnTick")
	}
	if tk.Machine.Running() {
		t.Fatal("expected machine stopped")
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("expected no tick after Stop, saw %d", n)
	}

	tk.Start(context.Background())
	if !tk.Machine.Running() {
		t.Fatal("expected restart after Stop from OnTick")
	}
	tk.Stop()
}

func TestTickerRestartsAfterContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	tk := &Ticker{Machine: Breathing(), Interval: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	tk.Start(ctx)
	cancel()
	tk.Wait()
	tk.Machine.Stop()

	tk.Start(context.Background())
	if !tk.Machine.Running() {
		t.Fatalf("expected restart after the old source exited")
	}
	tk.Stop()
}
