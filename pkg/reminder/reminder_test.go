package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"tableflip.dev/reignite/pkg/clock"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/store"
)

func newWatcher(t *testing.T, p store.Persistence, now time.Time) (*Watcher, *clock.Fixed, *[]string) {
	t.Helper()
	var got []string
	c := clock.NewFixed(now)
	w := &Watcher{
		Journal: journal.New(p, nil),
		Clock:   c,
		Notify:  func(msg string) { got = append(got, msg) },
	}
	return w, c, &got
}

func TestFiresOncePerDayAcrossPolls(t *testing.T) {
	start := time.Date(2025, time.June, 2, 20, 59, 0, 0, time.Local)
	w, c, got := newWatcher(t, store.NewMemory(), start)
	journal.Save(w.Journal, journal.WorryTime, "21:00")

	if w.Check(c.Now()) {
		t.Fatalf("fired before worry time")
	}
	c.Advance(time.Minute)
	for i := 0; i < 3; i++ {
		w.Check(c.Now())
		c.Advance(20 * time.Second)
	}
	if len(*got) != 1 {
		t.Fatalf("expected one alert, got %d", len(*got))
	}
	if day := journal.Load(w.Journal, journal.WorryAlertDay); day != "2025-06-02" {
		t.Fatalf("expected alert day recorded, got %q", day)
	}

	c.Set(time.Date(2025, time.June, 3, 21, 0, 10, 0, time.Local))
	if !w.Check(c.Now()) {
		t.Fatalf("expected alert on the next day")
	}
	if len(*got) != 2 {
		t.Fatalf("expected two alerts over two days, got %d", len(*got))
	}
}

func TestPersistedDayBlocksNewWatcher(t *testing.T) {
	p := store.NewMemory()
	now := time.Date(2025, time.June, 2, 21, 0, 0, 0, time.Local)
	w, _, _ := newWatcher(t, p, now)
	journal.Save(w.Journal, journal.WorryTime, "21:00")
	if !w.Check(now) {
		t.Fatalf("expected first watcher to fire")
	}

	// A reload of the program builds a new watcher over the same storage.
	w2, _, got := newWatcher(t, p, now)
	if w2.Check(now.Add(10 * time.Second)) {
		t.Fatalf("reloaded watcher refired on the same day")
	}
	if len(*got) != 0 {
		t.Fatalf("unexpected notification")
	}
}

func TestDisabledStorageStillFiresOnce(t *testing.T) {
	now := time.Date(2025, time.June, 2, 7, 30, 0, 0, time.Local)
	p := store.NewMemory()
	w, _, got := newWatcher(t, p, now)
	journal.Save(w.Journal, journal.WorryTime, "07:30")

	w.Journal = journal.New(readOnly{p}, nil)
	w.Check(now)
	w.Check(now.Add(30 * time.Second))
	if len(*got) != 1 {
		t.Fatalf("expected one alert with dropped writes, got %d", len(*got))
	}
}

func TestNotArmedWithoutTime(t *testing.T) {
	w, _, _ := newWatcher(t, store.NewMemory(), time.Now())
	if w.Armed() {
		t.Fatalf("expected unarmed watcher")
	}
	// Run returns straight away when unarmed.
	done := make(chan struct{})
	go func() {
		w.Run(context.Background(), time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return for an unarmed watcher")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	now := time.Date(2025, time.June, 2, 21, 0, 0, 0, time.Local)
	var mu sync.Mutex
	fired := 0
	w := &Watcher{
		Journal: journal.New(store.NewMemory(), nil),
		Clock:   clock.NewFixed(now),
		Notify: func(string) {
			mu.Lock()
			fired++
			mu.Unlock()
		},
	}
	journal.Save(w.Journal, journal.WorryTime, "21:00")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx, time.Millisecond)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if fired != 1 {
		t.Fatalf("expected exactly one alert, got %d", fired)
	}
}

// readOnly serves reads from p and refuses writes.
type readOnly struct {
	store.Persistence
}

func (readOnly) Write(string, []byte) error { return store.ErrDisabled }
