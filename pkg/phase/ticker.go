package phase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker drives a Machine from a goroutine, one tick per Interval. There is
// never more than one tick goroutine per Ticker.
type Ticker struct {
	Machine  *Machine
	Interval time.Duration
	// OnTick, when set, is called after every accepted tick. It may call
	// Stop.
	OnTick func(TimerState)

	mu  sync.Mutex
	run *tickRun
}

// tickRun is one tick goroutine.
type tickRun struct {
	cancel context.CancelFunc
	done   chan struct{}
	// inTick is set while OnTick runs on this goroutine.
	inTick atomic.Bool
}

// Start starts the machine and its tick goroutine. Calling Start while
// running does nothing.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r := t.run; r != nil {
		select {
		case <-r.done:
			// The machine was stopped behind our back; start afresh.
		default:
			if !r.stopped() {
				return
			}
		}
		if r.cancel != nil {
			r.cancel()
		}
	}
	gen, _ := t.Machine.Start()

	interval := t.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(ctx)
	r := &tickRun{cancel: cancel, done: make(chan struct{})}
	t.run = r

	go func() {
		defer close(r.done)
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				if !t.Machine.Tick(gen) {
					return
				}
				if t.OnTick != nil {
					r.inTick.Store(true)
					t.OnTick(t.Machine.Snapshot())
					r.inTick.Store(false)
				}
			}
		}
	}()
}

// stopped reports whether Stop already cancelled r from inside OnTick.
func (r *tickRun) stopped() bool {
	return r.cancel == nil
}

// Stop stops the machine, cancels the tick goroutine and waits for it to
// exit, so no tick is accepted after Stop returns. Called from OnTick it
// returns without waiting; the goroutine exits once OnTick returns and Wait
// joins it.
func (t *Ticker) Stop() {
	t.Machine.Stop()

	t.mu.Lock()
	r := t.run
	if r == nil || r.cancel == nil {
		t.mu.Unlock()
		return
	}
	r.cancel()
	r.cancel = nil
	reentrant := r.inTick.Load()
	if !reentrant {
		t.run = nil
	}
	t.mu.Unlock()

	if !reentrant {
		<-r.done
	}
}

// Wait blocks until the tick goroutine exits, e.g. after ctx is cancelled or
// Stop was called from OnTick.
func (t *Ticker) Wait() {
	t.mu.Lock()
	r := t.run
	t.mu.Unlock()
	if r != nil {
		<-r.done
	}
}
