// Package phase implements a looping timer that walks an ordered list of
// named phases, spending a fixed number of whole seconds in each.
package phase

import (
	"errors"
	"sync"
)

// IdleLabel is shown while the machine is stopped.
const IdleLabel = "Click Start to Begin"

// Phase is one named segment of the cycle and the visual scale it asks for.
type Phase struct {
	Label string
	Scale float64
}

// Generation identifies one run of a Machine. Tick sources carry the
// generation they were started for; once the machine is stopped or
// restarted their ticks are ignored.
type Generation uint64

// TimerState is a snapshot of the machine.
type TimerState struct {
	Running   bool
	Index     int
	Remaining int
}

// Machine is the Idle/Running state machine. It is safe for concurrent use
// so a goroutine tick source and a UI can share one.
type Machine struct {
	mu       sync.Mutex
	phases   []Phase
	duration int

	running   bool
	index     int
	remaining int
	gen       Generation
}

// New builds an idle machine over phases, each lasting seconds.
func New(phases []Phase, seconds int) (*Machine, error) {
	if len(phases) == 0 {
		return nil, errors.New("phase: at least one phase required")
	}
	if seconds < 1 {
		return nil, errors.New("phase: duration must be at least one second")
	}
	cp := make([]Phase, len(phases))
	copy(cp, phases)
	return &Machine{phases: cp, duration: seconds, remaining: seconds}, nil
}

// BreathingPhases is the box-breathing cycle.
func BreathingPhases() []Phase {
	return []Phase{
		{Label: "Breathe In", Scale: 1.8},
		{Label: "Hold", Scale: 1.9},
		{Label: "Breathe Out", Scale: 1.0},
		{Label: "Hold", Scale: 1.0},
	}
}

// Breathing returns the four-phase, four-seconds-each breathing machine.
func Breathing() *Machine {
	m, _ := New(BreathingPhases(), 4)
	return m
}

// Start moves Idle to Running(0, full duration) and returns the generation
// the caller's tick source must present. When already running it changes
// nothing and reports started=false along with the live generation.
func (m *Machine) Start() (gen Generation, started bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return m.gen, false
	}
	m.gen++
	m.running = true
	m.index = 0
	m.remaining = m.duration
	return m.gen, true
}

// Stop returns the machine to Idle. Any tick still in flight for the old
// generation becomes a no-op.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		m.gen++
	}
	m.running = false
	m.index = 0
	m.remaining = m.duration
}

// Tick consumes one second. It reports whether the tick was accepted; ticks
// for a stale generation or while idle are dropped.
func (m *Machine) Tick(gen Generation) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running || gen != m.gen {
		return false
	}
	m.remaining--
	if m.remaining <= 0 {
		m.index = (m.index + 1) % len(m.phases)
		m.remaining = m.duration
	}
	return true
}

// Running reports whether the machine is running.
func (m *Machine) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return TimerState{Running: m.running, Index: m.index, Remaining: m.remaining}
}

// Label is the text to display: the current phase, or IdleLabel.
func (m *Machine) Label() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return IdleLabel
	}
	return m.phases[m.index].Label
}

// Current returns the current phase; ok is false while idle.
func (m *Machine) Current() (p Phase, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return Phase{}, false
	}
	return m.phases[m.index], true
}

// TargetScale is the current phase's scale, or idle when stopped.
func (m *Machine) TargetScale(idle float64) float64 {
	if p, ok := m.Current(); ok {
		return p.Scale
	}
	return idle
}

// Duration is the number of seconds spent in each phase.
func (m *Machine) Duration() int {
	return m.duration
}

// Len is the number of phases in the cycle.
func (m *Machine) Len() int {
	return len(m.phases)
}
