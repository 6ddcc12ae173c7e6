package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/phase"
	"tableflip.dev/reignite/pkg/store"
)

type errMsg struct{ err error }

// frameMsg advances the animation one step.
type frameMsg struct{}

// phaseTickMsg is one second of the breathing timer. It carries the
// generation it was scheduled for so a tick from before a stop or restart
// is dropped.
type phaseTickMsg struct{ gen phase.Generation }

type reminderTickMsg struct{}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		return nil
	}
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func phaseTickCmd(gen phase.Generation) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return phaseTickMsg{gen: gen}
	})
}

func reminderTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return reminderTickMsg{}
	})
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}
