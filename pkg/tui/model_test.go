package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/reignite/pkg/anim"
	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/clock"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/phase"
	"tableflip.dev/reignite/pkg/reminder"
	"tableflip.dev/reignite/pkg/store"
)

var start = time.Date(2024, 3, 3, 21, 15, 0, 0, time.UTC)

func newModel(t *testing.T, opts Options) (*Model, *app.Service) {
	t.Helper()
	p := store.NewMemory()
	svc := app.New(journal.New(p, nil), nil)
	svc.Clock = clock.NewFixed(start)
	n := 0
	svc.NewID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	opts.Service = svc
	opts.Rand = rand.New(rand.NewSource(1))
	m := New(opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, svc
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestStaleBreathingTickIgnored(t *testing.T) {
	m, _ := newModel(t, Options{})

	press(m, "s")
	require.True(t, m.machine.Running())
	press(m, "x")
	require.False(t, m.machine.Running())
	stale := phase.Generation(1)

	_, cmd := m.Update(key("s"))
	require.NotNil(t, cmd, "starting schedules the first tick")
	live, started := m.machine.Start()
	require.False(t, started)
	require.NotEqual(t, stale, live)

	_, cmd = m.Update(phaseTickMsg{gen: stale})
	assert.Nil(t, cmd, "stale generation does not reschedule")
	assert.Equal(t, 4, m.machine.Snapshot().Remaining)

	_, cmd = m.Update(phaseTickMsg{gen: live})
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, m.machine.Snapshot().Remaining)
}

func TestStartWhileRunningDoesNotAddTicker(t *testing.T) {
	m, _ := newModel(t, Options{})
	_, cmd := m.Update(key("s"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(key("s"))
	assert.Nil(t, cmd)
}

func TestMoodFormMissingInputShowsNotice(t *testing.T) {
	m, svc := newModel(t, Options{})
	press(m, "2", "a")
	require.Equal(t, modeForm, m.mode)

	press(m, "enter", "enter")
	require.Equal(t, modeModal, m.mode)
	assert.Equal(t, "Please select a mood before saving.", m.modal.body)
	assert.Empty(t, svc.MoodHistory(0))

	press(m, "enter")
	require.Equal(t, modeForm, m.mode, "form stays open after the notice")

	press(m, "tab")
	typeText(m, "4")
	press(m, "tab")
	typeText(m, "steady")
	press(m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, app.MoodSaved, m.status)
	require.Len(t, m.moods, 1)
	assert.Equal(t, 4, m.moods[0].MoodScore)
	assert.Equal(t, "steady", m.moods[0].Note)
}

func TestUnknownMoodReportsError(t *testing.T) {
	m, _ := newModel(t, Options{})
	press(m, "2", "a")
	typeText(m, "meh")
	press(m, "enter", "enter")
	assert.Equal(t, modeForm, m.mode)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "ERR: ")
}

func TestRoutineTogglePersists(t *testing.T) {
	m, svc := newModel(t, Options{})
	press(m, "5", "j", "space")
	assert.True(t, svc.Routine()[1].Checked)
	assert.False(t, svc.Routine()[0].Checked)
	assert.Equal(t, app.RoutineSaved, m.status)

	press(m, "space")
	assert.False(t, svc.Routine()[1].Checked)
}

func TestRoutineAddAndDelete(t *testing.T) {
	m, svc := newModel(t, Options{})
	before := len(svc.Routine())
	press(m, "5", "a")
	typeText(m, "Stretch")
	press(m, "enter")
	require.Len(t, svc.Routine(), before+1)
	assert.Equal(t, "Stretch", svc.Routine()[before].Text)

	m.routineCursor = before
	press(m, "d")
	assert.Len(t, svc.Routine(), before)
}

func TestSavesStayVisibleWhenStorageDropsWrites(t *testing.T) {
	svc := app.New(journal.New(store.Disabled(), nil), nil)
	svc.Clock = clock.NewFixed(start)
	m := New(Options{Service: svc, Rand: rand.New(rand.NewSource(1))})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	press(m, "2", "a")
	typeText(m, "5")
	press(m, "tab")
	typeText(m, "ok")
	press(m, "enter")
	assert.Equal(t, app.MoodSaved, m.status)
	require.Len(t, m.moods, 1)
	assert.Equal(t, 5, m.moods[0].MoodScore)
	assert.Empty(t, svc.MoodHistory(0))

	press(m, "4", "a")
	typeText(m, "bus")
	press(m, "tab")
	typeText(m, "late again")
	press(m, "enter", "enter")
	require.Len(t, m.thoughts, 1)
	assert.Equal(t, "bus", m.thoughts[0].Situation)

	press(m, "5", "space")
	require.NotEmpty(t, m.routine)
	assert.True(t, m.routine[0].Checked)

	press(m, "6", "a")
	typeText(m, "8:30")
	press(m, "enter")
	assert.Equal(t, "08:30", m.worry)
}

func TestWorryReminderFiresOnce(t *testing.T) {
	m, svc := newModel(t, Options{})
	require.NoError(t, svc.SetWorryTime("21:15"))

	_, cmd := m.Update(reminderTickMsg{})
	assert.NotNil(t, cmd, "reminder keeps polling")
	require.Equal(t, modeModal, m.mode)
	assert.Equal(t, reminder.Message, m.modal.body)

	press(m, "enter")
	m.Update(reminderTickMsg{})
	assert.Equal(t, modeNormal, m.mode)
}

func TestWorryFormNormalizesTime(t *testing.T) {
	m, svc := newModel(t, Options{})
	press(m, "6", "a")
	typeText(m, "7:05")
	press(m, "enter")
	assert.Equal(t, "07:05", svc.WorryTime())
	assert.Equal(t, "07:05", m.worry)
	assert.Equal(t, app.WorrySaved("07:05"), m.status)
}

func TestFrameAdvancesEngine(t *testing.T) {
	m, _ := newModel(t, Options{Engine: anim.New(anim.WithPointer()), FPS: 10})
	_, cmd := m.Update(frameMsg{})
	assert.NotNil(t, cmd)
	assert.EqualValues(t, 1, m.engine.Frames())
}

func TestSceneFollowsMachine(t *testing.T) {
	e := anim.New(anim.WithScene(nil, rand.New(rand.NewSource(2))))
	m, _ := newModel(t, Options{Engine: e})
	assert.Equal(t, m.machine, e.Source)
}

func TestStoreEventReloads(t *testing.T) {
	m, svc := newModel(t, Options{})
	other := app.New(svc.Journal, nil)
	_, err := other.SaveThought("bus", "late again", "")
	require.NoError(t, err)
	assert.Empty(t, m.thoughts)

	m.Update(watchEventMsg{event: store.Event{Key: journal.ThoughtLog.Name}})
	assert.Len(t, m.thoughts, 1)
}

func TestNotesSaveWhileTyping(t *testing.T) {
	m, svc := newModel(t, Options{})
	press(m, "9", "enter")
	require.Equal(t, modeForm, m.mode)
	typeText(m, "hi")
	assert.Equal(t, "hi", svc.Note(journal.NoteHierarchy))
	press(m, "esc")
	assert.Equal(t, modeNormal, m.mode)
}

func TestCountryPanel(t *testing.T) {
	m, svc := newModel(t, Options{})
	press(m, "8", "a", "enter")
	require.Equal(t, modeModal, m.mode)
	assert.Equal(t, "Please select your country first.", m.modal.body)
	press(m, "esc")

	typeText(m, "kenya")
	press(m, "enter")
	assert.Equal(t, "Kenya", svc.Country())
	assert.True(t, m.panel.Local)

	press(m, "c")
	assert.Empty(t, svc.Country())
	assert.False(t, m.panel.Local)
}

func TestViewShowsPaneAndBreathingLabel(t *testing.T) {
	m, _ := newModel(t, Options{})
	out := m.View()
	assert.Contains(t, out, phase.IdleLabel)
	assert.Contains(t, out, "Breathe")
	assert.Len(t, strings.Split(out, "\n"), 30)

	press(m, "2")
	assert.Contains(t, m.View(), "No check-ins yet.")
}

func TestPaneNavigationWraps(t *testing.T) {
	m, _ := newModel(t, Options{})
	press(m, "tab")
	assert.Equal(t, PaneMood, m.pane)
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, PaneNotes, m.pane)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newModel(t, Options{})
	press(m, "?")
	require.Equal(t, modeHelp, m.mode)
	assert.Contains(t, m.View(), "Moving around")
	press(m, "?")
	assert.Equal(t, modeNormal, m.mode)
}
