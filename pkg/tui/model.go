// Package tui is the full-screen reignite journal: a pane per feature drawn
// over the animated background.
package tui

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/anim"
	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/crisis"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/logging"
	"tableflip.dev/reignite/pkg/phase"
	"tableflip.dev/reignite/pkg/reminder"
	"tableflip.dev/reignite/pkg/store"
	"tableflip.dev/reignite/pkg/tui/help"
	"tableflip.dev/reignite/pkg/tui/theme"
)

// Pane is one feature screen.
type Pane int

const (
	PaneBreathe Pane = iota
	PaneMood
	PaneGratitude
	PaneThoughts
	PaneRoutine
	PaneWorry
	PaneSleep
	PaneCrisis
	PaneNotes
	paneCount
)

var paneTitles = [paneCount]string{
	"Breathe", "Mood", "Gratitude", "Thoughts", "Routine", "Worry", "Sleep", "Crisis", "Notes",
}

func (p Pane) String() string {
	if p < 0 || p >= paneCount {
		return "unknown"
	}
	return paneTitles[p]
}

var noteTitles = map[journal.NoteField]string{
	journal.NoteHierarchy:    "Fear hierarchy",
	journal.NoteSelfPassion:  "Self-compassion",
	journal.NoteValues:       "Values",
	journal.NoteThoughtExtra: "Thought diary extras",
}

type mode int

const (
	modeNormal mode = iota
	modeForm
	modeModal
	modeHelp
)

type modal struct {
	title string
	body  string
	// ret is the mode to go back to once dismissed.
	ret mode
}

// Options configures New.
type Options struct {
	Service *app.Service
	// Engine draws the background. Nil runs without animation.
	Engine *anim.Engine
	// Machine drives the breathing pane. Nil uses the standard four-phase
	// cycle.
	Machine *phase.Machine
	FPS     int
	// ReminderEvery overrides reminder.PollInterval.
	ReminderEvery time.Duration
	Log           *zap.Logger
	Rand          *rand.Rand
	Context       context.Context
}

// Model is the Bubble Tea model for the journal.
type Model struct {
	svc     *app.Service
	engine  *anim.Engine
	canvas  *anim.Canvas
	machine *phase.Machine
	watcher *reminder.Watcher
	theme   theme.Theme
	log     *zap.Logger
	rng     *rand.Rand
	ctx     context.Context
	fps     int
	every   time.Duration

	width, height int
	pane          Pane
	mode          mode
	form          *form
	modal         modal
	help          *help.Model
	status        string
	statusErr     bool

	moods     []journal.MoodEntry
	gratitude *journal.GratitudeEntry
	thoughts  []journal.ThoughtEntry
	routine   []journal.RoutineItem
	worry     string
	country   string
	panel     crisis.Panel
	notes     map[journal.NoteField]string
	prompt    string
	wake      string
	bedtimes  []string

	routineCursor int
	noteCursor    int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the model and loads the journal.
func New(opts Options) *Model {
	m := &Model{
		svc:     opts.Service,
		engine:  opts.Engine,
		machine: opts.Machine,
		theme:   theme.Default(),
		log:     logging.OrNop(opts.Log),
		rng:     opts.Rand,
		ctx:     opts.Context,
		fps:     opts.FPS,
		every:   opts.ReminderEvery,
		notes:   make(map[journal.NoteField]string),
		status:  "Ready",
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.machine == nil {
		m.machine = phase.Breathing()
	}
	if m.engine == nil {
		m.engine = anim.New()
	}
	if m.engine.Scene != nil && m.engine.Source == nil {
		m.engine.Source = m.machine
	}
	if m.fps <= 0 {
		m.fps = 30
	}
	if m.every <= 0 {
		m.every = reminder.PollInterval
	}
	m.canvas = anim.NewCanvas(0, 0)
	m.watcher = &reminder.Watcher{Journal: m.svc.Journal, Clock: m.svc.Clock, Log: m.log}
	m.prompt = m.svc.GratitudePrompt(m.rng)
	m.reload()
	return m
}

// Run launches the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m *Model) animated() bool {
	return m.engine.Pointer != nil || m.engine.Field != nil || m.engine.Scene != nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		startWatchCmd(m.ctx, m.svc),
		reminderTickCmd(m.every),
	}
	if m.animated() {
		cmds = append(cmds, frameCmd(m.fps))
	}
	return tea.Batch(cmds...)
}

// reload refreshes every cached document from the journal.
func (m *Model) reload() {
	m.moods = m.svc.MoodHistory(app.ChartEntries)
	m.gratitude = m.svc.LastGratitude()
	m.thoughts = m.svc.Thoughts()
	m.worry = m.svc.WorryTime()
	m.country = m.svc.Country()
	m.panel = m.svc.Crisis()
	for _, f := range journal.NoteFields() {
		m.notes[f] = m.svc.Note(f)
	}
	m.setRoutine(m.svc.Routine())
}

// setRoutine shows items, keeping the cursor on the list.
func (m *Model) setRoutine(items []journal.RoutineItem) {
	m.routine = items
	if m.routineCursor >= len(m.routine) {
		m.routineCursor = max(len(m.routine)-1, 0)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.log.Debug("tui: operation failed", zap.Error(err))
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

func (m *Model) openModal(title, body string) {
	ret := m.mode
	if ret == modeModal {
		ret = m.modal.ret
	}
	m.modal = modal{title: title, body: body, ret: ret}
	m.mode = modeModal
}

func (m *Model) now() time.Time {
	if m.svc.Clock == nil {
		return time.Now()
	}
	return m.svc.Clock.Now()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case errMsg:
		m.setError(msg.err)
	case frameMsg:
		m.engine.Frame()
		cmds = append(cmds, frameCmd(m.fps))
	case phaseTickMsg:
		if m.machine.Tick(msg.gen) {
			cmds = append(cmds, phaseTickCmd(msg.gen))
		}
	case reminderTickMsg:
		if m.watcher.Check(m.now()) {
			m.openModal("Worry time", reminder.Message)
		}
		cmds = append(cmds, reminderTickCmd(m.every))
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.log.Debug("tui: journal changed", zap.String("key", msg.event.Key))
		m.reload()
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.engine.MoveCursor(mouse.X, mouse.Y-headerRows)
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch m.mode {
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			m.mode = modeNormal
			return nil
		}
		return m.help.Update(msg)
	case modeModal:
		switch msg.String() {
		case "enter", "esc", "space", "q":
			m.mode = m.modal.ret
		}
		return nil
	case modeForm:
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "?":
		m.mode = modeHelp
		m.layout()
		return nil
	case "tab", "right", "l":
		m.pane = (m.pane + 1) % paneCount
		return nil
	case "shift+tab", "left", "h":
		m.pane = (m.pane + paneCount - 1) % paneCount
		return nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.pane = Pane(msg.String()[0] - '1')
		return nil
	}
	return m.handlePaneKey(msg)
}

func (m *Model) quit() tea.Cmd {
	m.machine.Stop()
	m.stopWatch()
	return tea.Quit
}

func (m *Model) handlePaneKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch m.pane {
	case PaneBreathe:
		switch key {
		case "s", "enter", "space":
			return m.startBreathing()
		case "x", "esc":
			m.machine.Stop()
		}
	case PaneMood:
		if key == "a" {
			return m.openForm(m.moodForm())
		}
	case PaneGratitude:
		switch key {
		case "a":
			return m.openForm(m.gratitudeForm())
		case "p":
			m.prompt = m.svc.GratitudePrompt(m.rng)
		}
	case PaneThoughts:
		if key == "a" {
			return m.openForm(m.thoughtForm())
		}
	case PaneRoutine:
		return m.handleRoutineKey(key)
	case PaneWorry:
		if key == "a" || key == "enter" {
			return m.openForm(m.worryForm())
		}
	case PaneSleep:
		if key == "a" || key == "enter" {
			return m.openForm(m.sleepForm())
		}
	case PaneCrisis:
		switch key {
		case "a", "enter":
			return m.openForm(m.countryForm())
		case "c":
			if err := m.svc.ClearCountry(); err != nil {
				m.setError(err)
				return nil
			}
			m.country, m.panel = "", crisis.Localize("")
			m.setStatus("Country cleared.")
		}
	case PaneNotes:
		fields := journal.NoteFields()
		switch key {
		case "j", "down":
			m.noteCursor = min(m.noteCursor+1, len(fields)-1)
		case "k", "up":
			m.noteCursor = max(m.noteCursor-1, 0)
		case "enter", "a":
			return m.openForm(m.noteForm(fields[m.noteCursor]))
		}
	}
	return nil
}

func (m *Model) startBreathing() tea.Cmd {
	gen, started := m.machine.Start()
	if !started {
		return nil
	}
	return phaseTickCmd(gen)
}

func (m *Model) handleRoutineKey(key string) tea.Cmd {
	switch key {
	case "a":
		return m.openForm(m.routineForm())
	case "j", "down":
		m.routineCursor = min(m.routineCursor+1, max(len(m.routine)-1, 0))
	case "k", "up":
		m.routineCursor = max(m.routineCursor-1, 0)
	case "space", "enter", "x":
		if m.routineCursor >= len(m.routine) {
			return nil
		}
		checked := !m.routine[m.routineCursor].Checked
		items, err := m.svc.ToggleRoutineItem(m.routineCursor, checked)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.setRoutine(items)
		m.setStatus(app.RoutineSaved)
	case "d":
		items, err := m.svc.DeleteRoutineItem(m.routineCursor)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.setRoutine(items)
		m.setStatus(app.RoutineSaved)
	}
	return nil
}
