// Package app holds the feature operations shared by the terminal UI and the
// CLI. A Service is built once at start-up and owns the journal, the clock
// and the logger every feature uses.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/clock"
	"tableflip.dev/reignite/pkg/crisis"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/logging"
	"tableflip.dev/reignite/pkg/store"
	"tableflip.dev/reignite/pkg/timeutil"
)

// ChartEntries is how many mood check-ins the history chart shows.
const ChartEntries = 14

var ErrNoSuchItem = errors.New("app: no such routine item")

// Service provides the journal features.
type Service struct {
	Journal *journal.Journal
	Clock   clock.Clock
	Log     *zap.Logger

	// Strict makes writes that fail to reach storage return an error. The UI
	// leaves it off and keeps working from memory; the CLI turns it on.
	Strict bool
	// NewID names new log entries. Defaults to random UUIDs.
	NewID func() string
}

// New returns a Service over j using the system clock.
func New(j *journal.Journal, log *zap.Logger) *Service {
	return &Service{Journal: j, Clock: clock.System{}, Log: logging.OrNop(log)}
}

func (s *Service) now() journal.Timestamp {
	if s.Clock == nil {
		return journal.Now(clock.System{}.Now())
	}
	return journal.Now(s.Clock.Now())
}

func (s *Service) id() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) logger() *zap.Logger {
	return logging.OrNop(s.Log)
}

func mutate[T any](s *Service, k journal.Key[T], fn func(T) (T, error)) (T, error) {
	if s.Strict {
		v, err := journal.MutateErr(s.Journal, k, fn)
		if err != nil && !errors.Is(err, journal.ErrMissingInput) && !errors.Is(err, ErrNoSuchItem) {
			return v, fmt.Errorf("app: %s not saved: %w", k.Name, err)
		}
		return v, err
	}
	return journal.Mutate(s.Journal, k, fn)
}

func save[T any](s *Service, k journal.Key[T], v T) error {
	if !s.Strict {
		journal.Save(s.Journal, k, v)
		return nil
	}
	if err := journal.SaveErr(s.Journal, k, v); err != nil {
		return fmt.Errorf("app: %s not saved: %w", k.Name, err)
	}
	return nil
}

// Watch reports changes written by other processes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Journal.Persistence().Watch(ctx)
}

// SaveMood appends a mood check-in. score must be 1..5; zero means nothing
// was picked.
func (s *Service) SaveMood(score int, note string) (journal.MoodEntry, error) {
	if score == 0 {
		return journal.MoodEntry{}, journal.MissingInput("Please select a mood before saving.")
	}
	if journal.MoodName(score) == "" {
		return journal.MoodEntry{}, fmt.Errorf("app: mood score %d out of range 1-5", score)
	}
	ts := s.now()
	e := journal.MoodEntry{
		ID:        s.id(),
		Timestamp: ts,
		Label:     ts.Format(journal.LabelLayout),
		MoodScore: score,
		Note:      strings.TrimSpace(note),
	}
	_, err := mutate(s, journal.MoodLog, func(log []journal.MoodEntry) ([]journal.MoodEntry, error) {
		return append(log, e), nil
	})
	if err == nil {
		s.logger().Debug("mood saved", zap.Int("score", score))
	}
	return e, err
}

// MoodHistory returns the last n check-ins, oldest first. n <= 0 means
// ChartEntries.
func (s *Service) MoodHistory(n int) []journal.MoodEntry {
	if n <= 0 {
		n = ChartEntries
	}
	return journal.Recent(journal.Load(s.Journal, journal.MoodLog), n)
}

// SaveGratitude replaces the gratitude snapshot. At least one entry must be
// non-blank.
func (s *Service) SaveGratitude(e1, e2, e3 string) (*journal.GratitudeEntry, error) {
	entries := [3]string{strings.TrimSpace(e1), strings.TrimSpace(e2), strings.TrimSpace(e3)}
	if entries == [3]string{} {
		return nil, journal.MissingInput("Write at least one gratitude item before saving.")
	}
	g := &journal.GratitudeEntry{Timestamp: s.now(), Entries: entries}
	return g, save(s, journal.GratitudeLast, g)
}

// LastGratitude is the most recent snapshot, or nil.
func (s *Service) LastGratitude() *journal.GratitudeEntry {
	return journal.Load(s.Journal, journal.GratitudeLast)
}

// SaveThought appends a thought-diary record. Situation and thought are
// required.
func (s *Service) SaveThought(situation, thought, balance string) (journal.ThoughtEntry, error) {
	e := journal.ThoughtEntry{
		Situation: strings.TrimSpace(situation),
		Thought:   strings.TrimSpace(thought),
		Balance:   strings.TrimSpace(balance),
	}
	if e.Situation == "" || e.Thought == "" {
		return journal.ThoughtEntry{}, journal.MissingInput("Please fill in at least the situation and automatic thought.")
	}
	e.ID = s.id()
	e.Timestamp = s.now()
	_, err := mutate(s, journal.ThoughtLog, func(log []journal.ThoughtEntry) ([]journal.ThoughtEntry, error) {
		return append(log, e), nil
	})
	return e, err
}

func (s *Service) Thoughts() []journal.ThoughtEntry {
	return journal.Load(s.Journal, journal.ThoughtLog)
}

func (s *Service) Routine() []journal.RoutineItem {
	return journal.Load(s.Journal, journal.Routine)
}

func (s *Service) AddRoutineItem(text string) ([]journal.RoutineItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Routine(), journal.MissingInput("Type a routine item first.")
	}
	return mutate(s, journal.Routine, func(items []journal.RoutineItem) ([]journal.RoutineItem, error) {
		return append(items, journal.RoutineItem{Text: text}), nil
	})
}

// ToggleRoutineItem sets the checked state of item i (zero based).
func (s *Service) ToggleRoutineItem(i int, checked bool) ([]journal.RoutineItem, error) {
	return mutate(s, journal.Routine, func(items []journal.RoutineItem) ([]journal.RoutineItem, error) {
		if i < 0 || i >= len(items) {
			return nil, fmt.Errorf("%w: %d", ErrNoSuchItem, i+1)
		}
		items[i].Checked = checked
		return items, nil
	})
}

// DeleteRoutineItem removes item i. Removing the last item brings back the
// default routine.
func (s *Service) DeleteRoutineItem(i int) ([]journal.RoutineItem, error) {
	items, err := mutate(s, journal.Routine, func(items []journal.RoutineItem) ([]journal.RoutineItem, error) {
		if i < 0 || i >= len(items) {
			return nil, fmt.Errorf("%w: %d", ErrNoSuchItem, i+1)
		}
		return append(items[:i:i], items[i+1:]...), nil
	})
	if err == nil && len(items) == 0 {
		return journal.DefaultRoutine(), nil
	}
	return items, err
}

// SetWorryTime stores the daily reminder time as HH:MM.
func (s *Service) SetWorryTime(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return journal.MissingInput("Choose a time first.")
	}
	h, m, err := journal.ParseClock(v)
	if err != nil {
		return err
	}
	return save(s, journal.WorryTime, fmt.Sprintf("%02d:%02d", h, m))
}

// WorryTime is the stored reminder time, or "" when none is set.
func (s *Service) WorryTime() string {
	return journal.Load(s.Journal, journal.WorryTime)
}

// SetCountry stores the user's country and returns the crisis panel for
// it. Any name is accepted; unknown countries get the global panel.
func (s *Service) SetCountry(name string) (crisis.Panel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.Crisis(), journal.MissingInput("Please select your country first.")
	}
	name = crisis.Canonical(name)
	if err := save(s, journal.Country, name); err != nil {
		return crisis.Localize(name), err
	}
	return crisis.Localize(name), nil
}

func (s *Service) ClearCountry() error {
	if err := journal.Clear(s.Journal, journal.Country); err != nil && s.Strict {
		return fmt.Errorf("app: clear country: %w", err)
	}
	return nil
}

// Country is the stored country, or "" when none is chosen.
func (s *Service) Country() string {
	return journal.Load(s.Journal, journal.Country)
}

// Crisis is the crisis panel for the stored country.
func (s *Service) Crisis() crisis.Panel {
	return crisis.Localize(s.Country())
}

func (s *Service) Note(field journal.NoteField) string {
	return journal.Load(s.Journal, journal.Note(field))
}

// SetNote autosaves a free-text field. Empty text is stored as is.
func (s *Service) SetNote(field journal.NoteField, text string) error {
	return save(s, journal.Note(field), text)
}

// Bedtimes suggests when to fall asleep to wake at wake (HH:MM).
func (s *Service) Bedtimes(wake string) ([]string, error) {
	return timeutil.Bedtimes(strings.TrimSpace(wake))
}

// GratitudePrompt picks a prompt. A nil rng uses the shared source.
func (s *Service) GratitudePrompt(rng *rand.Rand) string {
	if rng == nil {
		return GratitudePrompts[rand.Intn(len(GratitudePrompts))]
	}
	return GratitudePrompts[rng.Intn(len(GratitudePrompts))]
}
