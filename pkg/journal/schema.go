package journal

import (
	"strings"
	"time"
)

// MoodEntry is one mood check-in.
type MoodEntry struct {
	ID        string    `json:"id,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
	Label     string    `json:"label"`
	MoodScore int       `json:"moodScore"`
	Note      string    `json:"note"`
}

// GratitudeEntry is the latest gratitude snapshot. Any of the three entries
// may be empty.
type GratitudeEntry struct {
	Timestamp Timestamp `json:"timestamp"`
	Entries   [3]string `json:"entries"`
}

// ThoughtEntry is one thought-diary record. Balance is optional.
type ThoughtEntry struct {
	ID        string    `json:"id,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
	Situation string    `json:"situation"`
	Thought   string    `json:"thought"`
	Balance   string    `json:"balance"`
}

// RoutineItem is one line of the nightly routine checklist.
type RoutineItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// NoteField identifies a free-text autosave field.
type NoteField string

const (
	NoteHierarchy    NoteField = "hierarchyNotes"
	NoteSelfPassion  NoteField = "selfPassionNotes"
	NoteValues       NoteField = "valuesNotes"
	NoteThoughtExtra NoteField = "thoughtDiaryExtra"
)

// NoteFields lists the autosave fields in display order.
func NoteFields() []NoteField {
	return []NoteField{NoteHierarchy, NoteSelfPassion, NoteValues, NoteThoughtExtra}
}

// ParseNoteField accepts either the storage name or a short alias such as
// "values".
func ParseNoteField(s string) (NoteField, bool) {
	s = strings.TrimSpace(s)
	for _, f := range NoteFields() {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s+"Notes", string(f)) {
			return f, true
		}
	}
	switch strings.ToLower(s) {
	case "self-passion", "selfpassion":
		return NoteSelfPassion, true
	case "thought", "thought-extra", "extra":
		return NoteThoughtExtra, true
	}
	return "", false
}

// DefaultRoutine is the checklist shown until the user saves their own.
func DefaultRoutine() []RoutineItem {
	return []RoutineItem{
		{Text: "Dim lights 60 minutes before bed"},
		{Text: "No screens 30 minutes before bed"},
		{Text: "Brush teeth and wash face"},
		{Text: "Read or journal for 10–15 minutes"},
	}
}

// The schema table. Every stored document is listed here.
var (
	MoodLog = Key[[]MoodEntry]{
		Name:    "moodData",
		Default: func() []MoodEntry { return []MoodEntry{} },
		Valid:   func(v []MoodEntry) bool { return v != nil },
	}

	GratitudeLast = Key[*GratitudeEntry]{
		Name:  "gratitudeLast",
		Valid: func(v *GratitudeEntry) bool { return v != nil },
	}

	ThoughtLog = Key[[]ThoughtEntry]{
		Name:    "cbtLog",
		Default: func() []ThoughtEntry { return []ThoughtEntry{} },
		Valid:   func(v []ThoughtEntry) bool { return v != nil },
	}

	// Routine falls back to the default checklist when empty, so deleting
	// every item brings the defaults back on the next load.
	Routine = Key[[]RoutineItem]{
		Name:    "routineData",
		Default: DefaultRoutine,
		Valid:   func(v []RoutineItem) bool { return len(v) > 0 },
	}

	WorryTime = Key[string]{
		Name: "worryTime",
		Valid: func(v string) bool {
			_, _, err := ParseClock(v)
			return err == nil
		},
	}

	WorryAlertDay = Key[string]{
		Name: "worryAlertDay",
		Valid: func(v string) bool {
			_, err := time.Parse(DayLayout, v)
			return err == nil
		},
	}

	Country = Key[string]{
		Name:  "userCountry",
		Valid: func(v string) bool { return strings.TrimSpace(v) != "" },
	}
)

// Note is the key for a free-text autosave field.
func Note(field NoteField) Key[string] {
	return Key[string]{Name: string(field)}
}

// Names lists every fixed document name in the schema table.
func Names() []string {
	names := []string{
		MoodLog.Name, GratitudeLast.Name, ThoughtLog.Name, Routine.Name,
		WorryTime.Name, WorryAlertDay.Name, Country.Name,
	}
	for _, f := range NoteFields() {
		names = append(names, string(f))
	}
	return names
}
