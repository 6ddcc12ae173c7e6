package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/reignite/pkg/store"
)

func newTestJournal(t *testing.T) (*Journal, store.Persistence) {
	t.Helper()
	p, err := store.Load(&store.Settings{Path: t.TempDir()})
	require.NoError(t, err)
	return New(p, nil), p
}

func TestAppendOnlyMoodLogKeepsOrder(t *testing.T) {
	j, _ := newTestJournal(t)
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	var want []MoodEntry
	for i := 0; i < 20; i++ {
		e := MoodEntry{
			Timestamp: Now(base.Add(time.Duration(i) * 24 * time.Hour)),
			Label:     base.Add(time.Duration(i) * 24 * time.Hour).Format(LabelLayout),
			MoodScore: i%5 + 1,
			Note:      fmt.Sprintf("day %d", i),
		}
		want = append(want, e)
		Append(j, MoodLog, e)
	}

	got := Load(j, MoodLog)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Note, got[i].Note)
		assert.Equal(t, want[i].MoodScore, got[i].MoodScore)
		assert.True(t, want[i].Timestamp.Equal(got[i].Timestamp.Time))
	}

	recent := Recent(got, 14)
	require.Len(t, recent, 14)
	assert.Equal(t, got[len(got)-14:], recent)
	assert.Equal(t, "day 6", recent[0].Note)
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	j, _ := newTestJournal(t)

	assert.Empty(t, Load(j, MoodLog))
	assert.NotNil(t, Load(j, MoodLog))
	assert.Nil(t, Load(j, GratitudeLast))
	assert.Equal(t, DefaultRoutine(), Load(j, Routine))
	assert.Equal(t, "", Load(j, WorryTime))
}

func TestLoadCorruptValueReturnsDefault(t *testing.T) {
	j, p := newTestJournal(t)

	cases := map[string][]byte{
		MoodLog.Name:       []byte(`{not json`),
		ThoughtLog.Name:    []byte(`{"situation":"not a list"}`),
		Routine.Name:       []byte(`[]`),
		GratitudeLast.Name: []byte(`null`),
		WorryTime.Name:     []byte(`"quarter past"`),
		WorryAlertDay.Name: []byte(`42`),
	}
	for k, v := range cases {
		require.NoError(t, p.Write(k, v))
	}

	assert.Empty(t, Load(j, MoodLog))
	assert.Empty(t, Load(j, ThoughtLog))
	assert.Equal(t, DefaultRoutine(), Load(j, Routine))
	assert.Nil(t, Load(j, GratitudeLast))
	assert.Equal(t, "", Load(j, WorryTime))
	assert.Equal(t, "", Load(j, WorryAlertDay))
}

func TestSnapshotReplacesPreviousValue(t *testing.T) {
	j, _ := newTestJournal(t)
	Save(j, GratitudeLast, &GratitudeEntry{Entries: [3]string{"tea", "", "sun"}})
	Save(j, GratitudeLast, &GratitudeEntry{Entries: [3]string{"", "friends", ""}})

	got := Load(j, GratitudeLast)
	require.NotNil(t, got)
	assert.Equal(t, [3]string{"", "friends", ""}, got.Entries)
}

func TestSaveToDisabledStorageIsSwallowed(t *testing.T) {
	j := New(store.Disabled(), nil)

	assert.NotPanics(t, func() { Save(j, WorryTime, "21:00") })
	assert.ErrorIs(t, SaveErr(j, WorryTime, "21:00"), store.ErrDisabled)

	// Mutate still hands back the attempted state for the session.
	items, err := Mutate(j, Routine, func(items []RoutineItem) ([]RoutineItem, error) {
		items[0].Checked = true
		return items, nil
	})
	require.NoError(t, err)
	assert.True(t, items[0].Checked)
	assert.False(t, Load(j, Routine)[0].Checked)
}

func TestMutateErrorWritesNothing(t *testing.T) {
	j, _ := newTestJournal(t)
	Save(j, Routine, []RoutineItem{{Text: "stretch"}})

	_, err := Mutate(j, Routine, func(items []RoutineItem) ([]RoutineItem, error) {
		return nil, fmt.Errorf("index out of range")
	})
	require.Error(t, err)
	assert.Equal(t, []RoutineItem{{Text: "stretch"}}, Load(j, Routine))
}

func TestCompactKeepsNewest(t *testing.T) {
	j, _ := newTestJournal(t)
	for i := 0; i < 10; i++ {
		Append(j, ThoughtLog, ThoughtEntry{Situation: fmt.Sprintf("s%d", i), Thought: "t"})
	}

	dropped, err := Compact(j, ThoughtLog, Retention{})
	require.NoError(t, err)
	assert.Zero(t, dropped)

	dropped, err = Compact(j, ThoughtLog, Retention{MaxEntries: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, dropped)

	got := Load(j, ThoughtLog)
	require.Len(t, got, 4)
	assert.Equal(t, "s6", got[0].Situation)
	assert.Equal(t, "s9", got[3].Situation)
}

func TestClearRestoresDefault(t *testing.T) {
	j, _ := newTestJournal(t)
	Save(j, Country, "Kenya")
	assert.Equal(t, "Kenya", Load(j, Country))
	require.NoError(t, Clear(j, Country))
	assert.Equal(t, "", Load(j, Country))
}

func TestTimestampRoundTripsOriginalFormat(t *testing.T) {
	var ts Timestamp
	require.NoError(t, ts.UnmarshalJSON([]byte(`"2024-05-06T21:30:00.000Z"`)))
	assert.Equal(t, 21, ts.UTC().Hour())

	var empty Timestamp
	require.NoError(t, empty.UnmarshalJSON([]byte(`""`)))
	assert.True(t, empty.IsZero())

	var odd Timestamp
	require.NoError(t, odd.UnmarshalJSON([]byte(`1715000000000`)))
	assert.True(t, odd.IsZero())
	out, err := odd.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `1715000000000`, string(out))
}

func TestAppendKeepsEntriesWithUnreadableTimestamps(t *testing.T) {
	p := store.NewMemory()
	require.NoError(t, p.Write(MoodLog.Name, []byte(`[
		{"timestamp":"2024-05-05T08:00:00Z","label":"May 5","moodScore":4,"note":"a"},
		{"timestamp":"2024-05-06T08:00:00Z","label":"May 6","moodScore":3,"note":"b"},
		{"timestamp":"Tue May 07 2024","label":"May 7","moodScore":2,"note":"c"}
	]`)))
	j := New(p, nil)

	got := Load(j, MoodLog)
	require.Len(t, got, 3)
	assert.True(t, got[2].Timestamp.IsZero())
	assert.Equal(t, `"Tue May 07 2024"`, got[2].Timestamp.Raw())

	Append(j, MoodLog, MoodEntry{
		Timestamp: Now(time.Date(2024, time.May, 8, 8, 0, 0, 0, time.UTC)),
		Label:     "May 8",
		MoodScore: 5,
		Note:      "d",
	})

	got = Load(j, MoodLog)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{got[0].Note, got[1].Note, got[2].Note, got[3].Note})

	data, err := p.Read(MoodLog.Name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"Tue May 07 2024"`)
}

func TestScoreFor(t *testing.T) {
	for in, want := range map[string]int{"Great": 5, "calm": 4, "3": 3, "sad": 2, "awful": 1} {
		got, ok := ScoreFor(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ScoreFor("7")
	assert.False(t, ok)
	_, ok = ScoreFor("meh")
	assert.False(t, ok)
	assert.Equal(t, "great", MoodName(5))
	assert.Equal(t, "struggling", MoodName(1))
}

func TestParseNoteField(t *testing.T) {
	f, ok := ParseNoteField("values")
	assert.True(t, ok)
	assert.Equal(t, NoteValues, f)
	f, ok = ParseNoteField("hierarchyNotes")
	assert.True(t, ok)
	assert.Equal(t, NoteHierarchy, f)
	_, ok = ParseNoteField("diary")
	assert.False(t, ok)
}
