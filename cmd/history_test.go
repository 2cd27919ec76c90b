package cmd

import (
	"testing"
	"time"

	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() *analytics.Snapshot {
	squat := models.Exercise{ID: "ex-squat", Name: "Squat"}
	bench := models.Exercise{ID: "ex-bench", Name: "Bench Press"}

	sessions := []models.Session{
		{ID: "aaaa-1", Date: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)},
		{ID: "aaaa-2", Date: time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)},
		{ID: "bbbb-3", Date: time.Date(2025, 6, 4, 7, 0, 0, 0, time.UTC)},
	}
	entries := []models.Entry{
		{ID: "e1", ExerciseID: squat.ID, SessionID: "aaaa-1", Sets: []models.Set{{Reps: 5, LoadKg: 100}}},
		{ID: "e2", ExerciseID: squat.ID, SessionID: "aaaa-2", Sets: []models.Set{{Reps: 5, LoadKg: 110}, {Reps: 5, LoadKg: 105}}},
		{ID: "e3", ExerciseID: bench.ID, SessionID: "bbbb-3", Sets: []models.Set{{Reps: 8, LoadKg: 60}}},
		{ID: "e4", ExerciseID: bench.ID, Sets: []models.Set{{Reps: 1, LoadKg: 200}}},
	}
	return analytics.NewSnapshot(sessions, entries, []models.Exercise{squat, bench})
}

func TestBuildHistory(t *testing.T) {
	snap := fixtureSnapshot()

	rows := buildHistory(snap, snap.Sessions, "")
	require.Len(t, rows, 3)
	assert.Equal(t, models.SessionID("aaaa-2"), rows[0].Session.ID)
	assert.Equal(t, models.SessionID("bbbb-3"), rows[1].Session.ID)
	assert.Equal(t, models.SessionID("aaaa-1"), rows[2].Session.ID)

	assert.Equal(t, 2, rows[0].Sets)
	assert.Equal(t, 1075.0, rows[0].VolumeKg)
	assert.True(t, rows[0].PR)
	assert.False(t, rows[2].PR)
	// The detached 200 kg entry still sets the bar for bench.
	assert.False(t, rows[1].PR)

	rows = buildHistory(snap, snap.Sessions, "ex-bench")
	require.Len(t, rows, 1)
	assert.Equal(t, models.SessionID("bbbb-3"), rows[0].Session.ID)
}

func TestFindSession(t *testing.T) {
	snap := fixtureSnapshot()

	s, err := findSession(snap, "aaaa-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionID("aaaa-1"), s.ID)

	s, err = findSession(snap, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, models.SessionID("bbbb-3"), s.ID)

	_, err = findSession(snap, "aaaa")
	assert.Error(t, err)

	_, err = findSession(snap, "zzzz")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionsOnDayAndMonthGrouping(t *testing.T) {
	snap := fixtureSnapshot()
	engine := analytics.New(time.UTC, func() time.Time { return time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC) })

	onDay := sessionsOnDay(engine, snap, time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC))
	require.Len(t, onDay, 2)
	assert.Equal(t, models.SessionID("bbbb-3"), onDay[0].ID)

	byDay := sessionsByMonthDay(engine, snap, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Len(t, byDay[2], 1)
	assert.Len(t, byDay[4], 2)
	assert.Equal(t, 3, countSessions(byDay))

	assert.Empty(t, sessionsByMonthDay(engine, snap, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDatedEntries(t *testing.T) {
	snap := fixtureSnapshot()

	got := datedEntries(snap, "ex-squat")
	require.Len(t, got, 2)
	assert.Equal(t, models.EntryID("e2"), got[0].entry.ID)

	// Detached entries have no date to show.
	assert.Len(t, datedEntries(snap, "ex-bench"), 1)
}

func TestDraftEntryAsEntry(t *testing.T) {
	entry := draftEntryAsEntry(models.DraftEntry{
		ExerciseID: "ex-squat",
		Sets:       []models.DraftSet{{Reps: 5, LoadKg: 100}, {Reps: 3, LoadKg: 110, Note: "top"}},
	})
	assert.Equal(t, models.ExerciseID("ex-squat"), entry.ExerciseID)
	assert.Equal(t, 830.0, analytics.EntryVolume(entry))
	assert.Equal(t, "top", entry.Sets[1].Note)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890"))
	assert.Equal(t, "abc", shortID("abc"))
}
