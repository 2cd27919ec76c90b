package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/misterclayt0n/gymlog/internal/config"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftLifecycle(t *testing.T) {
	t.Setenv(config.DirEnv, t.TempDir())

	assert.False(t, DraftExists())
	_, err := LoadDraft()
	require.ErrorIs(t, err, ErrNoDraft)

	date := time.Date(2025, 6, 9, 18, 30, 0, 0, time.UTC)
	draft := &models.DraftSession{
		SessionID: models.NewSessionID(),
		Date:      date,
		Notes:     "legs",
	}
	squat := models.NewExerciseID()
	entry := draft.EntryFor(squat, "Squat")
	entry.Sets = append(entry.Sets, models.DraftSet{Reps: 5, LoadKg: 100, Note: "easy"})
	again := draft.EntryFor(squat, "Squat")
	again.Sets = append(again.Sets, models.DraftSet{Reps: 3, LoadKg: 110})

	require.NoError(t, SaveDraft(draft))
	assert.True(t, DraftExists())

	loaded, err := LoadDraft()
	require.NoError(t, err)
	assert.Equal(t, draft.SessionID, loaded.SessionID)
	assert.True(t, date.Equal(loaded.Date))
	assert.Equal(t, "legs", loaded.Notes)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, squat, loaded.Entries[0].ExerciseID)
	assert.Equal(t, []models.DraftSet{
		{Reps: 5, LoadKg: 100, Note: "easy"},
		{Reps: 3, LoadKg: 110},
	}, loaded.Entries[0].Sets)

	require.NoError(t, ClearDraft())
	assert.False(t, DraftExists())
	require.NoError(t, ClearDraft())
}

func TestParseExercisesFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercises.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[exercise]]
name = "Bench Press"
favorite = true

[[exercise]]
name = "Pull Up"
kind = "bodyweight"
`), 0644))

	defs, err := ParseExercisesFromTOML(path)
	require.NoError(t, err)
	assert.Equal(t, []models.ExerciseDefTOML{
		{Name: "Bench Press", Favorite: true},
		{Name: "Pull Up", Kind: "bodyweight"},
	}, defs)
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "0.0 kg", FormatKg(0))
	assert.Equal(t, "102.5 kg", FormatKg(102.5))
	assert.Equal(t, "999.9 kg", FormatKg(999.94))
	assert.Equal(t, "1000 kg", FormatKg(1000))
	assert.Equal(t, "12346 kg", FormatKg(12345.6))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-09", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2025-06-09 07:15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 9, 7, 15, 0, 0, time.UTC), got)

	_, err = ParseDate("09/06/2025", time.UTC)
	assert.Error(t, err)
}
