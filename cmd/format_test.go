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

func TestFormatDeltaPercent(t *testing.T) {
	assert.Equal(t, "—", formatDeltaPercent(0, false))
	assert.Equal(t, "+10%", formatDeltaPercent(10, true))
	assert.Equal(t, "-25%", formatDeltaPercent(-25, true))
	assert.Equal(t, "+0%", formatDeltaPercent(0, true))
}

func TestFormatDeltaKg(t *testing.T) {
	assert.Equal(t, "+50.0 kg", formatDeltaKg(50))
	assert.Equal(t, "-12.5 kg", formatDeltaKg(-12.5))
	assert.Equal(t, "+1500 kg", formatDeltaKg(1500))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab  ", centerText("ab", 6))
	assert.Equal(t, " abc  ", centerText("abc", 6))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}

func TestTableRule(t *testing.T) {
	assert.Equal(t, "┌──┬───┐", tableRule([]int{2, 3}, "┌", "┬", "┐"))
	assert.Equal(t, "│a │bc │", tableRow([]int{2, 3}, "a", "bc"))
}

func TestRenderBars(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	lines := renderBars([]analytics.Point{
		{Day: day, Value: 100},
		{Day: day.AddDate(0, 0, 2), Value: 50},
	}, 4, "01-02")

	require.Len(t, lines, 2)
	assert.Equal(t, "06-02 ████ 100.0 kg", lines[0])
	assert.Equal(t, "06-04 ██   50.0 kg", lines[1])
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 week", plural(1, "week"))
	assert.Equal(t, "3 weeks", plural(3, "week"))
}

func TestParseIndex(t *testing.T) {
	idx, err := parseIndex("2", "set", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = parseIndex("0", "set", 3)
	assert.Error(t, err)
	_, err = parseIndex("4", "set", 3)
	assert.Error(t, err)
	_, err = parseIndex("squat", "set", 3)
	assert.Error(t, err)
}

func TestWithSets(t *testing.T) {
	entries := []models.DraftEntry{
		{ExerciseName: "Squat", Sets: []models.DraftSet{{Reps: 5, LoadKg: 100}}},
		{ExerciseName: "Bench"},
	}
	kept := withSets(entries)
	require.Len(t, kept, 1)
	assert.Equal(t, "Squat", kept[0].ExerciseName)
}

func TestValidateSet(t *testing.T) {
	assert.NoError(t, validateSet(0, 0))
	assert.Error(t, validateSet(-1, 10))
	assert.Error(t, validateSet(5, -2.5))
}

func TestSuggestExercises(t *testing.T) {
	exercises := []models.Exercise{
		{Name: "Bench Press"},
		{Name: "Incline Bench Press"},
		{Name: "Squat"},
	}

	got := suggestExercises("bnch", exercises)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "Bench Press")
	assert.NotContains(t, got, "Squat")

	assert.Empty(t, suggestExercises("zzz", exercises))

	err := exerciseNotFound("sqt", exercises)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "did you mean Squat?")
}
