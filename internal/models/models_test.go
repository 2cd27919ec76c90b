package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExerciseKind(t *testing.T) {
	assert.Equal(t, KindBodyweight, ParseExerciseKind(" BW "))
	assert.Equal(t, KindBodyweightPlusLoad, ParseExerciseKind("bodyweight_plus_load"))
	assert.Equal(t, KindWeighted, ParseExerciseKind(""))
	assert.Equal(t, KindWeighted, ParseExerciseKind("kettlebell"))
	assert.Equal(t, "Bodyweight + Load", KindBodyweightPlusLoad.DisplayName())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "bench press", NormalizeName("  Bench Press "))
	assert.Equal(t, NormalizeName("SQUAT"), NormalizeName("squat"))
}

func TestDraftSession_EntryFor(t *testing.T) {
	var draft DraftSession
	squat, bench := NewExerciseID(), NewExerciseID()

	first := draft.EntryFor(squat, "Squat")
	first.Sets = append(first.Sets, DraftSet{Reps: 5, LoadKg: 100})
	draft.EntryFor(bench, "Bench")

	again := draft.EntryFor(squat, "Squat")
	require.Len(t, draft.Entries, 2)
	assert.Len(t, again.Sets, 1)
	assert.Equal(t, "Bench", draft.Entries[1].ExerciseName)
}

func TestEntry_Detached(t *testing.T) {
	assert.True(t, Entry{ExerciseID: "x"}.Detached())
	assert.False(t, Entry{ExerciseID: "x", SessionID: "s"}.Detached())
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
