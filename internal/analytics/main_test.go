package analytics_test

import (
	"testing"
	"time"

	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Wednesday; the week starts on Monday 2025-06-09.
var testNow = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func newEngine(now time.Time) *analytics.Engine {
	return analytics.New(time.UTC, func() time.Time { return now })
}

type logBuilder struct {
	sessions  []models.Session
	entries   []models.Entry
	exercises []models.Exercise
}

func (b *logBuilder) exercise(name string) models.ExerciseID {
	ex := models.Exercise{
		ID:   models.NewExerciseID(),
		Name: name,
		Kind: models.KindWeighted,
	}
	b.exercises = append(b.exercises, ex)
	return ex.ID
}

func (b *logBuilder) session(date time.Time) models.SessionID {
	s := models.Session{ID: models.NewSessionID(), Date: date}
	b.sessions = append(b.sessions, s)
	return s.ID
}

func (b *logBuilder) entry(ex models.ExerciseID, session models.SessionID, sets ...models.Set) models.Entry {
	e := models.Entry{
		ID:         models.NewEntryID(),
		ExerciseID: ex,
		SessionID:  session,
		Sets:       sets,
	}
	b.entries = append(b.entries, e)
	return e
}

// logged adds a session at date holding one entry for ex.
func (b *logBuilder) logged(ex models.ExerciseID, date time.Time, sets ...models.Set) models.Entry {
	return b.entry(ex, b.session(date), sets...)
}

func (b *logBuilder) snapshot() *analytics.Snapshot {
	return analytics.NewSnapshot(b.sessions, b.entries, b.exercises)
}

func set(loadKg float64, reps int) models.Set {
	return models.Set{ID: models.NewSetID(), LoadKg: loadKg, Reps: reps}
}
