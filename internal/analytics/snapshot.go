package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/sirupsen/logrus"
)

// LogStore is the read side of the workout log. Every call returns the whole
// table. When the three calls are used for one Snapshot the store must serve
// them from a consistent view (one read transaction, or a re-query with no
// writers in between); the engine does not try to detect torn reads.
type LogStore interface {
	AllSessions(ctx context.Context) ([]models.Session, error)
	AllEntries(ctx context.Context) ([]models.Entry, error)
	AllExercises(ctx context.Context) ([]models.Exercise, error)
}

// Snapshot is an immutable read of the log plus id lookup tables.
// Nothing in this package mutates it after construction.
type Snapshot struct {
	Sessions  []models.Session
	Entries   []models.Entry
	Exercises []models.Exercise

	sessionByID  map[models.SessionID]models.Session
	exerciseByID map[models.ExerciseID]models.Exercise
}

func NewSnapshot(sessions []models.Session, entries []models.Entry, exercises []models.Exercise) *Snapshot {
	snap := &Snapshot{
		Sessions:     sessions,
		Entries:      entries,
		Exercises:    exercises,
		sessionByID:  make(map[models.SessionID]models.Session, len(sessions)),
		exerciseByID: make(map[models.ExerciseID]models.Exercise, len(exercises)),
	}
	for _, s := range sessions {
		snap.sessionByID[s.ID] = s
	}
	for _, ex := range exercises {
		snap.exerciseByID[ex.ID] = ex
	}
	return snap
}

// LoadSnapshot reads every table from the store once.
func LoadSnapshot(ctx context.Context, store LogStore) (*Snapshot, error) {
	sessions, err := store.AllSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	entries, err := store.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	exercises, err := store.AllExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"sessions":  len(sessions),
		"entries":   len(entries),
		"exercises": len(exercises),
	}).Debug("snapshot loaded")

	return NewSnapshot(sessions, entries, exercises), nil
}

func (s *Snapshot) Session(id models.SessionID) (models.Session, bool) {
	session, ok := s.sessionByID[id]
	return session, ok
}

func (s *Snapshot) Exercise(id models.ExerciseID) (models.Exercise, bool) {
	ex, ok := s.exerciseByID[id]
	return ex, ok
}

// ExerciseByName finds an exercise by its normalized name.
func (s *Snapshot) ExerciseByName(name string) (models.Exercise, bool) {
	key := models.NormalizeName(name)
	for _, ex := range s.Exercises {
		if models.NormalizeName(ex.Name) == key {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// EntriesFor returns every entry that references the exercise by identity.
// The result is in snapshot order, which carries no meaning.
func (s *Snapshot) EntriesFor(id models.ExerciseID) []models.Entry {
	var out []models.Entry
	for _, e := range s.Entries {
		if e.ExerciseID == id {
			out = append(out, e)
		}
	}
	return out
}

func (s *Snapshot) EntriesForSession(id models.SessionID) []models.Entry {
	var out []models.Entry
	for _, e := range s.Entries {
		if !e.Detached() && e.SessionID == id {
			out = append(out, e)
		}
	}
	return out
}

// entryDate is the date of the session owning the entry. Detached entries and
// entries pointing at a session missing from the snapshot have no date.
func (s *Snapshot) entryDate(e models.Entry) (time.Time, bool) {
	if e.Detached() {
		return time.Time{}, false
	}
	session, ok := s.sessionByID[e.SessionID]
	if !ok {
		return time.Time{}, false
	}
	return session.Date, true
}
