package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
)

// logReader serves the full-table reads the metrics engine needs from either
// the pool or a single transaction.
type logReader struct {
	q queryer
}

func (r logReader) AllSessions(ctx context.Context) ([]models.Session, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, date, notes FROM sessions ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("Failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var date string
		if err := rows.Scan(&s.ID, &date, &s.Notes); err != nil {
			return nil, fmt.Errorf("Failed to scan session: %w", err)
		}
		s.Date = parseTime(date)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r logReader) AllExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := r.q.QueryContext(ctx, `
        SELECT id, name, kind, favorite, created_at, last_used_at
        FROM exercises
        ORDER BY created_at, name_key
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}

func (r logReader) AllEntries(ctx context.Context) ([]models.Entry, error) {
	sets, err := r.allSets(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, `
        SELECT id, exercise_id, COALESCE(session_id, '')
        FROM entries
        ORDER BY session_id, position
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.ExerciseID, &e.SessionID); err != nil {
			return nil, fmt.Errorf("Failed to scan entry: %w", err)
		}
		e.Sets = sets[e.ID]
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r logReader) allSets(ctx context.Context) (map[models.EntryID][]models.Set, error) {
	rows, err := r.q.QueryContext(ctx, `
        SELECT id, entry_id, reps, load_kg, note
        FROM sets
        ORDER BY entry_id, position
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query sets: %w", err)
	}
	defer rows.Close()

	sets := make(map[models.EntryID][]models.Set)
	for rows.Next() {
		var set models.Set
		var entryID models.EntryID
		if err := rows.Scan(&set.ID, &entryID, &set.Reps, &set.LoadKg, &set.Note); err != nil {
			return nil, fmt.Errorf("Failed to scan set: %w", err)
		}
		sets[entryID] = append(sets[entryID], set)
	}
	return sets, rows.Err()
}

func (s *Storage) AllSessions(ctx context.Context) ([]models.Session, error) {
	return logReader{s.DB}.AllSessions(ctx)
}

func (s *Storage) AllEntries(ctx context.Context) ([]models.Entry, error) {
	return logReader{s.DB}.AllEntries(ctx)
}

func (s *Storage) AllExercises(ctx context.Context) ([]models.Exercise, error) {
	return logReader{s.DB}.AllExercises(ctx)
}

// Snapshot reads sessions, entries and exercises inside one transaction so
// the engine never sees a half-applied write.
func (s *Storage) Snapshot(ctx context.Context) (*analytics.Snapshot, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	return analytics.LoadSnapshot(ctx, logReader{tx})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExercise(row scanner) (*models.Exercise, error) {
	var ex models.Exercise
	var kind, createdAt string
	var lastUsed sql.NullString
	if err := row.Scan(&ex.ID, &ex.Name, &kind, &ex.Favorite, &createdAt, &lastUsed); err != nil {
		return nil, err
	}
	ex.Kind = models.ParseExerciseKind(kind)
	ex.CreatedAt = parseTime(createdAt)
	if lastUsed.Valid && lastUsed.String != "" {
		t := parseTime(lastUsed.String)
		ex.LastUsedAt = &t
	}
	return &ex, nil
}
