package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/sirupsen/logrus"
)

// SaveSession persists a finished draft: the session, one entry per drafted
// exercise and their sets, in a single transaction.
func (s *Storage) SaveSession(ctx context.Context, draft *models.DraftSession) error {
	if draft == nil {
		return errors.New("no session to save")
	}
	if draft.SessionID == "" {
		draft.SessionID = models.NewSessionID()
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, date, notes) VALUES (?, ?, ?)`,
		string(draft.SessionID),
		formatTime(draft.Date),
		draft.Notes,
	)
	if err != nil {
		return fmt.Errorf("Failed to create session: %w", err)
	}

	for position, entry := range draft.Entries {
		entryID := models.NewEntryID()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO entries (id, exercise_id, session_id, position)
            VALUES (?, ?, ?, ?)`,
			string(entryID),
			string(entry.ExerciseID),
			string(draft.SessionID),
			position,
		)
		if err != nil {
			return fmt.Errorf("Failed to create entry for %s: %w", entry.ExerciseName, err)
		}

		for setPos, set := range entry.Sets {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO sets (id, entry_id, position, reps, load_kg, note)
                VALUES (?, ?, ?, ?, ?, ?)`,
				string(models.NewSetID()),
				string(entryID),
				setPos,
				set.Reps,
				set.LoadKg,
				set.Note,
			)
			if err != nil {
				return fmt.Errorf("Failed to save set: %w", err)
			}
		}

		if err := touchExercise(ctx, tx, entry.ExerciseID, draft.Date); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"session": draft.SessionID,
		"entries": len(draft.Entries),
	}).Info("session saved")
	return nil
}

// DeleteSession removes a session with its entries and their sets.
func (s *Storage) DeleteSession(ctx context.Context, id models.SessionID) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Deleted explicitly so remote stores without foreign key enforcement
	// cascade the same way.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM sets WHERE entry_id IN (SELECT id FROM entries WHERE session_id = ?)`,
		string(id),
	); err != nil {
		return fmt.Errorf("Failed to delete sets: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE session_id = ?`, string(id)); err != nil {
		return fmt.Errorf("Failed to delete entries: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("Failed to delete session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	logrus.WithField("session", id).Info("session deleted")
	return nil
}
