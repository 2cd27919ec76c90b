package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/sirupsen/logrus"
)

func (s *Storage) ExerciseExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM exercises WHERE name_key = ?)",
		models.NormalizeName(name),
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check exercise existence: %w", err)
	}
	return exists, nil
}

// CreateExercise inserts ex. Names are unique after trimming and lower-casing.
func (s *Storage) CreateExercise(ctx context.Context, ex models.Exercise) error {
	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return errors.New("exercise name must not be empty")
	}
	if ex.ID == "" {
		ex.ID = models.NewExerciseID()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now()
	}
	if ex.Kind == "" {
		ex.Kind = models.KindWeighted
	}

	exists, err := s.ExerciseExists(ctx, ex.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%q: %w", ex.Name, ErrDuplicateExercise)
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO exercises (id, name, name_key, kind, favorite, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		string(ex.ID),
		ex.Name,
		models.NormalizeName(ex.Name),
		string(ex.Kind),
		utils.BoolToInt(ex.Favorite),
		formatTime(ex.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("Failed to create exercise: %w", err)
	}

	logrus.WithField("exercise", ex.Name).Info("exercise created")
	return nil
}

// GetExerciseByName looks an exercise up by its normalized name.
func (s *Storage) GetExerciseByName(ctx context.Context, name string) (*models.Exercise, error) {
	return getExerciseByName(ctx, s.DB, name)
}

func getExerciseByName(ctx context.Context, q queryer, name string) (*models.Exercise, error) {
	row := q.QueryRowContext(ctx,
		`SELECT id, name, kind, favorite, created_at, last_used_at
        FROM exercises WHERE name_key = ?`,
		models.NormalizeName(name),
	)
	ex, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("Failed to get exercise: %w", err)
	}
	return ex, nil
}

// ListExercises returns favorites first, then the most recently used.
func (s *Storage) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, name, kind, favorite, created_at, last_used_at
        FROM exercises
        ORDER BY favorite DESC, COALESCE(last_used_at, '') DESC, name_key
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}

func (s *Storage) RenameExercise(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.New("exercise name must not be empty")
	}

	ex, err := s.GetExerciseByName(ctx, oldName)
	if err != nil {
		return err
	}

	// Case-only renames keep the same key and are allowed.
	if models.NormalizeName(newName) != models.NormalizeName(ex.Name) {
		exists, err := s.ExerciseExists(ctx, newName)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%q: %w", newName, ErrDuplicateExercise)
		}
	}

	_, err = s.DB.ExecContext(ctx,
		`UPDATE exercises SET name = ?, name_key = ? WHERE id = ?`,
		newName, models.NormalizeName(newName), string(ex.ID),
	)
	if err != nil {
		return fmt.Errorf("Failed to rename exercise: %w", err)
	}

	logrus.WithFields(logrus.Fields{"from": ex.Name, "to": newName}).Info("exercise renamed")
	return nil
}

// MergeExercises moves every entry and template item of from onto into and
// deletes from.
func (s *Storage) MergeExercises(ctx context.Context, from, into string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	src, err := getExerciseByName(ctx, tx, from)
	if err != nil {
		return err
	}
	dst, err := getExerciseByName(ctx, tx, into)
	if err != nil {
		return err
	}
	if src.ID == dst.ID {
		return errors.New("cannot merge an exercise into itself")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE entries SET exercise_id = ? WHERE exercise_id = ?`,
		string(dst.ID), string(src.ID),
	); err != nil {
		return fmt.Errorf("Failed to move entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE template_items SET exercise_id = ? WHERE exercise_id = ?`,
		string(dst.ID), string(src.ID),
	); err != nil {
		return fmt.Errorf("Failed to move template items: %w", err)
	}
	if src.LastUsedAt != nil {
		if err := touchExercise(ctx, tx, dst.ID, *src.LastUsedAt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, string(src.ID)); err != nil {
		return fmt.Errorf("Failed to delete merged exercise: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{"from": src.Name, "into": dst.Name}).Info("exercises merged")
	return nil
}

func (s *Storage) SetFavorite(ctx context.Context, name string, favorite bool) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE exercises SET favorite = ? WHERE name_key = ?`,
		utils.BoolToInt(favorite), models.NormalizeName(name),
	)
	if err != nil {
		return fmt.Errorf("Failed to update favorite: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("exercise %q: %w", name, ErrNotFound)
	}
	return nil
}

// touchExercise moves last_used_at forward to at, never backwards.
func touchExercise(ctx context.Context, q queryer, id models.ExerciseID, at time.Time) error {
	ts := formatTime(at)
	_, err := q.ExecContext(ctx,
		`UPDATE exercises SET last_used_at = ?
        WHERE id = ? AND (last_used_at IS NULL OR last_used_at < ?)`,
		ts, string(id), ts,
	)
	if err != nil {
		return fmt.Errorf("Failed to update last used: %w", err)
	}
	return nil
}
