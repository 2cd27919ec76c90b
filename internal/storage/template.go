package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateTemplate stores the template described by tomlData. Importing a
// template with an existing name replaces its exercise list.
func (s *Storage) CreateTemplate(ctx context.Context, tomlData []byte) (*models.Template, error) {
	var tmplTOML models.TemplateTOML
	if err := toml.Unmarshal(tomlData, &tmplTOML); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}
	tmplTOML.Name = strings.TrimSpace(tmplTOML.Name)
	if tmplTOML.Name == "" {
		return nil, errors.New("template name must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tmpl := models.Template{Name: tmplTOML.Name}
	err = tx.QueryRowContext(ctx, `SELECT id FROM templates WHERE name = ?`, tmpl.Name).Scan(&tmpl.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		tmpl.ID = models.NewTemplateID()
		tmpl.CreatedAt = time.Now()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO templates (id, name, created_at) VALUES (?, ?, ?)`,
			string(tmpl.ID), tmpl.Name, formatTime(tmpl.CreatedAt),
		); err != nil {
			return nil, fmt.Errorf("Failed to create template: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("Failed to query template: %w", err)
	default:
		if _, err := tx.ExecContext(ctx, `DELETE FROM template_items WHERE template_id = ?`, string(tmpl.ID)); err != nil {
			return nil, fmt.Errorf("Failed to clear template items: %w", err)
		}
	}

	for position, name := range tmplTOML.Exercises {
		ex, err := getExerciseByName(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO template_items (template_id, exercise_id, position) VALUES (?, ?, ?)`,
			string(tmpl.ID), string(ex.ID), position,
		); err != nil {
			return nil, fmt.Errorf("Failed to create template item: %w", err)
		}
		tmpl.Items = append(tmpl.Items, models.TemplateItem{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			Position:     position,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("Failed to commit transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{"template": tmpl.Name, "items": len(tmpl.Items)}).Info("template saved")
	return &tmpl, nil
}

func (s *Storage) ListTemplates(ctx context.Context) ([]models.Template, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, created_at FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("Failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var t models.Template
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan template: %w", err)
		}
		t.CreatedAt = parseTime(createdAt)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].Items, err = s.templateItems(ctx, templates[i].ID); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (s *Storage) GetTemplateByName(ctx context.Context, name string) (*models.Template, error) {
	var t models.Template
	var createdAt string
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM templates WHERE name = ?`,
		strings.TrimSpace(name),
	).Scan(&t.ID, &t.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("template %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("Failed to get template: %w", err)
	}
	t.CreatedAt = parseTime(createdAt)

	if t.Items, err = s.templateItems(ctx, t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) templateItems(ctx context.Context, id models.TemplateID) ([]models.TemplateItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT ti.exercise_id, e.name, ti.position
        FROM template_items ti
        JOIN exercises e ON e.id = ti.exercise_id
        WHERE ti.template_id = ?
        ORDER BY ti.position
    `, string(id))
	if err != nil {
		return nil, fmt.Errorf("Failed to load template items: %w", err)
	}
	defer rows.Close()

	var items []models.TemplateItem
	for rows.Next() {
		var item models.TemplateItem
		if err := rows.Scan(&item.ExerciseID, &item.ExerciseName, &item.Position); err != nil {
			return nil, fmt.Errorf("Failed to scan template item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Storage) DeleteTemplateByName(ctx context.Context, name string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM templates WHERE name = ?`, strings.TrimSpace(name)).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("template %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("Failed to query template: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM template_items WHERE template_id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete template items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete template: %w", err)
	}
	return tx.Commit()
}
