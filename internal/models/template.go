package models

import (
	"time"

	"github.com/google/uuid"
)

type TemplateID string

func NewTemplateID() TemplateID { return TemplateID(uuid.New().String()) }

// Template seeds a new session with exercises in a fixed order.
type Template struct {
	ID        TemplateID     `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []TemplateItem `json:"items"`
}

type TemplateItem struct {
	ExerciseID   ExerciseID `json:"exercise_id"`
	ExerciseName string     `json:"exercise_name"`
	Position     int        `json:"position"`
}

//
// For TOML parsing only
//

type TemplateTOML struct {
	Name      string   `toml:"name"`
	Exercises []string `toml:"exercises"`
}
