package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ExerciseID string

func NewExerciseID() ExerciseID { return ExerciseID(uuid.New().String()) }

type ExerciseKind string

const (
	KindWeighted           ExerciseKind = "weighted"
	KindBodyweight         ExerciseKind = "bodyweight"
	KindBodyweightPlusLoad ExerciseKind = "bodyweight_plus_load"
)

// ParseExerciseKind maps user or stored input to a kind. Unknown values are
// treated as weighted.
func ParseExerciseKind(s string) ExerciseKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bodyweight", "bw":
		return KindBodyweight
	case "bodyweight_plus_load", "bodyweight+load", "bw+load", "weighted_bodyweight":
		return KindBodyweightPlusLoad
	default:
		return KindWeighted
	}
}

func (k ExerciseKind) DisplayName() string {
	switch k {
	case KindBodyweight:
		return "Bodyweight"
	case KindBodyweightPlusLoad:
		return "Bodyweight + Load"
	default:
		return "Weighted"
	}
}

type Exercise struct {
	ID         ExerciseID   `json:"id"`
	Name       string       `json:"name"`
	Kind       ExerciseKind `json:"kind"`
	Favorite   bool         `json:"favorite"`
	CreatedAt  time.Time    `json:"created_at"`
	LastUsedAt *time.Time   `json:"last_used_at,omitempty"`
}

// NormalizeName is the key exercise names are compared by: trimmed and lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`
	Favorite bool   `toml:"favorite"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
