package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/gymlog/internal/models"
)

// ParseExercisesFromTOML reads an exercise import file of [[exercise]] tables.
func ParseExercisesFromTOML(path string) ([]models.ExerciseDefTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.ExerciseImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}
	return imp.Exercises, nil
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FormatKg renders a load, dropping the decimal once it reaches four digits.
func FormatKg(kg float64) string {
	if kg >= 1000 {
		return fmt.Sprintf("%.0f kg", kg)
	}
	return fmt.Sprintf("%.1f kg", kg)
}
