package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/storage"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// suggestExercises returns up to three exercise names that fuzzily match
// name, best match first.
func suggestExercises(name string, exercises []models.Exercise) []string {
	names := make([]string, len(exercises))
	for i, ex := range exercises {
		names[i] = strings.ToLower(ex.Name)
	}

	matches := fuzzy.Find(models.NormalizeName(name), names)
	var out []string
	for _, m := range matches {
		out = append(out, exercises[m.Index].Name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// exerciseNotFound builds the not-found error, naming close matches when
// there are any.
func exerciseNotFound(name string, exercises []models.Exercise) error {
	err := fmt.Errorf("exercise %q: %w", name, storage.ErrNotFound)
	if s := suggestExercises(name, exercises); len(s) > 0 {
		return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(s, ", "))
	}
	return err
}

// lookupExercise fetches an exercise by name, turning a miss into an error
// with suggestions.
func lookupExercise(ctx context.Context, st *storage.Storage, name string) (*models.Exercise, error) {
	ex, err := st.GetExerciseByName(ctx, name)
	if err == nil || !errors.Is(err, storage.ErrNotFound) {
		return ex, err
	}
	exercises, listErr := st.ListExercises(ctx)
	if listErr != nil {
		return nil, err
	}
	return nil, exerciseNotFound(name, exercises)
}
