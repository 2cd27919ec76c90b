package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/misterclayt0n/gymlog/internal/models"
)

// parseIndex turns a 1-based index argument into a 0-based one within n.
func parseIndex(arg, what string, n int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid %s index (should be 1-based)", what)
	}
	if idx > n {
		return 0, fmt.Errorf("%s index out of range", what)
	}
	return idx - 1, nil
}

// draftEntryByIndex resolves a numeric argument to an entry already in the
// draft. ok is false when arg is not a number in range.
func draftEntryByIndex(draft *models.DraftSession, arg string) (*models.DraftEntry, bool) {
	idx, err := parseIndex(arg, "exercise", len(draft.Entries))
	if err != nil {
		return nil, false
	}
	return &draft.Entries[idx], true
}

func validateSet(reps int, loadKg float64) error {
	if reps < 0 {
		return errors.New("reps must not be negative")
	}
	if loadKg < 0 {
		return errors.New("weight must not be negative")
	}
	return nil
}

// withSets drops draft entries that never got a set.
func withSets(entries []models.DraftEntry) []models.DraftEntry {
	var kept []models.DraftEntry
	for _, e := range entries {
		if len(e.Sets) > 0 {
			kept = append(kept, e)
		}
	}
	return kept
}
