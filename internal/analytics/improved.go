package analytics

import (
	"github.com/misterclayt0n/gymlog/internal/models"
)

const improvementWindowDays = 30

// Improvement compares an exercise's best load over the last 30 days with the
// 30 days before.
type Improvement struct {
	ExerciseID   models.ExerciseID `json:"exercise_id"`
	ExerciseName string            `json:"exercise_name"`
	Delta        float64           `json:"delta"`
	Best30       float64           `json:"best_30"`
	Prev30       float64           `json:"prev_30"`
}

// MostImproved picks the exercise whose best load grew the most between
// [now-60d, now-30d) and [now-30d, now]. Only positive growth counts; ok is
// false when nothing improved. Exact ties go to the alphabetically first
// name, then the smaller id.
func (e *Engine) MostImproved(snap *Snapshot) (Improvement, bool) {
	now := e.Now()
	start30 := now.AddDate(0, 0, -improvementWindowDays)
	start60 := now.AddDate(0, 0, -2*improvementWindowDays)

	best30 := make(map[models.ExerciseID]float64)
	prev30 := make(map[models.ExerciseID]float64)
	for _, entry := range snap.Entries {
		date, ok := snap.entryDate(entry)
		if !ok || date.After(now) || date.Before(start60) {
			continue
		}
		best := MetricMaxLoad.Of(entry.Sets)
		if !date.Before(start30) {
			best30[entry.ExerciseID] = max(best30[entry.ExerciseID], best)
		} else {
			prev30[entry.ExerciseID] = max(prev30[entry.ExerciseID], best)
		}
	}

	var winner Improvement
	found := false
	for _, ex := range snap.Exercises {
		b, p := best30[ex.ID], prev30[ex.ID]
		delta := b - p
		if delta <= 0 {
			continue
		}
		candidate := Improvement{ExerciseID: ex.ID, ExerciseName: ex.Name, Delta: delta, Best30: b, Prev30: p}
		if !found || beats(candidate, winner) {
			winner, found = candidate, true
		}
	}
	return winner, found
}

func beats(a, b Improvement) bool {
	if a.Delta != b.Delta {
		return a.Delta > b.Delta
	}
	ka, kb := models.NormalizeName(a.ExerciseName), models.NormalizeName(b.ExerciseName)
	if ka != kb {
		return ka < kb
	}
	return a.ExerciseID < b.ExerciseID
}
