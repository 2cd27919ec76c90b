package analytics

import (
	"math"
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
)

// PRTolerance is the absolute distance under which an entry's best load counts
// as equal to the all-time best. Keep it absolute: relative or ULP comparisons
// change which entries qualify at the margin.
const PRTolerance = 0.0001

// AllTimeMaxLoad is the heaviest load across every set logged for the
// exercise, detached entries included. 0 when nothing was logged.
func (s *Snapshot) AllTimeMaxLoad(id models.ExerciseID) float64 {
	return s.allTimeMax(id, MetricMaxLoad)
}

// AllTimeMaxE1RM is the highest estimated 1RM across every set of the exercise.
func (s *Snapshot) AllTimeMaxE1RM(id models.ExerciseID) float64 {
	return s.allTimeMax(id, MetricMaxE1RM)
}

func (s *Snapshot) allTimeMax(id models.ExerciseID, metric Metric) float64 {
	var best float64
	found := false
	for _, e := range s.EntriesFor(id) {
		if len(e.Sets) == 0 {
			continue
		}
		if v := metric.Of(e.Sets); !found || v > best {
			best, found = v, true
		}
	}
	return best
}

func matchesRecord(best, allTimeBest float64) bool {
	return best > 0 && math.Abs(best-allTimeBest) < PRTolerance
}

// IsPREntry reports whether the entry's heaviest set ties the exercise's
// all-time heaviest set. Entries without sets never qualify.
func (s *Snapshot) IsPREntry(e models.Entry) bool {
	return matchesRecord(MetricMaxLoad.Of(e.Sets), s.AllTimeMaxLoad(e.ExerciseID))
}

func (s *Snapshot) SessionHasPR(id models.SessionID) bool {
	for _, e := range s.EntriesForSession(id) {
		if s.IsPREntry(e) {
			return true
		}
	}
	return false
}

// SessionsWithPR flags every session holding at least one PR entry. It is the
// batch form of SessionHasPR and computes each exercise's best only once.
func (s *Snapshot) SessionsWithPR() map[models.SessionID]bool {
	bests := make(map[models.ExerciseID]float64)
	for _, e := range s.Entries {
		if len(e.Sets) == 0 {
			continue
		}
		v := MetricMaxLoad.Of(e.Sets)
		if cur, ok := bests[e.ExerciseID]; !ok || v > cur {
			bests[e.ExerciseID] = v
		}
	}

	flagged := make(map[models.SessionID]bool)
	for _, e := range s.Entries {
		if e.Detached() {
			continue
		}
		if matchesRecord(MetricMaxLoad.Of(e.Sets), bests[e.ExerciseID]) {
			flagged[e.SessionID] = true
		}
	}
	return flagged
}

// ExerciseSummary is the all-time picture of one exercise.
type ExerciseSummary struct {
	Exercise      models.Exercise
	MaxLoadKg     float64
	MaxE1RM       float64
	BestSet       *models.Set // Set with the highest estimated 1RM.
	Entries       int
	Sets          int
	VolumeKg      float64
	PREntries     int
	LastPerformed time.Time // Zero when never performed in a session.
}

func (s *Snapshot) Summary(id models.ExerciseID) (ExerciseSummary, bool) {
	ex, ok := s.Exercise(id)
	if !ok {
		return ExerciseSummary{}, false
	}

	sum := ExerciseSummary{
		Exercise:  ex,
		MaxLoadKg: s.AllTimeMaxLoad(id),
		MaxE1RM:   s.AllTimeMaxE1RM(id),
	}
	for _, e := range s.EntriesFor(id) {
		sum.Entries++
		sum.Sets += len(e.Sets)
		sum.VolumeKg += EntryVolume(e)
		if matchesRecord(MetricMaxLoad.Of(e.Sets), sum.MaxLoadKg) {
			sum.PREntries++
		}
		for i := range e.Sets {
			set := e.Sets[i]
			if sum.BestSet == nil || E1RM(set.LoadKg, set.Reps) > E1RM(sum.BestSet.LoadKg, sum.BestSet.Reps) {
				sum.BestSet = &set
			}
		}
		if date, ok := s.entryDate(e); ok && date.After(sum.LastPerformed) {
			sum.LastPerformed = date
		}
	}
	return sum, true
}
