package analytics

import (
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
)

// EntryVolume is the sum of load × reps over the entry's sets.
func EntryVolume(e models.Entry) float64 {
	var vol float64
	for _, set := range e.Sets {
		vol += set.LoadKg * float64(set.Reps)
	}
	return vol
}

func (s *Snapshot) SessionVolume(id models.SessionID) float64 {
	var vol float64
	for _, e := range s.EntriesForSession(id) {
		vol += EntryVolume(e)
	}
	return vol
}

type WeekStats struct {
	Sessions int     `json:"sessions"`
	Sets     int     `json:"sets"`
	VolumeKg float64 `json:"volume_kg"`
}

// WeeklySummary compares the current week with the one before it.
type WeeklySummary struct {
	WeekStart     time.Time `json:"week_start"`
	ThisWeek      WeekStats `json:"this_week"`
	LastWeek      WeekStats `json:"last_week"`
	VolumeDeltaKg float64   `json:"volume_delta_kg"`
	PRCount       int       `json:"pr_count"`
}

// VolumeDeltaPercent is the week-over-week volume change in percent. ok is
// false when last week has no volume to compare against.
func (w WeeklySummary) VolumeDeltaPercent() (pct float64, ok bool) {
	if w.LastWeek.VolumeKg <= 0 {
		return 0, false
	}
	return (w.ThisWeek.VolumeKg - w.LastWeek.VolumeKg) / w.LastWeek.VolumeKg * 100, true
}

func (e *Engine) WeeklySummary(snap *Snapshot) WeeklySummary {
	thisStart := e.StartOfWeek(e.Now())
	lastStart := thisStart.AddDate(0, 0, -7)

	this := weekStats(snap, thisStart, thisStart.AddDate(0, 0, 7))
	last := weekStats(snap, lastStart, thisStart)

	return WeeklySummary{
		WeekStart:     thisStart,
		ThisWeek:      this,
		LastWeek:      last,
		VolumeDeltaKg: this.VolumeKg - last.VolumeKg,
		PRCount:       e.WeeklyPRCount(snap, thisStart),
	}
}

// WeeklyPRCount counts the distinct exercises with a PR entry among the
// sessions of the week starting at weekStart.
func (e *Engine) WeeklyPRCount(snap *Snapshot, weekStart time.Time) int {
	start := e.StartOfWeek(weekStart)
	end := start.AddDate(0, 0, 7)

	prs := make(map[models.ExerciseID]struct{})
	for _, session := range sessionsBetween(snap, start, end) {
		for _, entry := range snap.EntriesForSession(session.ID) {
			if snap.IsPREntry(entry) {
				prs[entry.ExerciseID] = struct{}{}
			}
		}
	}
	return len(prs)
}

func weekStats(snap *Snapshot, start, end time.Time) WeekStats {
	var stats WeekStats
	for _, session := range sessionsBetween(snap, start, end) {
		stats.Sessions++
		for _, entry := range snap.EntriesForSession(session.ID) {
			stats.Sets += len(entry.Sets)
			stats.VolumeKg += EntryVolume(entry)
		}
	}
	return stats
}

// sessionsBetween returns the sessions dated in [start, end).
func sessionsBetween(snap *Snapshot, start, end time.Time) []models.Session {
	var out []models.Session
	for _, s := range snap.Sessions {
		if s.Date.Before(start) || !s.Date.Before(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}
