package analytics

import (
	"sort"
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
)

// WeekSessions groups the sessions of one Monday-start week.
type WeekSessions struct {
	Start    time.Time
	Sessions []models.Session
}

// SessionsByWeek groups sessions by week start, ascending.
func (e *Engine) SessionsByWeek(snap *Snapshot) []WeekSessions {
	byStart := make(map[int64]*WeekSessions)
	for _, s := range snap.Sessions {
		start := e.StartOfWeek(s.Date)
		w, ok := byStart[start.Unix()]
		if !ok {
			w = &WeekSessions{Start: start}
			byStart[start.Unix()] = w
		}
		w.Sessions = append(w.Sessions, s)
	}

	weeks := make([]WeekSessions, 0, len(byStart))
	for _, w := range byStart {
		weeks = append(weeks, *w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Start.Before(weeks[j].Start)
	})
	return weeks
}

// CurrentStreak counts consecutive weeks with at least one session, walking
// back from the current week. An empty current week means no streak.
func (e *Engine) CurrentStreak(snap *Snapshot) int {
	active := make(map[int64]bool)
	for _, w := range e.SessionsByWeek(snap) {
		active[w.Start.Unix()] = true
	}

	streak := 0
	for week := e.StartOfWeek(e.Now()); active[week.Unix()]; week = week.AddDate(0, 0, -7) {
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive active weeks anywhere in
// the log.
func (e *Engine) LongestStreak(snap *Snapshot) int {
	best, run := 0, 0
	var prev time.Time
	for i, w := range e.SessionsByWeek(snap) {
		if i > 0 && prev.AddDate(0, 0, 7).Equal(w.Start) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = w.Start
	}
	return best
}
