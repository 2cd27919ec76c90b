package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_StartOfWeek_Monday(t *testing.T) {
	engine := newEngine(testNow)
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, engine.StartOfWeek(testNow))
	assert.Equal(t, monday, engine.StartOfWeek(monday))
	assert.Equal(t, monday, engine.StartOfWeek(time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, monday.AddDate(0, 0, 7), engine.StartOfWeek(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
}

func TestEngine_Streaks(t *testing.T) {
	var b logBuilder
	engine := newEngine(testNow)
	week := engine.StartOfWeek(testNow)
	weeksAgo := func(n int) time.Time { return week.AddDate(0, 0, -7*n).Add(10 * time.Hour) }

	// W, W-1, W-2 then a gap at W-3 and W-4, then W-5, W-6.
	for _, n := range []int{0, 1, 2, 5, 6} {
		b.session(weeksAgo(n))
	}
	// A second session in a week must not lengthen anything.
	b.session(weeksAgo(1).Add(24 * time.Hour))

	snap := b.snapshot()
	assert.Equal(t, 3, engine.CurrentStreak(snap))
	assert.Equal(t, 3, engine.LongestStreak(snap))
}

func TestEngine_Streaks_CurrentWeekEmpty(t *testing.T) {
	var b logBuilder
	engine := newEngine(testNow)
	week := engine.StartOfWeek(testNow)

	for n := 1; n <= 5; n++ {
		b.session(week.AddDate(0, 0, -7*n))
	}
	b.session(week.AddDate(0, 0, -7*8))

	snap := b.snapshot()
	assert.Equal(t, 0, engine.CurrentStreak(snap))
	assert.Equal(t, 5, engine.LongestStreak(snap))
}

func TestEngine_Streaks_NoSessions(t *testing.T) {
	var b logBuilder
	engine := newEngine(testNow)
	snap := b.snapshot()

	assert.Equal(t, 0, engine.CurrentStreak(snap))
	assert.Equal(t, 0, engine.LongestStreak(snap))
	assert.Empty(t, engine.SessionsByWeek(snap))
}

func TestEngine_SessionsByWeek(t *testing.T) {
	var b logBuilder
	engine := newEngine(testNow)
	week := engine.StartOfWeek(testNow)

	b.session(week.Add(time.Hour))
	b.session(week.AddDate(0, 0, -14))
	b.session(week.AddDate(0, 0, 2))

	weeks := engine.SessionsByWeek(b.snapshot())
	require.Len(t, weeks, 2)
	assert.Equal(t, week.AddDate(0, 0, -14), weeks[0].Start)
	assert.Len(t, weeks[0].Sessions, 1)
	assert.Equal(t, week, weeks[1].Start)
	assert.Len(t, weeks[1].Sessions, 2)
}
