package analytics_test

import (
	"testing"
	"time"

	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Series_SameDayKeepsMax(t *testing.T) {
	var b logBuilder
	squat := b.exercise("Squat")
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	b.logged(squat, day.Add(8*time.Hour), set(70, 5), set(80, 3))
	b.logged(squat, day.Add(18*time.Hour), set(85, 2))

	points := newEngine(testNow).MaxLoadSeries(b.snapshot(), squat)
	require.Len(t, points, 1)
	assert.Equal(t, analytics.Point{Day: day, Value: 85}, points[0])
}

func TestEngine_Series_EmptyEntryDoesNotSuppressDay(t *testing.T) {
	var b logBuilder
	bench := b.exercise("Bench")
	day := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	b.logged(bench, day)
	b.logged(bench, day.Add(time.Hour), set(60, 8))

	points := newEngine(testNow).MaxLoadSeries(b.snapshot(), bench)
	require.Len(t, points, 1)
	assert.Equal(t, 60.0, points[0].Value)
}

func TestEngine_Series_EmptyEntryAloneIsZero(t *testing.T) {
	var b logBuilder
	bench := b.exercise("Bench")
	b.logged(bench, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC))

	points := newEngine(testNow).MaxE1RMSeries(b.snapshot(), bench)
	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].Value)
}

func TestEngine_Series_OrderingAndFiltering(t *testing.T) {
	var b logBuilder
	squat := b.exercise("Squat")
	deadlift := b.exercise("Deadlift")

	d1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 8, 9, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose.
	b.logged(squat, d3, set(100, 5))
	b.logged(squat, d1, set(90, 5))
	b.logged(squat, d2, set(95, 5))
	b.logged(deadlift, d2, set(180, 1))
	// Detached entries have no day.
	b.entry(squat, "", set(300, 1))

	points := newEngine(testNow).MaxLoadSeries(b.snapshot(), squat)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{90, 95, 100}, []float64{points[0].Value, points[1].Value, points[2].Value})
	assert.True(t, points[0].Day.Before(points[1].Day))
	assert.True(t, points[1].Day.Before(points[2].Day))
}

func TestEngine_Series_MissingSessionIsSkipped(t *testing.T) {
	var b logBuilder
	squat := b.exercise("Squat")
	b.entry(squat, models.NewSessionID(), set(100, 5))

	assert.Empty(t, newEngine(testNow).MaxLoadSeries(b.snapshot(), squat))
}

func TestEngine_Series_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	var b logBuilder
	squat := b.exercise("Squat")

	// 01:00 UTC on the 5th is still the 4th at UTC-3.
	b.logged(squat, time.Date(2025, 6, 5, 1, 0, 0, 0, time.UTC), set(100, 3))
	b.logged(squat, time.Date(2025, 6, 4, 20, 0, 0, 0, time.UTC), set(110, 1))

	engine := analytics.New(loc, func() time.Time { return testNow })
	points := engine.MaxLoadSeries(b.snapshot(), squat)
	require.Len(t, points, 1)
	assert.Equal(t, 110.0, points[0].Value)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, loc).Unix(), points[0].Day.Unix())
}

func TestEngine_Series_E1RM(t *testing.T) {
	var b logBuilder
	squat := b.exercise("Squat")
	b.logged(squat, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), set(100, 10), set(120, 1))

	points := newEngine(testNow).MaxE1RMSeries(b.snapshot(), squat)
	require.Len(t, points, 1)
	assert.InDelta(t, 133.3333, points[0].Value, 0.0001)
}

func TestEngine_FilterRange_FourWeeks(t *testing.T) {
	engine := newEngine(testNow)
	points := []analytics.Point{
		{Day: testNow.AddDate(0, 0, -29), Value: 1},
		{Day: testNow.AddDate(0, 0, -28), Value: 2},
		{Day: testNow.AddDate(0, 0, -1), Value: 3},
		{Day: testNow.AddDate(0, 0, 1), Value: 4},
	}

	got := engine.FilterRange(points, analytics.RangeFourWeeks)
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Value)
	assert.Equal(t, 3.0, got[1].Value)

	assert.Equal(t, points, engine.FilterRange(points, analytics.RangeAll))
}

func TestEngine_FilterRange_ThreeMonthsUsesCalendarMonths(t *testing.T) {
	now := time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)
	engine := newEngine(now)

	start, ok := engine.RangeStart(analytics.RangeThreeMonths)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), start)

	points := []analytics.Point{
		{Day: time.Date(2025, 2, 28, 11, 59, 0, 0, time.UTC), Value: 1},
		{Day: time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), Value: 2},
		// 90 days before now would drop this point.
		{Day: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), Value: 3},
	}
	got := engine.FilterRange(points, analytics.RangeThreeMonths)
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Value)
}

func TestParseRange(t *testing.T) {
	for in, want := range map[string]analytics.Range{
		"4w":  analytics.RangeFourWeeks,
		"3M":  analytics.RangeThreeMonths,
		"all": analytics.RangeAll,
		"":    analytics.RangeAll,
	} {
		got, err := analytics.ParseRange(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := analytics.ParseRange("1y")
	assert.Error(t, err)
}

func TestRangeBest(t *testing.T) {
	assert.Equal(t, 0.0, analytics.RangeBest(nil))
	assert.Equal(t, 7.5, analytics.RangeBest([]analytics.Point{{Value: 5}, {Value: 7.5}, {Value: 6}}))
}
