package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
)

// Point is the best value of a metric on one calendar day.
type Point struct {
	Day   time.Time `json:"day"`
	Value float64   `json:"value"`
}

// Series builds the daily-best series for an exercise, ascending by day.
// Each entry is reduced with metric; entries landing on the same local day
// keep the largest value. Entries without a session are skipped.
func (e *Engine) Series(snap *Snapshot, id models.ExerciseID, metric Metric) []Point {
	best := make(map[int64]Point)
	for _, entry := range snap.EntriesFor(id) {
		date, ok := snap.entryDate(entry)
		if !ok {
			continue
		}
		day := e.StartOfDay(date)
		value := metric.Of(entry.Sets)
		if p, seen := best[day.Unix()]; !seen || value > p.Value {
			best[day.Unix()] = Point{Day: day, Value: value}
		}
	}

	points := make([]Point, 0, len(best))
	for _, p := range best {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})
	return points
}

func (e *Engine) MaxLoadSeries(snap *Snapshot, id models.ExerciseID) []Point {
	return e.Series(snap, id, MetricMaxLoad)
}

func (e *Engine) MaxE1RMSeries(snap *Snapshot, id models.ExerciseID) []Point {
	return e.Series(snap, id, MetricMaxE1RM)
}

// Range selects how far back a trend looks.
type Range int

const (
	RangeAll Range = iota
	RangeFourWeeks
	RangeThreeMonths
)

func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return RangeAll, nil
	case "4w":
		return RangeFourWeeks, nil
	case "3m":
		return RangeThreeMonths, nil
	default:
		return 0, fmt.Errorf("unknown range %q (want 4w, 3m or all)", s)
	}
}

func (r Range) String() string {
	switch r {
	case RangeFourWeeks:
		return "4w"
	case RangeThreeMonths:
		return "3m"
	default:
		return "all"
	}
}

func (r Range) Caption() string {
	switch r {
	case RangeFourWeeks:
		return "last 4W"
	case RangeThreeMonths:
		return "last 3M"
	default:
		return "all time"
	}
}

// RangeStart is the inclusive lower bound of r relative to now. RangeAll has none.
func (e *Engine) RangeStart(r Range) (time.Time, bool) {
	now := e.Now()
	switch r {
	case RangeFourWeeks:
		return now.AddDate(0, 0, -4*7), true
	case RangeThreeMonths:
		return addMonths(now, -3), true
	default:
		return time.Time{}, false
	}
}

// FilterRange keeps the points whose day falls in [start, now]. RangeAll
// returns points untouched.
func (e *Engine) FilterRange(points []Point, r Range) []Point {
	start, ok := e.RangeStart(r)
	if !ok {
		return points
	}
	now := e.Now()

	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Day.Before(start) || p.Day.After(now) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RangeBest is the highest value among points, 0 when there are none.
func RangeBest(points []Point) float64 {
	var best float64
	for i, p := range points {
		if i == 0 || p.Value > best {
			best = p.Value
		}
	}
	return best
}
