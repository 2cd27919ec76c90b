package analytics

import "time"

// Engine holds the calendar and the clock the metrics are computed against.
// It keeps no other state; every method takes the snapshot to read.
type Engine struct {
	loc   *time.Location
	clock func() time.Time
}

// New returns an engine using loc for day and week boundaries and clock for
// "now". Nil arguments fall back to time.Local and time.Now.
func New(loc *time.Location, clock func() time.Time) *Engine {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &Engine{loc: loc, clock: clock}
}

func (e *Engine) Now() time.Time {
	return e.clock().In(e.loc)
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

// StartOfDay returns local midnight of the calendar day containing t.
func (e *Engine) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(e.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.loc)
}

// StartOfWeek returns Monday 00:00 of the week containing t. Weeks always
// start on Monday regardless of the host locale.
func (e *Engine) StartOfWeek(t time.Time) time.Time {
	day := e.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// addMonths moves t by whole calendar months keeping the wall clock. When the
// target month is shorter the day is clamped to its last day, so 31 May minus
// three months is 28 (or 29) February rather than early March.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
