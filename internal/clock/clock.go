// Package clock supplies the calendar date used for all due-date
// comparisons, so sweeps can be tested without wall-clock coupling.
package clock

import "time"

// Clock yields "today" as a calendar date without time-of-day.
type Clock interface {
	Today() time.Time
}

// System is the wall-clock implementation.
type System struct{}

// Today returns the current calendar date in UTC.
func (System) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Fixed is a Clock pinned to a single date, for tests.
type Fixed struct {
	Date time.Time
}

// At returns a Fixed clock pinned to the calendar date of t.
func At(t time.Time) Fixed {
	return Fixed{Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (f Fixed) Today() time.Time {
	return f.Date
}
