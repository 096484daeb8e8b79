package week

import "time"

// DateLayout is the calendar-date format used across the API and the seed
// document. Dates carry no timezone; they are normalized to UTC midnight.
const DateLayout = "2006-01-02"

// Window is a Monday-start, Sunday-end 7-day window. Start and End are
// both dates at UTC midnight, so the window is inclusive of both days.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowContaining returns the window holding t. Monday starts the week
// regardless of locale.
func WindowContaining(t time.Time) Window {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday has Sunday=0; shift so Monday=0.
	diff := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -diff)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// Next returns the window shifted forward by exactly seven days.
func (w Window) Next() Window {
	return Window{Start: w.Start.AddDate(0, 0, 7), End: w.End.AddDate(0, 0, 7)}
}

// Previous returns the window shifted back by exactly seven days.
func (w Window) Previous() Window {
	return Window{Start: w.Start.AddDate(0, 0, -7), End: w.End.AddDate(0, 0, -7)}
}

// Contains reports whether date falls within the window, inclusive of both
// endpoints.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}
