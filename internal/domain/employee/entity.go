package employee

import "time"

// Employee is one entry of the static directory loaded from the seed
// document. Immutable after load.
type Employee struct {
	ID            int
	Name          string
	Department    string
	VacationStart *time.Time
	VacationEnd   *time.Time
}

// HasVacationWindow reports whether the employee has a vacation window on
// file. A window requires both bounds.
func (e Employee) HasVacationWindow() bool {
	return e.VacationStart != nil && e.VacationEnd != nil
}

// OnVacation reports whether date falls inside the vacation window,
// inclusive of both endpoints. Always false without a complete window.
func (e Employee) OnVacation(date time.Time) bool {
	if !e.HasVacationWindow() {
		return false
	}
	return !date.Before(*e.VacationStart) && !date.After(*e.VacationEnd)
}
