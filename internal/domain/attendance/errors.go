package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrEmployeeOnVacation = errors.New("cannot record attendance, employee is on vacation during this period")
	ErrNotRecordOwner     = errors.New("no permission to change this attendance record")
)
