package attendance

import "context"

// AttendanceService holds the business rules of the ledger: reconciliation
// of new submissions against existing records, the vacation hard block,
// ownership-gated mutation and the derived week view and statistics. Every
// mutating operation takes the acting identity from the request context and
// enforces authorization itself rather than trusting the caller's UI.
type AttendanceService interface {
	// Record creates an attendance record, or updates the status of the
	// existing record for the same (employee, date).
	Record(ctx context.Context, req RecordAttendanceRequest) (RecordAttendanceResponse, error)

	// UpdateStatus changes the status of a record owned by the acting user.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (AttendanceResponse, error)

	// Delete removes a record owned by the acting user.
	Delete(ctx context.Context, id string) error

	// ListWeek returns the records of the Monday-Sunday window containing
	// the filter's reference date.
	ListWeek(ctx context.Context, filter WeekFilter) (ListAttendanceResponse, error)

	// Statistics counts records by status over the filter range.
	Statistics(ctx context.Context, filter StatisticsFilter) (StatisticsResponse, error)
}
