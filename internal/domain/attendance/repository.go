package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for the attendance
// ledger. Implementations exist for memory (tests), a local JSON snapshot
// file (default) and PostgreSQL.
type AttendanceRepository interface {
	// GetByID retrieves a record by id.
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee on
	// a specific date, or nil when none exists. This is what keeps the
	// ledger at one record per (employee, date).
	GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (*Record, error)

	// ListInRange retrieves records whose date falls within [start, end]
	// inclusive, ordered by date.
	ListInRange(ctx context.Context, start, end time.Time) ([]Record, error)

	// List retrieves the full ledger ordered by date.
	List(ctx context.Context) ([]Record, error)

	// Upsert inserts the record, or replaces the stored record carrying the
	// same id.
	Upsert(ctx context.Context, record Record) error

	// Delete removes a record by id.
	Delete(ctx context.Context, id string) error
}
