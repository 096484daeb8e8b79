package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	defer r.store.lock(ctx)()

	for _, rec := range r.store.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (*attendance.Record, error) {
	defer r.store.lock(ctx)()

	for _, rec := range r.store.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

// ListInRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	defer r.store.lock(ctx)()

	result := make([]attendance.Record, 0)
	for _, rec := range r.store.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			result = append(result, rec)
		}
	}
	sortByDate(result)
	return result, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	defer r.store.lock(ctx)()

	result := slices.Clone(r.store.records)
	sortByDate(result)
	return result, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) error {
	defer r.store.lock(ctx)()

	for i, rec := range r.store.records {
		if rec.ID == record.ID {
			r.store.records[i] = record
			return nil
		}
	}
	r.store.records = append(r.store.records, record)
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lock(ctx)()

	for i, rec := range r.store.records {
		if rec.ID == id {
			r.store.records = append(r.store.records[:i], r.store.records[i+1:]...)
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func sortByDate(records []attendance.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
