package localjson

import (
	"context"
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

	for _, row := range r.store.doc.Attendance {
		if row.ID == id {
			return row.toRecord()
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (*attendance.Record, error) {
	defer r.store.lock(ctx)()

	dateStr := date.Format("2006-01-02")
	for _, row := range r.store.doc.Attendance {
		if row.EmployeeID == employeeID && row.Date == dateStr {
			rec, err := row.toRecord()
			if err != nil {
				return nil, err
			}
			return &rec, nil
		}
	}
	return nil, nil
}

// ListInRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	defer r.store.lock(ctx)()

	result := make([]attendance.Record, 0)
	for _, row := range r.store.doc.Attendance {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
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

	result := make([]attendance.Record, 0, len(r.store.doc.Attendance))
	for _, row := range r.store.doc.Attendance {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	sortByDate(result)
	return result, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) error {
	defer r.store.lock(ctx)()

	row := toRow(record)
	for i, existing := range r.store.doc.Attendance {
		if existing.ID == row.ID {
			r.store.doc.Attendance[i] = row
			return nil
		}
	}
	r.store.doc.Attendance = append(r.store.doc.Attendance, row)
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lock(ctx)()

	for i, row := range r.store.doc.Attendance {
		if row.ID == id {
			r.store.doc.Attendance = append(r.store.doc.Attendance[:i], r.store.doc.Attendance[i+1:]...)
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
