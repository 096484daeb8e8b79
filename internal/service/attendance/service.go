package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/employee"
	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/database"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/week"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	history.HistoryRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	historyRepo history.HistoryRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		HistoryRepository:    historyRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// Record implements attendance.AttendanceService. One ledger entry per
// (employee, date): a submission for a pair that already has a record
// updates only that record's status and leaves its id, snapshots and
// recorder untouched.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	session, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	date, err := time.Parse(week.DateLayout, req.Date)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	// Hard block, not a warning: no attendance inside a vacation window.
	if emp.OnVacation(date) {
		return attendance.RecordAttendanceResponse{}, attendance.ErrEmployeeOnVacation
	}

	var saved attendance.Record
	var updated bool

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			return fmt.Errorf("failed to look up existing record: %w", err)
		}

		if existing != nil {
			existing.Status = attendance.Status(req.Status)
			saved = *existing
			updated = true
		} else {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate record id: %w", err)
			}
			saved = attendance.Record{
				ID:            id.String(),
				EmployeeID:    emp.ID,
				EmployeeName:  emp.Name,
				Date:          date,
				Status:        attendance.Status(req.Status),
				VacationStart: emp.VacationStart,
				VacationEnd:   emp.VacationEnd,
				RecordedBy:    session.ID,
			}
		}

		if err := s.AttendanceRepository.Upsert(ctx, saved); err != nil {
			return err
		}

		action := fmt.Sprintf("%s marked %s as %s on %s", session.Username, emp.Name, req.Status, req.Date)
		return s.appendHistory(ctx, action)
	})
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	return attendance.RecordAttendanceResponse{
		Record:            saved.ToResponse(),
		Updated:           updated,
		HasVacationWindow: emp.HasVacationWindow(),
	}, nil
}

// UpdateStatus implements attendance.AttendanceService. Ownership is
// enforced here, at the mutation boundary, not in the UI.
func (s *AttendanceServiceImpl) UpdateStatus(ctx context.Context, req attendance.UpdateStatusRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	session, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var saved attendance.Record

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.AttendanceRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if rec.RecordedBy != session.ID {
			return attendance.ErrNotRecordOwner
		}

		rec.Status = attendance.Status(req.Status)
		if err := s.AttendanceRepository.Upsert(ctx, rec); err != nil {
			return err
		}
		saved = rec

		action := fmt.Sprintf("%s changed the status of %s to %s on %s",
			session.Username, rec.EmployeeName, req.Status, rec.Date.Format(week.DateLayout))
		return s.appendHistory(ctx, action)
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return saved.ToResponse(), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	session, err := jwt.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := s.AttendanceRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if rec.RecordedBy != session.ID {
			return attendance.ErrNotRecordOwner
		}

		if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
			return err
		}

		action := fmt.Sprintf("%s removed the record of %s for %s",
			session.Username, rec.EmployeeName, rec.Date.Format(week.DateLayout))
		return s.appendHistory(ctx, action)
	})
}

// ListWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListWeek(ctx context.Context, filter attendance.WeekFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	ref := s.now()
	if filter.WeekOf != nil {
		ref, _ = time.Parse(week.DateLayout, *filter.WeekOf)
	}
	window := week.WindowContaining(ref)

	records, err := s.AttendanceRepository.ListInRange(ctx, window.Start, window.End)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance for week: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, rec.ToResponse())
	}

	return attendance.ListAttendanceResponse{
		WeekStart: window.Start.Format(week.DateLayout),
		WeekEnd:   window.End.Format(week.DateLayout),
		Records:   responses,
	}, nil
}

// Statistics implements attendance.AttendanceService. Each unset bound
// falls back to the matching bound of the current week window.
func (s *AttendanceServiceImpl) Statistics(ctx context.Context, filter attendance.StatisticsFilter) (attendance.StatisticsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatisticsResponse{}, err
	}

	window := week.WindowContaining(s.now())
	start := window.Start
	end := window.End
	if filter.StartDate != nil {
		start, _ = time.Parse(week.DateLayout, *filter.StartDate)
	}
	if filter.EndDate != nil {
		end, _ = time.Parse(week.DateLayout, *filter.EndDate)
	}

	records, err := s.AttendanceRepository.ListInRange(ctx, start, end)
	if err != nil {
		return attendance.StatisticsResponse{}, fmt.Errorf("failed to list attendance for statistics: %w", err)
	}

	resp := attendance.StatisticsResponse{
		StartDate: start.Format(week.DateLayout),
		EndDate:   end.Format(week.DateLayout),
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			resp.Present++
		case attendance.StatusAbsent:
			resp.Absent++
		case attendance.StatusLate:
			resp.Late++
		}
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) appendHistory(ctx context.Context, action string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate history id: %w", err)
	}
	return s.HistoryRepository.Append(ctx, history.Entry{
		ID:        id.String(),
		Action:    action,
		Timestamp: s.now().Format("2006-01-02 15:04:05"),
	})
}
