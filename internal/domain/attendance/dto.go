package attendance

import (
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordAttendanceRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "please select an employee",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "please select a date",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, LATE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid record id",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, LATE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekFilter selects the week window for the ledger view. WeekOf is any
// date inside the wanted window; clients shift weeks by passing a date
// seven days forward or back.
type WeekFilter struct {
	WeekOf *string
}

func (f *WeekFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.WeekOf != nil {
		if _, ok := validator.IsValidDate(*f.WeekOf); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "week_of",
				Message: "week_of must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatisticsFilter is the custom range for the statistics panel. Either
// bound may be left unset, in which case the matching bound of the current
// week window is used.
type StatisticsFilter struct {
	StartDate *string
	EndDate   *string
}

func (f *StatisticsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    int     `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	VacationStart *string `json:"vacation_start,omitempty"`
	VacationEnd   *string `json:"vacation_end,omitempty"`
	RecordedBy    int     `json:"recorded_by"`
}

// RecordAttendanceResponse is returned from the create/upsert operation.
// HasVacationWindow reports whether the employee has any vacation window
// on file; a date inside the window can never reach this response because
// such submissions are rejected outright.
type RecordAttendanceResponse struct {
	Record            AttendanceResponse `json:"record"`
	Updated           bool               `json:"updated"`
	HasVacationWindow bool               `json:"has_vacation_window"`
}

type ListAttendanceResponse struct {
	WeekStart string               `json:"week_start"`
	WeekEnd   string               `json:"week_end"`
	Records   []AttendanceResponse `json:"records"`
}

type StatisticsResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	Late      int    `json:"late"`
}

// ToResponse maps a ledger record to its response form.
func (r Record) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Date:          r.Date.Format("2006-01-02"),
		Status:        string(r.Status),
		VacationStart: formatDatePtr(r.VacationStart),
		VacationEnd:   formatDatePtr(r.VacationEnd),
		RecordedBy:    r.RecordedBy,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
