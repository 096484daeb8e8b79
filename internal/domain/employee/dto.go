package employee

import "time"

// ========================================
// EMPLOYEE DTOs
// ========================================

type EmployeeResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Department      string  `json:"department"`
	VacationStart   *string `json:"vacation_start,omitempty"`
	VacationEnd     *string `json:"vacation_end,omitempty"`
	OnVacationToday bool    `json:"on_vacation_today"`
}

// ToResponse maps an employee to its response form. now supplies the
// reference date for the on-vacation flag shown next to the selector.
func (e Employee) ToResponse(now time.Time) EmployeeResponse {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Department:      e.Department,
		VacationStart:   formatDatePtr(e.VacationStart),
		VacationEnd:     formatDatePtr(e.VacationEnd),
		OnVacationToday: e.OnVacation(today),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
