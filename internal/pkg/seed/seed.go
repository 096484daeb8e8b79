package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/employee"
	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

// Document is the static seed loaded once at startup. The field names match
// the JSON document the browser frontend of this system has always shipped
// with, so an existing data.json keeps working unchanged.
type Document struct {
	Users      []User       `json:"users"`
	Employees  []Employee   `json:"employees"`
	Attendance []Attendance `json:"attendance"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Employee struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Department    string  `json:"department"`
	VacationStart *string `json:"vacationStart,omitempty"`
	VacationEnd   *string `json:"vacationEnd,omitempty"`
}

type Attendance struct {
	EmployeeID    int     `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	VacationStart *string `json:"vacationStart,omitempty"`
	VacationEnd   *string `json:"vacationEnd,omitempty"`
	RecordedBy    int     `json:"recordedBy"`
}

// Load reads and parses the seed document at path.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read seed document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse seed document: %w", err)
	}

	return doc, nil
}

// Credentials maps the seed users to domain credentials.
func (d Document) Credentials() []user.Credential {
	creds := make([]user.Credential, 0, len(d.Users))
	for _, u := range d.Users {
		creds = append(creds, user.Credential{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
		})
	}
	return creds
}

// Directory maps the seed employees to domain employees. A malformed
// vacation date fails the whole load; a half-open window (only one bound)
// is kept as-is and simply never matches a vacation check.
func (d Document) Directory() ([]employee.Employee, error) {
	emps := make([]employee.Employee, 0, len(d.Employees))
	for _, e := range d.Employees {
		start, err := parseDatePtr(e.VacationStart)
		if err != nil {
			return nil, fmt.Errorf("employee %d: invalid vacationStart: %w", e.ID, err)
		}
		end, err := parseDatePtr(e.VacationEnd)
		if err != nil {
			return nil, fmt.Errorf("employee %d: invalid vacationEnd: %w", e.ID, err)
		}
		emps = append(emps, employee.Employee{
			ID:            e.ID,
			Name:          e.Name,
			Department:    e.Department,
			VacationStart: start,
			VacationEnd:   end,
		})
	}
	return emps, nil
}

// Records maps the optional seed attendance to ledger records, assigning
// fresh ids. Seed attendance is only ever imported into an empty ledger.
func (d Document) Records() ([]attendance.Record, error) {
	records := make([]attendance.Record, 0, len(d.Attendance))
	for i, a := range d.Attendance {
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			return nil, fmt.Errorf("attendance %d: invalid date: %w", i, err)
		}
		start, err := parseDatePtr(a.VacationStart)
		if err != nil {
			return nil, fmt.Errorf("attendance %d: invalid vacationStart: %w", i, err)
		}
		end, err := parseDatePtr(a.VacationEnd)
		if err != nil {
			return nil, fmt.Errorf("attendance %d: invalid vacationEnd: %w", i, err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("attendance %d: failed to generate id: %w", i, err)
		}
		records = append(records, attendance.Record{
			ID:            id.String(),
			EmployeeID:    a.EmployeeID,
			EmployeeName:  a.EmployeeName,
			Date:          date,
			Status:        attendance.Status(a.Status),
			VacationStart: start,
			VacationEnd:   end,
			RecordedBy:    a.RecordedBy,
		})
	}
	return records, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
