package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
)

// Statuses lists every valid attendance status.
var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusLate)}

// Record is one ledger entry. EmployeeName and the vacation window are
// deliberate snapshots taken at creation time so the record stays
// historically accurate even if the directory changes later.
type Record struct {
	ID            string
	EmployeeID    int
	EmployeeName  string
	Date          time.Time
	Status        Status
	VacationStart *time.Time
	VacationEnd   *time.Time
	RecordedBy    int
}
