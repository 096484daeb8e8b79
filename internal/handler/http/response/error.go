package response

import (
	"errors"
	"net/http"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/auth"
	"github.com/absencetrack/attendance-backend-go/internal/domain/employee"
	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeOnVacation):
		Conflict(w, "Cannot record attendance: employee is on vacation during this period")
	case errors.Is(err, attendance.ErrNotRecordOwner):
		Forbidden(w, "Only the user who recorded this entry can modify it")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
