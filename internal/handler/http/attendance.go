package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListWeek(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Record implements AttendanceHandler. A submission for an (employee, date)
// pair that already has a record answers 200 with the updated record; a new
// pair answers 201.
func (h *AttendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq attendance.RecordAttendanceRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	recordResp, err := h.attendanceService.Record(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance recorded",
		"employee_id", recordReq.EmployeeID,
		"date", recordReq.Date,
		"status", recordReq.Status,
		"updated", recordResp.Updated,
	)

	if recordResp.Updated {
		response.SuccessWithMessage(w, "Attendance updated", recordResp)
		return
	}
	response.Created(w, "Attendance recorded", recordResp)
}

// ListWeek implements AttendanceHandler. An optional week_of query
// parameter selects the week containing that date; without it, the
// current week is served.
func (h *AttendanceHandlerImpl) ListWeek(w http.ResponseWriter, r *http.Request) {
	var filter attendance.WeekFilter
	if weekOf := r.URL.Query().Get("week_of"); weekOf != "" {
		filter.WeekOf = &weekOf
	}

	listResp, err := h.attendanceService.ListWeek(r.Context(), filter)
	if err != nil {
		slog.Error("ListWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResp)
}

// UpdateStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Call service
	updated, err := h.attendanceService.UpdateStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance status updated", "record_id", updateReq.ID, "status", updateReq.Status)
	response.SuccessWithMessage(w, "Attendance updated", updated)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance record deleted", "record_id", id)
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// Statistics implements AttendanceHandler. Optional start_date and
// end_date query parameters bound the range; unset bounds fall back to
// the current week.
func (h *AttendanceHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	var filter attendance.StatisticsFilter
	if start := r.URL.Query().Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := r.URL.Query().Get("end_date"); end != "" {
		filter.EndDate = &end
	}

	stats, err := h.attendanceService.Statistics(r.Context(), filter)
	if err != nil {
		slog.Error("Statistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
