package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/employee"
	"github.com/absencetrack/attendance-backend-go/internal/domain/user"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/absencetrack/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/absencetrack/attendance-backend-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAttendanceHandler(t *testing.T) AttendanceHandler {
	t.Helper()
	store := memory.NewStore()
	vacationStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	vacationEnd := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	employeeRepo := memory.NewEmployeeRepository([]employee.Employee{
		{ID: 1, Name: "Alice", Department: "Engineering"},
		{ID: 2, Name: "Bob", Department: "Sales", VacationStart: &vacationStart, VacationEnd: &vacationEnd},
	})
	svc := attendanceService.NewAttendanceService(
		store,
		memory.NewAttendanceRepository(store),
		memory.NewHistoryRepository(store),
		employeeRepo,
	)
	return NewAttendanceHandler(svc)
}

// requestCtx returns a context carrying a verified token, the way the
// verifier middleware hands it to the handler.
func requestCtx(t *testing.T, session user.Session) context.Context {
	t.Helper()
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	tokenStr, _, err := jwtSvc.GenerateAccessToken(session)
	require.NoError(t, err)
	token, err := jwtSvc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func recordAttendance(t *testing.T, handler AttendanceHandler, ctx context.Context, reqBody attendance.RecordAttendanceRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	handler.Record(w, req)
	return w
}

// Test Record - Created vs Updated status codes
func TestAttendanceHandler_Record_CreatedThenUpdated(t *testing.T) {
	handler := createAttendanceHandler(t)
	ctx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})

	// First submission creates
	first := recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-16", Status: "PRESENT",
	})
	assert.Equal(t, http.StatusCreated, first.Code)

	// Second submission for the same pair updates
	second := recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-16", Status: "LATE",
	})
	assert.Equal(t, http.StatusOK, second.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.True(t, data["updated"].(bool))
	record := data["record"].(map[string]interface{})
	assert.Equal(t, "LATE", record["status"])
}

// Test Record - Vacation conflict
func TestAttendanceHandler_Record_VacationConflict(t *testing.T) {
	handler := createAttendanceHandler(t)
	ctx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})

	w := recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 2, Date: "2024-01-12", Status: "PRESENT",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}

// Test Record - Validation errors
func TestAttendanceHandler_Record_ValidationError(t *testing.T) {
	handler := createAttendanceHandler(t)
	ctx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})

	w := recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-16", Status: "SICK",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// Test Record - Unknown employee
func TestAttendanceHandler_Record_UnknownEmployee(t *testing.T) {
	handler := createAttendanceHandler(t)
	ctx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})

	w := recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 42, Date: "2024-01-16", Status: "PRESENT",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Test Delete - Ownership enforced at the handler boundary
func TestAttendanceHandler_Delete_NotOwner(t *testing.T) {
	handler := createAttendanceHandler(t)
	ownerCtx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})
	otherCtx := requestCtx(t, user.Session{ID: 2, Username: "manager", Role: user.RoleStaff})

	created := recordAttendance(t, handler, ownerCtx, attendance.RecordAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-16", Status: "PRESENT",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(created.Body).Decode(&resp))
	recordID := resp["data"].(map[string]interface{})["record"].(map[string]interface{})["id"].(string)

	// Delete as a different user
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/attendance/"+recordID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", recordID)
	req = req.WithContext(context.WithValue(otherCtx, chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	// Act
	handler.Delete(w, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Test ListWeek - Window bounds in the response
func TestAttendanceHandler_ListWeek_WindowBounds(t *testing.T) {
	handler := createAttendanceHandler(t)
	ctx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?week_of=2024-01-17", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	// Act
	handler.ListWeek(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2024-01-15", data["week_start"])
	assert.Equal(t, "2024-01-21", data["week_end"])
}

// Test Statistics - Custom range
func TestAttendanceHandler_Statistics_CustomRange(t *testing.T) {
	handler := createAttendanceHandler(t)
	ctx := requestCtx(t, user.Session{ID: 1, Username: "hr", Role: user.RoleAdministrator})

	require.Equal(t, http.StatusCreated, recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-16", Status: "PRESENT",
	}).Code)
	require.Equal(t, http.StatusCreated, recordAttendance(t, handler, ctx, attendance.RecordAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-17", Status: "ABSENT",
	}).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/statistics?start_date=2024-01-16&end_date=2024-01-16", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	// Act
	handler.Statistics(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["present"])
	assert.Equal(t, float64(0), data["absent"])
}
