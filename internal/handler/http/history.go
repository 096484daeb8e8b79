package http

import (
	"log/slog"
	"net/http"

	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
	"github.com/absencetrack/attendance-backend-go/internal/handler/http/response"
)

type HistoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type HistoryHandlerImpl struct {
	historyService history.HistoryService
}

func NewHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &HistoryHandlerImpl{historyService: historyService}
}

// List implements HistoryHandler.
func (h *HistoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	listResp, err := h.historyService.List(r.Context())
	if err != nil {
		slog.Error("List history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResp)
}
