package history

import (
	"context"
	"fmt"

	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
)

type HistoryServiceImpl struct {
	history.HistoryRepository
}

func NewHistoryService(historyRepo history.HistoryRepository) history.HistoryService {
	return &HistoryServiceImpl{HistoryRepository: historyRepo}
}

// List implements history.HistoryService.
func (s *HistoryServiceImpl) List(ctx context.Context) (history.ListHistoryResponse, error) {
	entries, err := s.HistoryRepository.List(ctx)
	if err != nil {
		return history.ListHistoryResponse{}, fmt.Errorf("failed to list history: %w", err)
	}

	responses := make([]history.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entry.ToResponse())
	}

	return history.ListHistoryResponse{Entries: responses}, nil
}
