package memory

import (
	"context"
	"slices"

	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
)

type historyRepository struct {
	store *Store
}

func NewHistoryRepository(store *Store) history.HistoryRepository {
	return &historyRepository{store: store}
}

// Append implements history.HistoryRepository.
func (r *historyRepository) Append(ctx context.Context, entry history.Entry) error {
	defer r.store.lock(ctx)()

	r.store.entries = append(r.store.entries, entry)
	return nil
}

// List implements history.HistoryRepository.
func (r *historyRepository) List(ctx context.Context) ([]history.Entry, error) {
	defer r.store.lock(ctx)()

	return slices.Clone(r.store.entries), nil
}
