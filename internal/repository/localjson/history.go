package localjson

import (
	"context"

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

	r.store.doc.History = append(r.store.doc.History, toHistoryRow(entry))
	return nil
}

// List implements history.HistoryRepository.
func (r *historyRepository) List(ctx context.Context) ([]history.Entry, error) {
	defer r.store.lock(ctx)()

	entries := make([]history.Entry, 0, len(r.store.doc.History))
	for _, row := range r.store.doc.History {
		entries = append(entries, row.toEntry())
	}
	return entries, nil
}
