package postgresql

import (
	"context"
	"fmt"

	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/database"
)

type historyRepository struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) history.HistoryRepository {
	return &historyRepository{db: db}
}

// Append implements history.HistoryRepository.
func (h *historyRepository) Append(ctx context.Context, entry history.Entry) error {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO history_entries (id, action, occurred_at)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, entry.ID, entry.Action, entry.Timestamp); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// List implements history.HistoryRepository.
func (h *historyRepository) List(ctx context.Context) ([]history.Entry, error) {
	q := GetQuerier(ctx, h.db)

	// UUIDv7 ids are time-ordered, so id order is append order.
	query := `
		SELECT id, action, occurred_at
		FROM history_entries
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer rows.Close()

	entries := make([]history.Entry, 0)
	for rows.Next() {
		var entry history.Entry
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return entries, nil
}
