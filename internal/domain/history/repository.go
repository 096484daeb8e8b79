package history

import "context"

// HistoryRepository defines access to the append-only modification log.
// Append runs in the same transaction as the ledger mutation it describes,
// so a mutation and its history line commit or fail together.
type HistoryRepository interface {
	Append(ctx context.Context, entry Entry) error

	// List retrieves all entries, oldest first.
	List(ctx context.Context) ([]Entry, error)
}
