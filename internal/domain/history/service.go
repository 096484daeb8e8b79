package history

import "context"

type HistoryService interface {
	// List returns the full modification history, oldest first.
	List(ctx context.Context) (ListHistoryResponse, error)
}
