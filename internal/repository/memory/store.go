package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
)

type txKey struct{}

// Store holds the ledger and the modification history in process memory.
// It backs the service tests and the "memory" storage driver. All access
// serializes through one mutex, so two callers can never interleave a
// read-modify-write.
type Store struct {
	mu      sync.Mutex
	records []attendance.Record
	entries []history.Entry
}

func NewStore() *Store {
	return &Store{}
}

// WithinTx implements database.TxManager. State is snapshotted up front
// and restored when fn fails, so a rejected operation leaves no trace.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordsSnap := slices.Clone(s.records)
	entriesSnap := slices.Clone(s.entries)

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.records = recordsSnap
		s.entries = entriesSnap
		return err
	}
	return nil
}

// lock takes the store mutex unless ctx already runs inside WithinTx,
// which holds it for the whole callback.
func (s *Store) lock(ctx context.Context) func() {
	if inTx, _ := ctx.Value(txKey{}).(bool); inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
