package localjson

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id string, employeeID int, date string) attendance.Record {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.Record{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: "Bob",
		Date:         d,
		Status:       attendance.StatusPresent,
		RecordedBy:   1,
	}
}

func TestStore_MissingFileIsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.json")

	store, err := Open(path)
	require.NoError(t, err)

	records, err := NewAttendanceRepository(store).List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, records)

	entries, err := NewHistoryRepository(store).List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.json")

	store, err := Open(path)
	require.NoError(t, err)
	repo := NewAttendanceRepository(store)
	histRepo := NewHistoryRepository(store)

	err = store.WithinTx(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, testRecord("0190c7a0-0000-7000-8000-000000000001", 2, "2024-01-20")); err != nil {
			return err
		}
		return histRepo.Append(ctx, history.Entry{
			ID:        "0190c7a0-0000-7000-8000-000000000002",
			Action:    "hr marked Bob as PRESENT on 2024-01-20",
			Timestamp: "2024-01-20 09:00:00",
		})
	})
	require.NoError(t, err)

	// Reopen from disk and check both keys survived.
	reopened, err := Open(path)
	require.NoError(t, err)

	records, err := NewAttendanceRepository(reopened).List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bob", records[0].EmployeeName)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)

	entries, err := NewHistoryRepository(reopened).List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hr marked Bob as PRESENT on 2024-01-20", entries[0].Action)
}

func TestStore_RollsBackOnCallbackError(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.json")

	store, err := Open(path)
	require.NoError(t, err)
	repo := NewAttendanceRepository(store)

	boom := errors.New("boom")
	err = store.WithinTx(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, testRecord("0190c7a0-0000-7000-8000-000000000003", 2, "2024-01-21")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Nothing in memory, nothing on disk.
	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestStore_UpsertReplacesById(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.json")

	store, err := Open(path)
	require.NoError(t, err)
	repo := NewAttendanceRepository(store)

	rec := testRecord("0190c7a0-0000-7000-8000-000000000004", 2, "2024-01-22")
	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context) error {
		return repo.Upsert(ctx, rec)
	}))

	rec.Status = attendance.StatusLate
	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context) error {
		return repo.Upsert(ctx, rec)
	}))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusLate, records[0].Status)
}

func TestStore_GetByEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.json")

	store, err := Open(path)
	require.NoError(t, err)
	repo := NewAttendanceRepository(store)

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context) error {
		return repo.Upsert(ctx, testRecord("0190c7a0-0000-7000-8000-000000000005", 2, "2024-01-23"))
	}))

	day, _ := time.Parse("2006-01-02", "2024-01-23")
	found, err := repo.GetByEmployeeAndDate(ctx, 2, day)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 2, found.EmployeeID)

	missing, err := repo.GetByEmployeeAndDate(ctx, 2, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
