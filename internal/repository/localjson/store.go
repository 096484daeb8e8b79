package localjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
)

type txKey struct{}

// Store persists the ledger and the modification history as one JSON
// document on disk. The top-level keys mirror the browser storage keys of
// the system this replaces ("attendanceData", "modificationHistory"), so a
// data file exported from it reads back unchanged.
//
// Writes go through a temp file and rename, and in-memory state is
// restored from a snapshot when a transaction callback fails: a mutation
// either fully commits or performs no persisted write.
type Store struct {
	path string
	mu   sync.Mutex
	doc  document
}

type document struct {
	Attendance []attendanceRow `json:"attendanceData"`
	History    []historyRow    `json:"modificationHistory"`
}

type attendanceRow struct {
	ID            string  `json:"id"`
	EmployeeID    int     `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	VacationStart *string `json:"vacationStart,omitempty"`
	VacationEnd   *string `json:"vacationEnd,omitempty"`
	RecordedBy    int     `json:"recordedBy"`
}

type historyRow struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// Open loads the document at path. A missing file is a valid empty state,
// not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return s, nil
}

// WithinTx implements database.TxManager.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.doc.clone()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.doc = snap
		return err
	}

	if err := s.flush(); err != nil {
		s.doc = snap
		return err
	}
	return nil
}

// lock takes the store mutex unless ctx already runs inside WithinTx.
func (s *Store) lock(ctx context.Context) func() {
	if inTx, _ := ctx.Value(txKey{}).(bool); inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// flush writes the document atomically. Callers hold the store mutex.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".attendance-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp data file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

func (d document) clone() document {
	return document{
		Attendance: slices.Clone(d.Attendance),
		History:    slices.Clone(d.History),
	}
}

func toRow(rec attendance.Record) attendanceRow {
	return attendanceRow{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date.Format("2006-01-02"),
		Status:        string(rec.Status),
		VacationStart: formatDatePtr(rec.VacationStart),
		VacationEnd:   formatDatePtr(rec.VacationEnd),
		RecordedBy:    rec.RecordedBy,
	}
}

func (r attendanceRow) toRecord() (attendance.Record, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("record %s has invalid date %q: %w", r.ID, r.Date, err)
	}
	start, err := parseDatePtr(r.VacationStart)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("record %s has invalid vacationStart: %w", r.ID, err)
	}
	end, err := parseDatePtr(r.VacationEnd)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("record %s has invalid vacationEnd: %w", r.ID, err)
	}
	return attendance.Record{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Date:          date,
		Status:        attendance.Status(r.Status),
		VacationStart: start,
		VacationEnd:   end,
		RecordedBy:    r.RecordedBy,
	}, nil
}

func toHistoryRow(entry history.Entry) historyRow {
	return historyRow{
		ID:        entry.ID,
		Action:    entry.Action,
		Timestamp: entry.Timestamp,
	}
}

func (r historyRow) toEntry() history.Entry {
	return history.Entry{
		ID:        r.ID,
		Action:    r.Action,
		Timestamp: r.Timestamp,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
