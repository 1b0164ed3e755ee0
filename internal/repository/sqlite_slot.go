package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bibletrack/internal/db"
)

// SQLiteSlotRepo implements SlotRepo on the storage_slots table.
type SQLiteSlotRepo struct {
	db  db.DBTX
	now func() time.Time
}

func NewSQLiteSlotRepo(conn db.DBTX) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: conn, now: time.Now}
}

func (r *SQLiteSlotRepo) Get(ctx context.Context, name string) (*Slot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, value, updated_at FROM storage_slots WHERE name = ?`, name)

	var s Slot
	var updatedAt string
	if err := row.Scan(&s.Name, &s.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("storage slot %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning storage slot: %w", err)
	}
	t, err := parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing slot updated_at: %w", err)
	}
	s.UpdatedAt = t
	return &s, nil
}

// Put overwrites the slot in full.
func (r *SQLiteSlotRepo) Put(ctx context.Context, name, value string) error {
	query := `INSERT INTO storage_slots (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, name, value, formatTimestamp(r.now())); err != nil {
		return fmt.Errorf("writing storage slot %q: %w", name, err)
	}
	return nil
}

func (r *SQLiteSlotRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM storage_slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting storage slot %q: %w", name, err)
	}
	return nil
}
