package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/bibletrack/internal/db"
	"github.com/alexanderramin/bibletrack/internal/domain"
	"github.com/google/uuid"
)

// SQLiteActivityRepo implements ActivityRepo on the activity_log table.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

// Append inserts a. An empty ID is filled with a new UUID.
func (r *SQLiteActivityRepo) Append(ctx context.Context, a *domain.Activity) error {
	if !domain.ValidActivityKinds[string(a.Kind)] {
		return fmt.Errorf("invalid activity kind %q", a.Kind)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	query := `INSERT INTO activity_log (id, kind, book, chapter, completed, key_count, at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		string(a.Kind),
		a.Book,
		a.Chapter,
		boolToInt(a.Completed),
		a.KeyCount,
		formatTimestamp(a.At),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT id, kind, book, chapter, completed, key_count, at
		FROM activity_log ORDER BY at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent activity: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting activity: %w", err)
	}
	return n, nil
}

func scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var kind, at string
		var completed int
		if err := rows.Scan(&a.ID, &kind, &a.Book, &a.Chapter, &completed, &a.KeyCount, &at); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		ts, err := parseTimestamp(at)
		if err != nil {
			return nil, fmt.Errorf("parsing activity time: %w", err)
		}
		a.Kind = domain.ActivityKind(kind)
		a.Completed = intToBool(completed)
		a.At = ts
		out = append(out, &a)
	}
	return out, rows.Err()
}
