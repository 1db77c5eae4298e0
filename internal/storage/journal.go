// Package storage persists the record-change journal. The journal is an
// append-only log of store mutations; it is never replayed into the
// in-memory state, which starts empty on every boot.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"clinica/internal/amqp"

	_ "modernc.org/sqlite"
)

type JournalRepository struct {
	db *sql.DB
}

// JournalEntry is one persisted record change.
type JournalEntry struct {
	ID         int64
	Entity     string
	Op         string
	RecordID   string
	Payload    []byte
	OccurredAt time.Time
}

func NewJournalRepository(dbPath string) (*JournalRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &JournalRepository{db: db}, nil
}

func (r *JournalRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AppendChange writes one record-change event to the journal.
func (r *JournalRepository) AppendChange(ctx context.Context, msg *amqp.RecordChangeMessage) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO record_changes (entity, op, record_id, payload, occurred_at) VALUES (?, ?, ?, ?, ?)`,
		msg.Entity, msg.Op, msg.RecordID, string(msg.Payload), msg.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("insert record change: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "Change journaled",
		"journal_id", id,
		"entity", msg.Entity,
		"op", msg.Op,
		"record_id", msg.RecordID)

	return nil
}

// CountEntries returns the total number of journaled changes.
func (r *JournalRepository) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM record_changes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count record changes: %w", err)
	}
	return n, nil
}

// RecentEntries returns the newest journaled changes, limited to limit rows.
func (r *JournalRepository) RecentEntries(ctx context.Context, limit int) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, entity, op, record_id, payload, occurred_at
		 FROM record_changes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query record changes: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var payload sql.NullString
		if err := rows.Scan(&e.ID, &e.Entity, &e.Op, &e.RecordID, &payload, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan record change: %w", err)
		}
		if payload.Valid {
			e.Payload = []byte(payload.String)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record changes: %w", err)
	}
	return entries, nil
}
