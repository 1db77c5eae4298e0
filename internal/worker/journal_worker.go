package worker

import (
	"context"
	"fmt"
	"log/slog"

	"clinica/internal/amqp"
	"clinica/internal/storage"
)

// JournalWorker appends record-change events to the SQLite journal. The
// journal is write-only from the API's point of view: entries are never
// replayed into the in-memory collections, they only document what happened.
type JournalWorker struct {
	journal *storage.JournalRepository
}

func NewJournalWorker(journal *storage.JournalRepository) *JournalWorker {
	return &JournalWorker{journal: journal}
}

// HandleChange processes a single record-change message from AMQP.
// Returning an error makes the consumer requeue the delivery.
func (w *JournalWorker) HandleChange(ctx context.Context, msg *amqp.RecordChangeMessage) error {
	slog.InfoContext(ctx, "Processing record change",
		"entity", msg.Entity,
		"op", msg.Op,
		"record_id", msg.RecordID)

	if err := w.journal.AppendChange(ctx, msg); err != nil {
		return fmt.Errorf("append change to journal: %w", err)
	}

	return nil
}

// ReportStatus logs the journal's size and its most recent entries so an
// operator can see at a glance whether events are flowing. Called once at
// startup and then periodically.
func (w *JournalWorker) ReportStatus(ctx context.Context) {
	total, err := w.journal.CountEntries(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Journal count failed", "error", err)
		return
	}

	slog.InfoContext(ctx, "Journal status", "total_entries", total)

	recent, err := w.journal.RecentEntries(ctx, 5)
	if err != nil {
		slog.WarnContext(ctx, "Journal tail failed", "error", err)
		return
	}
	for _, entry := range recent {
		slog.InfoContext(ctx, "Recent journal entry",
			"entity", entry.Entity,
			"op", entry.Op,
			"record_id", entry.RecordID,
			"occurred_at", entry.OccurredAt)
	}
}
