package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"clinica/internal/amqp"
	"clinica/internal/log"
)

// EventPublisher is the outbound port for record-change events. The AMQP
// client satisfies it; a nil publisher disables events entirely.
type EventPublisher interface {
	PublishRecordChange(ctx context.Context, msg *amqp.RecordChangeMessage) error
}

// publishChange emits a fire-and-forget record-change event. Publish
// failures are logged and dropped: the in-memory mutation already happened
// and there is no acknowledgment protocol to honor.
func publishChange(ctx context.Context, events EventPublisher, entity, op, recordID string, payload any) {
	if events == nil {
		return
	}

	var raw json.RawMessage
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			fields := log.NewFields().
				WithComponent(log.ComponentAMQP).
				WithOperation(log.OpPublish).
				WithRecord(entity, recordID).
				WithError(err)
			slog.ErrorContext(ctx, "Failed to marshal change payload", fields.ToSlice()...)
			return
		}
		raw = body
	}

	msg := amqp.NewRecordChangeMessage(entity, op, recordID, raw)
	if err := events.PublishRecordChange(ctx, msg); err != nil {
		fields := log.NewFields().
			WithComponent(log.ComponentAMQP).
			WithOperation(log.OpPublish).
			WithRecord(entity, recordID).
			WithError(err)
		slog.ErrorContext(ctx, "Failed to publish record change", fields.ToSlice()...)
	}
}
