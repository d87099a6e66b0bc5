package audit

import (
	"context"
	"log/slog"

	"komek/pkg/attrs"
	"komek/pkg/requestcontext"
)

// LogAudit writes an event to both the structured logger and the ledger.
// It enriches the log line with the request ID and pulls the entity
// reference out of attrList so call sites stay one-liners. The returned
// error is the ledger append error; callers treat it the same as any
// other Recorder failure.
func LogAudit(ctx context.Context, logger *slog.Logger, recorder *Recorder, event string, attrList ...any) error {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attrList = append(attrList, "request_id", requestID)
	}
	args := append(attrList, "event", event, "log_type", "audit")

	if logger != nil {
		logger.InfoContext(ctx, event, args...)
	}
	if recorder == nil {
		return nil
	}

	entityType := attrs.ExtractString(attrList, "entity_type")
	if entityType == "" {
		entityType = "application"
	}
	return recorder.store.Append(ctx, recorder.enrich(ctx, Entry{
		EntityType: entityType,
		EntityID:   attrs.ExtractString(attrList, "entity_id"),
		Action:     ActionView,
		Event:      event,
		NewValue:   attrs.ExtractString(attrList, "detail"),
	}))
}
