package audit

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"komek/pkg/requestcontext"
)

// Recorder is the sole writer of ledger entries. It enriches every entry
// with actor identity and request metadata taken from the context, then
// appends through the store. Construct one per process and pass it by
// handle; fresh instances over fresh stores give tests isolation without
// touching Reset.
type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) enrich(ctx context.Context, entry Entry) Entry {
	entry.ID = uuid.New()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = requestcontext.Now(ctx)
	}
	if entry.ActorID.IsNil() {
		entry.ActorID = requestcontext.UserID(ctx)
	}
	if entry.ActorRole == "" {
		entry.ActorRole = requestcontext.Role(ctx)
	}
	if entry.Request == (RequestMeta{}) {
		entry.Request = RequestMeta{
			IP:        requestcontext.ClientIP(ctx),
			UserAgent: requestcontext.UserAgent(ctx),
			RequestID: requestcontext.RequestID(ctx),
		}
	}
	return entry
}

func marshalPayload(payload any) string {
	if payload == nil {
		return ""
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(b)
}

// LogCreate records an entity creation with its whole payload.
func (r *Recorder) LogCreate(ctx context.Context, entityType, entityID string, payload any) error {
	return r.store.Append(ctx, r.enrich(ctx, Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     ActionCreate,
		NewValue:   marshalPayload(payload),
	}))
}

// LogUpdate records one entry per changed field, not one per row. old and
// new map field names to rendered values; unchanged fields produce nothing.
func (r *Recorder) LogUpdate(ctx context.Context, entityType, entityID string, old, new map[string]string) error {
	fields := make([]string, 0, len(new))
	for field, newValue := range new {
		if old[field] != newValue {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields) // deterministic append order per call

	for _, field := range fields {
		err := r.store.Append(ctx, r.enrich(ctx, Entry{
			EntityType: entityType,
			EntityID:   entityID,
			Action:     ActionUpdate,
			FieldName:  field,
			OldValue:   old[field],
			NewValue:   new[field],
		}))
		if err != nil {
			return err
		}
	}
	return nil
}

// LogDelete records an entity deletion with its last payload.
func (r *Recorder) LogDelete(ctx context.Context, entityType, entityID string, payload any) error {
	return r.store.Append(ctx, r.enrich(ctx, Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     ActionDelete,
		OldValue:   marshalPayload(payload),
	}))
}

// LogView records a read of sensitive data.
func (r *Recorder) LogView(ctx context.Context, entityType, entityID string) error {
	return r.store.Append(ctx, r.enrich(ctx, Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     ActionView,
	}))
}

// LogStatusChange records a workflow transition together with the emitted
// event name.
func (r *Recorder) LogStatusChange(ctx context.Context, entityType, entityID, oldStatus, newStatus, event string) error {
	return r.store.Append(ctx, r.enrich(ctx, Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     ActionStatusChange,
		FieldName:  "status",
		OldValue:   oldStatus,
		NewValue:   newStatus,
		Event:      event,
	}))
}

// LogCalculation records one calculation run with its result summary.
func (r *Recorder) LogCalculation(ctx context.Context, entityID string, summary any) error {
	return r.store.Append(ctx, r.enrich(ctx, Entry{
		EntityType: "application",
		EntityID:   entityID,
		Action:     ActionCalculation,
		NewValue:   marshalPayload(summary),
	}))
}

// LogIntegration records one round-trip to an external collaborator.
func (r *Recorder) LogIntegration(ctx context.Context, system, entityID, outcome string) error {
	return r.store.Append(ctx, r.enrich(ctx, Entry{
		EntityType: system,
		EntityID:   entityID,
		Action:     ActionIntegration,
		NewValue:   outcome,
	}))
}

// List queries the ledger with raw (unmasked) values. Internal use only.
func (r *Recorder) List(ctx context.Context, filter Filter) ([]Entry, error) {
	return r.store.List(ctx, filter)
}

// Export queries the ledger and masks sensitive fields for external
// consumption.
func (r *Recorder) Export(ctx context.Context, filter Filter) ([]Entry, error) {
	entries, err := r.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return MaskEntries(entries), nil
}

// Reset clears the ledger. Reserved for test fixtures.
func (r *Recorder) Reset(ctx context.Context) error {
	return r.store.Reset(ctx)
}
