// Package audit implements the append-only ledger every mutating component
// writes to. Entries are transport-agnostic so stores and sinks can fan out;
// nothing here ever updates or deletes an existing entry outside the bulk
// clear reserved for test fixtures.
package audit

import (
	"time"

	"github.com/google/uuid"

	id "komek/pkg/domain"
)

// Action classifies what happened to the entity.
type Action string

const (
	ActionCreate       Action = "CREATE"
	ActionUpdate       Action = "UPDATE"
	ActionDelete       Action = "DELETE"
	ActionView         Action = "VIEW"
	ActionStatusChange Action = "STATUS_CHANGE"
	ActionCalculation  Action = "CALCULATION"
	ActionIntegration  Action = "INTEGRATION"
)

// RequestMeta carries the request context captured alongside an entry.
type RequestMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

// Entry is one observed fact. UPDATE produces one entry per changed field
// (FieldName set); CREATE/DELETE/VIEW carry the whole payload in NewValue.
type Entry struct {
	ID         uuid.UUID
	EntityType string
	EntityID   string
	Action     Action
	FieldName  string
	OldValue   string
	NewValue   string
	ActorID    id.UserID
	ActorRole  string
	Event      string // workflow event name, when the entry records a transition
	Request    RequestMeta
	Timestamp  time.Time
}

// Filter narrows ledger queries. Zero fields match everything; set fields
// combine with AND.
type Filter struct {
	EntityType string
	EntityID   string
	ActorID    id.UserID
	Action     Action
	From       time.Time
	To         time.Time
}

// Matches reports whether the entry satisfies every set filter field.
func (f Filter) Matches(e Entry) bool {
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	if !f.ActorID.IsNil() && e.ActorID != f.ActorID {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if !f.From.IsZero() && e.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Timestamp.After(f.To) {
		return false
	}
	return true
}
