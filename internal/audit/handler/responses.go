package handler

import (
	"time"

	"komek/internal/audit"
)

// EntryResponse is the HTTP representation of one ledger entry.
type EntryResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	FieldName  string    `json:"field_name,omitempty"`
	OldValue   string    `json:"old_value,omitempty"`
	NewValue   string    `json:"new_value,omitempty"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Event      string    `json:"event,omitempty"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// FromEntries converts ledger entries to their HTTP representation.
func FromEntries(entries []audit.Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, EntryResponse{
			ID:         e.ID.String(),
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     string(e.Action),
			FieldName:  e.FieldName,
			OldValue:   e.OldValue,
			NewValue:   e.NewValue,
			ActorID:    e.ActorID.String(),
			ActorRole:  e.ActorRole,
			Event:      e.Event,
			IP:         e.Request.IP,
			UserAgent:  e.Request.UserAgent,
			RequestID:  e.Request.RequestID,
			Timestamp:  e.Timestamp,
		})
	}
	return responses
}
