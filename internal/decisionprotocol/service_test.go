package decisionprotocol

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

func validProtocol(appID id.ApplicationID) Protocol {
	return Protocol{
		ApplicationID: appID,
		Decision:      DecisionApprove,
		Responsible:   "B. Toktogulov",
		Position:      "Director",
		Reason:        "household qualifies under the program",
		LegalBasis:    "Regulation 124, art. 7",
		DecidedAt:     time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestProtocolValidate(t *testing.T) {
	appID := id.NewApplicationID()

	tests := []struct {
		name   string
		mutate func(p *Protocol)
		valid  bool
	}{
		{"complete protocol", func(p *Protocol) {}, true},
		{"unknown decision", func(p *Protocol) { p.Decision = "escalate" }, false},
		{"missing application", func(p *Protocol) { p.ApplicationID = id.ApplicationID{} }, false},
		{"missing responsible", func(p *Protocol) { p.Responsible = "" }, false},
		{"missing position", func(p *Protocol) { p.Position = "" }, false},
		{"missing reason", func(p *Protocol) { p.Reason = "" }, false},
		{"missing legal basis", func(p *Protocol) { p.LegalBasis = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProtocol(appID)
			tt.mutate(&p)
			err := p.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			}
		})
	}
}

func TestServiceRecord(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()
	appID := id.NewApplicationID()

	t.Run("assigns an ID and persists", func(t *testing.T) {
		recorded, err := svc.Record(ctx, validProtocol(appID))
		require.NoError(t, err)
		assert.False(t, recorded.ID.IsNil())

		listed, err := svc.ListByApplication(ctx, appID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, recorded.ID, listed[0].ID)
	})

	t.Run("rejects incomplete protocols", func(t *testing.T) {
		p := validProtocol(appID)
		p.Reason = ""
		_, err := svc.Record(ctx, p)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("keeps protocols per application in decision order", func(t *testing.T) {
		otherID := id.NewApplicationID()
		first := validProtocol(otherID)
		second := validProtocol(otherID)
		second.Decision = DecisionSuspend

		_, err := svc.Record(ctx, first)
		require.NoError(t, err)
		_, err = svc.Record(ctx, second)
		require.NoError(t, err)

		listed, err := svc.ListByApplication(ctx, otherID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, DecisionApprove, listed[0].Decision)
		assert.Equal(t, DecisionSuspend, listed[1].Decision)
	})
}
