package consent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

func TestGrant(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()
	applicantID := id.NewApplicantID()

	t.Run("records one entry per purpose", func(t *testing.T) {
		records, err := svc.Grant(ctx, applicantID,
			[]Purpose{PurposeDataProcessing, PurposeRegistryCheck}, 0)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].ExpiresAt.IsZero())

		stored, err := svc.List(ctx, applicantID)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})

	t.Run("applies the TTL when set", func(t *testing.T) {
		records, err := svc.Grant(ctx, id.NewApplicantID(),
			[]Purpose{PurposeDataProcessing}, time.Hour)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, records[0].GrantedAt.Add(time.Hour), records[0].ExpiresAt)
	})

	t.Run("rejects empty purposes", func(t *testing.T) {
		_, err := svc.Grant(ctx, applicantID, nil, 0)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("rejects unknown purposes", func(t *testing.T) {
		_, err := svc.Grant(ctx, applicantID, []Purpose{"telemetry"}, 0)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestRequire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("passes for an active grant", func(t *testing.T) {
		svc := NewService(NewInMemoryStore())
		applicantID := id.NewApplicantID()
		_, err := svc.Grant(ctx, applicantID, []Purpose{PurposeRegistryCheck}, 0)
		require.NoError(t, err)
		assert.NoError(t, svc.Require(ctx, applicantID, PurposeRegistryCheck, now))
	})

	t.Run("fails when never granted", func(t *testing.T) {
		svc := NewService(NewInMemoryStore())
		err := svc.Require(ctx, id.NewApplicantID(), PurposeRegistryCheck, now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingConsent))
	})

	t.Run("fails after revocation", func(t *testing.T) {
		svc := NewService(NewInMemoryStore())
		applicantID := id.NewApplicantID()
		_, err := svc.Grant(ctx, applicantID, []Purpose{PurposeRegistryCheck}, 0)
		require.NoError(t, err)
		require.NoError(t, svc.Revoke(ctx, applicantID, PurposeRegistryCheck))

		err = svc.Require(ctx, applicantID, PurposeRegistryCheck, time.Now().Add(time.Minute))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingConsent))
	})

	t.Run("revoking one purpose leaves the others active", func(t *testing.T) {
		svc := NewService(NewInMemoryStore())
		applicantID := id.NewApplicantID()
		_, err := svc.Grant(ctx, applicantID,
			[]Purpose{PurposeDataProcessing, PurposeRegistryCheck}, 0)
		require.NoError(t, err)
		require.NoError(t, svc.Revoke(ctx, applicantID, PurposeRegistryCheck))

		later := time.Now().Add(time.Minute)
		assert.Error(t, svc.Require(ctx, applicantID, PurposeRegistryCheck, later))
		assert.NoError(t, svc.Require(ctx, applicantID, PurposeDataProcessing, later))
	})
}

func TestRecordIsActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	revoked := now.Add(-time.Hour)

	tests := []struct {
		name   string
		record Record
		active bool
	}{
		{"no expiry", Record{Purpose: PurposeDataProcessing, GrantedAt: now.Add(-time.Hour)}, true},
		{"before expiry", Record{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", Record{ExpiresAt: now.Add(-time.Minute)}, false},
		{"revoked earlier", Record{RevokedAt: &revoked}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, tt.record.IsActive(now))
		})
	}
}

func TestParsePurpose(t *testing.T) {
	parsed, err := ParsePurpose("data_processing")
	require.NoError(t, err)
	assert.Equal(t, PurposeDataProcessing, parsed)

	_, err = ParsePurpose("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = ParsePurpose("telemetry")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
