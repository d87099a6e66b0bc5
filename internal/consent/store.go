package consent

import (
	"context"
	"time"

	id "komek/pkg/domain"
)

type Store interface {
	Save(ctx context.Context, record Record) error
	ListByApplicant(ctx context.Context, applicantID id.ApplicantID) ([]Record, error)
	Revoke(ctx context.Context, applicantID id.ApplicantID, purpose Purpose, revokedAt time.Time) error
}
