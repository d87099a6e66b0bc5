package consent

import (
	"context"
	"time"

	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

// Service persists consent decisions and provides purpose-aware checks. It
// keeps orchestration out of handlers and domain logic thin.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Grant records consent for the given purposes.
func (s *Service) Grant(ctx context.Context, applicantID id.ApplicantID, purposes []Purpose, ttl time.Duration) ([]Record, error) {
	if len(purposes) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "purposes must not be empty")
	}
	for _, p := range purposes {
		if !p.IsValid() {
			return nil, dErrors.New(dErrors.CodeBadRequest, "invalid purpose: "+string(p))
		}
	}
	now := time.Now()
	records := make([]Record, 0, len(purposes))
	for _, p := range purposes {
		record := Record{
			ApplicantID: applicantID,
			Purpose:     p,
			GrantedAt:   now,
		}
		if ttl > 0 {
			record.ExpiresAt = now.Add(ttl)
		}
		if err := s.store.Save(ctx, record); err != nil {
			return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to grant consent", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Require returns an error when consent is missing, expired, or revoked.
func (s *Service) Require(ctx context.Context, applicantID id.ApplicantID, purpose Purpose, now time.Time) error {
	records, err := s.store.ListByApplicant(ctx, applicantID)
	if err != nil {
		return err
	}
	return Ensure(records, purpose, now)
}

// Revoke withdraws consent for one purpose.
func (s *Service) Revoke(ctx context.Context, applicantID id.ApplicantID, purpose Purpose) error {
	if err := s.store.Revoke(ctx, applicantID, purpose, time.Now()); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to revoke consent", err)
	}
	return nil
}

// List returns all consent records for an applicant.
func (s *Service) List(ctx context.Context, applicantID id.ApplicantID) ([]Record, error) {
	return s.store.ListByApplicant(ctx, applicantID)
}
