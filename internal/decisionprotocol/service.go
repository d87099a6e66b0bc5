package decisionprotocol

import (
	"context"
	"time"

	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

// Service validates and records decision protocols. Constructed explicitly
// and passed by handle; no package-level state.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record validates and stores a protocol, stamping the decision time when
// the caller left it zero.
func (s *Service) Record(ctx context.Context, protocol Protocol) (Protocol, error) {
	if err := protocol.Validate(); err != nil {
		return Protocol{}, err
	}
	if protocol.ID == (id.ProtocolID{}) {
		protocol.ID = id.NewProtocolID()
	}
	if protocol.DecidedAt.IsZero() {
		protocol.DecidedAt = time.Now()
	}
	if err := s.store.Save(ctx, protocol); err != nil {
		return Protocol{}, dErrors.Wrap(dErrors.CodeInternal, "failed to record decision protocol", err)
	}
	return protocol, nil
}

// ListByApplication returns every protocol recorded for an application in
// decision order.
func (s *Service) ListByApplication(ctx context.Context, appID id.ApplicationID) ([]Protocol, error) {
	return s.store.ListByApplication(ctx, appID)
}
