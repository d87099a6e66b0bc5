package decisionprotocol

import (
	"context"

	id "komek/pkg/domain"
)

type Store interface {
	Save(ctx context.Context, protocol Protocol) error
	ListByApplication(ctx context.Context, appID id.ApplicationID) ([]Protocol, error)
	Reset(ctx context.Context) error
}
