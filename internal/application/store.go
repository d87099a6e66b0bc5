package application

import (
	"context"

	id "komek/pkg/domain"
)

type Store interface {
	Create(ctx context.Context, app *Application) error
	FindByID(ctx context.Context, appID id.ApplicationID) (*Application, error)
	Update(ctx context.Context, app *Application) error
	ListByStatus(ctx context.Context, status Status) ([]*Application, error)
}
