package commands

import (
	"context"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestCommands interface {
	Create(ctx context.Context, userID uuid.UUID, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	repo  RequestRepository
	users UserReader
	clock clock.Clock
}

func NewRequestCommands(repo RequestRepository, users UserReader, clock clock.Clock) RequestCommands {
	return &requestCommandsImpl{repo: repo, users: users, clock: clock}
}

func (c *requestCommandsImpl) Create(ctx context.Context, userID uuid.UUID, description string) (*queries.RequestView, error) {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.repo.Create(ctx, uuid.New(), userID, description, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
