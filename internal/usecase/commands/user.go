package commands

import (
	"context"
	"strings"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/pkg/patch"
	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserCommands interface {
	Create(ctx context.Context, name, email string) (*queries.UserView, error)
	// Update applies a partial patch; nil fields keep their current value.
	Update(ctx context.Context, id uuid.UUID, name, email *string) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	repo  UserRepository
	users UserReader
}

func NewUserCommands(repo UserRepository, users UserReader) UserCommands {
	return &userCommandsImpl{repo: repo, users: users}
}

func (c *userCommandsImpl) Create(ctx context.Context, name, email string) (*queries.UserView, error) {
	view, err := c.repo.Create(ctx, uuid.New(), name, email)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, name, email *string) (*queries.UserView, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, errs.ErrBlankName
	}

	current, err := c.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.repo.Update(ctx,
		id,
		patch.Coalesce(name, current.Name),
		patch.Coalesce(email, current.Email),
	)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
