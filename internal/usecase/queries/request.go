package queries

import (
	"context"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	// FindAllExcept lists other users' requests, newest first.
	FindAllExcept(ctx context.Context, requesterID uuid.UUID, page PageWindow) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	ListAll(ctx context.Context, userID uuid.UUID, from, size *int32) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
	users UserReadStore
}

func NewRequestQueries(store RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{store: store, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	view, err := q.store.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.store.FindByRequester(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *requestQueriesImpl) ListAll(ctx context.Context, userID uuid.UUID, from, size *int32) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	page, err := NewPageWindow(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.store.FindAllExcept(ctx, userID, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
