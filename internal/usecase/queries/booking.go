package queries

import (
	"context"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID, filter BookingFilter, page PageWindow) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter BookingFilter, page PageWindow) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID is visible only to the booker and the item owner; anyone else
	// gets the same not-found as a missing booking.
	GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, userID uuid.UUID, state string, from, size *int32) ([]*BookingView, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, state string, from, size *int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if actorID != view.Booker.ID && actorID != view.Item.OwnerID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, userID uuid.UUID, state string, from, size *int32) ([]*BookingView, error) {
	filter, page, err := q.resolveListing(ctx, userID, state, from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.store.FindByBooker(ctx, userID, filter, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, userID uuid.UUID, state string, from, size *int32) ([]*BookingView, error) {
	filter, page, err := q.resolveListing(ctx, userID, state, from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.store.FindByOwner(ctx, userID, filter, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// resolveListing runs the shared listing plumbing: the user must exist, the
// state token must resolve, and the page window must validate.
func (q *bookingQueriesImpl) resolveListing(ctx context.Context, userID uuid.UUID, state string, from, size *int32) (BookingFilter, PageWindow, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return BookingFilter{}, PageWindow{}, errs.ErrUserNotFound
		}
		return BookingFilter{}, PageWindow{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	tok, err := ParseStateToken(state)
	if err != nil {
		return BookingFilter{}, PageWindow{}, err
	}

	filter, err := FilterForState(tok, q.clock.Now())
	if err != nil {
		return BookingFilter{}, PageWindow{}, err
	}

	page, err := NewPageWindow(from, size)
	if err != nil {
		return BookingFilter{}, PageWindow{}, err
	}

	return filter, page, nil
}
