package queries

import (
	"context"
	"strings"
	"time"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page PageWindow) ([]*ItemView, error)
	Search(ctx context.Context, text string, page PageWindow) ([]*ItemView, error)
	// FindLastBooking returns the latest booking of the item that ended
	// before now, FindNextBooking the earliest one starting after now. Both
	// return (nil, nil) when there is none.
	FindLastBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingBrief, error)
	FindNextBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingBrief, error)
}

type ItemQueries interface {
	// GetByID enriches the view with last/next booking info when the
	// requester owns the item; other users see the bare item.
	GetByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size *int32) ([]*ItemView, error)
	Search(ctx context.Context, text string, from, size *int32) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
	users UserReadStore
	clock clock.Clock
}

func NewItemQueries(store ItemReadStore, users UserReadStore, clock clock.Clock) ItemQueries {
	return &itemQueriesImpl{store: store, users: users, clock: clock}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if requesterID == view.OwnerID {
		if err := q.attachBookingInfo(ctx, view); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, from, size *int32) ([]*ItemView, error) {
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	page, err := NewPageWindow(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.store.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, view := range views {
		if err := q.attachBookingInfo(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, from, size *int32) ([]*ItemView, error) {
	page, err := NewPageWindow(from, size)
	if err != nil {
		return nil, err
	}

	// Blank search text is an empty result, not an error.
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	views, err := q.store.Search(ctx, strings.ToLower(text), page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *itemQueriesImpl) attachBookingInfo(ctx context.Context, view *ItemView) error {
	now := q.clock.Now()

	last, err := q.store.FindLastBooking(ctx, view.ID, now)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.LastBooking = last

	next, err := q.store.FindNextBooking(ctx, view.ID, now)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.NextBooking = next
	return nil
}
