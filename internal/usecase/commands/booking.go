package commands

import (
	"context"
	"log/slog"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// Create books an item for the caller. The item's availability flag is
	// read once; nothing prevents overlapping windows on the same item.
	Create(ctx context.Context, userID, itemID uuid.UUID, start, end time.Time) (*queries.BookingView, error)
	// Decide approves or rejects a waiting booking. Only the item owner may
	// decide, exactly once.
	Decide(ctx context.Context, userID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings       BookingRepository
	items          ItemReader
	users          UserReader
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	bookings BookingRepository,
	items ItemReader,
	users UserReader,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:       bookings,
		items:          items,
		users:          users,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, userID, itemID uuid.UUID, start, end time.Time) (*queries.BookingView, error) {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	item, err := c.items.FindByID(ctx, userID, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(booking.ItemSpec{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		Available: item.Available,
	}, userID, start, end)
	if err != nil {
		return nil, err
	}

	view, err := c.bookings.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("booking created",
		"booking_id", view.ID, "item_id", itemID, "booker_id", userID)
	return view, nil
}

func (c *bookingCommandsImpl) Decide(ctx context.Context, userID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error) {
	// Same visibility rule as reading the booking: strangers get not-found.
	view, err := c.bookingQueries.GetByID(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	next, err := booking.Transition(view.Status, userID == view.Item.OwnerID, approved)
	if err != nil {
		return nil, err
	}

	applied, err := c.bookings.DecideStatus(ctx, bookingID, next)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !applied {
		// Lost the race against another decision.
		return nil, booking.ErrAlreadyDecided
	}

	slog.Info("booking decided",
		"booking_id", bookingID, "status", next, "owner_id", userID)
	view.Status = next
	return view, nil
}
