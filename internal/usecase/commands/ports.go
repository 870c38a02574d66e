package commands

import (
	"context"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side view types.

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

// Collaborator lookup contracts consumed by the booking command path.

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type ItemReader interface {
	FindByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemSnapshot, error)
}

// Write repositories.

type UserRepository interface {
	Create(ctx context.Context, id uuid.UUID, name, email string) (*queries.UserView, error)
	Update(ctx context.Context, id uuid.UUID, name, email string) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, item ItemSnapshot) (*queries.ItemView, error)
	Update(ctx context.Context, id uuid.UUID, name, description string, available bool) (*queries.ItemView, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*queries.BookingView, error)
	// DecideStatus moves the booking out of WAITING with a conditional
	// update; it reports false when the row was no longer WAITING, so two
	// racing approvals cannot both win.
	DecideStatus(ctx context.Context, id uuid.UUID, next booking.Status) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, id, itemID, authorID uuid.UUID, text string, created time.Time) (*queries.CommentView, error)
	// HasFinishedApprovedBooking reports whether the user held an APPROVED
	// booking of the item that ended before now.
	HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error)
}

type RequestRepository interface {
	Create(ctx context.Context, id, requesterID uuid.UUID, description string, created time.Time) (*queries.RequestView, error)
}
