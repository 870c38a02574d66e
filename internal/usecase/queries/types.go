package queries

import (
	"time"

	"lendshare/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models for the query side. Joins are resolved into flat views here;
// entities never carry object graphs.

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type UserBrief struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemBrief struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type BookingView struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status booking.Status `json:"status"`
	Item   ItemBrief      `json:"item"`
	Booker UserBrief      `json:"booker"`
}

// BookingBrief is the last/next booking attached to an item view for its
// owner.
type BookingBrief struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	RequestID   *uuid.UUID    `json:"requestId,omitempty"`
	Comments    []CommentView `json:"comments"`
	LastBooking *BookingBrief `json:"lastBooking,omitempty"`
	NextBooking *BookingBrief `json:"nextBooking,omitempty"`
}

type RequestView struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	RequesterID uuid.UUID  `json:"requesterId"`
	Created     time.Time  `json:"created"`
	Items       []ItemView `json:"items"`
}
