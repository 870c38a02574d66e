package response

import (
	"time"

	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type BookingBriefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	OwnerID     uuid.UUID             `json:"ownerId"`
	RequestID   *uuid.UUID            `json:"requestId,omitempty"`
	Comments    []CommentResponse     `json:"comments"`
	LastBooking *BookingBriefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingBriefResponse `json:"nextBooking,omitempty"`
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	comments := make([]CommentResponse, 0, len(v.Comments))
	for i := range v.Comments {
		comments = append(comments, *FromCommentView(&v.Comments[i]))
	}

	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		OwnerID:     v.OwnerID,
		RequestID:   v.RequestID,
		Comments:    comments,
		LastBooking: fromBookingBrief(v.LastBooking),
		NextBooking: fromBookingBrief(v.NextBooking),
	}
}

func FromItemList(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromItemView(v))
	}
	return out
}

func fromBookingBrief(v *queries.BookingBrief) *BookingBriefResponse {
	if v == nil {
		return nil
	}
	return &BookingBriefResponse{
		ID:       v.ID,
		BookerID: v.BookerID,
		Start:    v.Start,
		End:      v.End,
	}
}
