package response

import (
	"time"

	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingItemResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type BookingBookerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID             `json:"id"`
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
	Status string                `json:"status"`
	Item   BookingItemResponse   `json:"item"`
	Booker BookingBookerResponse `json:"booker"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: string(v.Status),
		Item: BookingItemResponse{
			ID:      v.Item.ID,
			Name:    v.Item.Name,
			OwnerID: v.Item.OwnerID,
		},
		Booker: BookingBookerResponse{
			ID:   v.Booker.ID,
			Name: v.Booker.Name,
		},
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}
