package response

import (
	"time"

	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	RequesterID uuid.UUID      `json:"requesterId"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	items := make([]ItemResponse, 0, len(v.Items))
	for i := range v.Items {
		items = append(items, *FromItemView(&v.Items[i]))
	}

	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		RequesterID: v.RequesterID,
		Created:     v.Created,
		Items:       items,
	}
}

func FromRequestList(views []*queries.RequestView) []*ItemRequestResponse {
	out := make([]*ItemRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRequestView(v))
	}
	return out
}
