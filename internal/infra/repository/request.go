package repository

import (
	"context"
	"time"

	"lendshare/internal/infra"
	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestRepository struct {
	db infra.DBTX
}

func NewRequestRepository(db infra.DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, id, requesterID uuid.UUID, description string, created time.Time) (*queries.RequestView, error) {
	sql, args, err := psql.Insert("item_requests").
		Columns("id", "requester_id", "description", "created").
		Values(id, requesterID, description, created).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to insert request", err)
	}

	return &queries.RequestView{
		ID:          id,
		Description: description,
		RequesterID: requesterID,
		Created:     created,
		Items:       make([]queries.ItemView, 0),
	}, nil
}
