package repository

import (
	"context"
	"errors"

	"lendshare/internal/infra"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db infra.DBTX
}

func NewItemRepository(db infra.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item commands.ItemSnapshot) (*queries.ItemView, error) {
	sql, args, err := psql.Insert("items").
		Columns("id", "owner_id", "name", "description", "is_available", "request_id").
		Values(item.ID, item.OwnerID, item.Name, item.Description, item.Available, item.RequestID).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to insert item", err)
	}

	return &queries.ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		OwnerID:     item.OwnerID,
		RequestID:   item.RequestID,
		Comments:    make([]queries.CommentView, 0),
	}, nil
}

func (r *ItemRepository) Update(ctx context.Context, id uuid.UUID, name, description string, available bool) (*queries.ItemView, error) {
	sql, args, err := psql.Update("items").
		Set("name", name).
		Set("description", description).
		Set("is_available", available).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING owner_id, request_id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item update", err)
	}

	var ownerID uuid.UUID
	var requestID *uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&ownerID, &requestID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update item", err)
	}

	return &queries.ItemView{
		ID:          id,
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
		Comments:    make([]queries.CommentView, 0),
	}, nil
}

// FindByID satisfies the command-side item reader. The requester identity
// does not narrow the lookup; callers filter afterward.
func (r *ItemRepository) FindByID(ctx context.Context, _, itemID uuid.UUID) (*commands.ItemSnapshot, error) {
	sql, args, err := psql.Select("id", "owner_id", "name", "description", "is_available", "request_id").
		From("items").
		Where(squirrel.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item snapshot query", err)
	}

	var snap commands.ItemSnapshot
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Description, &snap.Available, &snap.RequestID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item snapshot", err)
	}
	return &snap, nil
}
