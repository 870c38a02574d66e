package readstore

import (
	"context"
	"errors"

	"lendshare/internal/infra"
	"lendshare/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct {
	db    infra.DBTX
	items *ItemReadStore
}

func NewRequestReadStore(db infra.DBTX, items *ItemReadStore) *RequestReadStore {
	return &RequestReadStore{db: db, items: items}
}

func requestSelect() squirrel.SelectBuilder {
	return psql.Select("r.id", "r.description", "r.requester_id", "r.created").
		From("item_requests r")
}

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	sql, args, err := requestSelect().Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request query", err)
	}

	var v queries.RequestView
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&v.ID, &v.Description, &v.RequesterID, &v.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}

	if err := s.loadAnswers(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *RequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	q := requestSelect().
		Where(squirrel.Eq{"r.requester_id": requesterID}).
		OrderBy("r.created DESC")
	return s.listRequests(ctx, q)
}

func (s *RequestReadStore) FindAllExcept(ctx context.Context, requesterID uuid.UUID, page queries.PageWindow) ([]*queries.RequestView, error) {
	q := requestSelect().
		Where(squirrel.NotEq{"r.requester_id": requesterID}).
		OrderBy("r.created DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset()))
	return s.listRequests(ctx, q)
}

func (s *RequestReadStore) listRequests(ctx context.Context, q squirrel.SelectBuilder) ([]*queries.RequestView, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request listing query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		var v queries.RequestView
		if err := rows.Scan(&v.ID, &v.Description, &v.RequesterID, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}

	for _, v := range views {
		if err := s.loadAnswers(ctx, v); err != nil {
			return nil, err
		}
	}
	return views, nil
}

// loadAnswers attaches the items offered against a request.
func (s *RequestReadStore) loadAnswers(ctx context.Context, view *queries.RequestView) error {
	q := itemSelect().
		Where(squirrel.Eq{"i.request_id": view.ID}).
		OrderBy("i.id ASC")

	items, err := s.items.listItems(ctx, q)
	if err != nil {
		return err
	}

	view.Items = make([]queries.ItemView, 0, len(items))
	for _, item := range items {
		view.Items = append(view.Items, *item)
	}
	return nil
}
