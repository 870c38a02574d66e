package readstore

import (
	"context"
	"errors"
	"time"

	"lendshare/internal/infra"
	"lendshare/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemReadStore struct {
	db infra.DBTX
}

func NewItemReadStore(db infra.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func itemSelect() squirrel.SelectBuilder {
	return psql.Select("i.id", "i.name", "i.description", "i.is_available", "i.owner_id", "i.request_id").
		From("items i")
}

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	sql, args, err := itemSelect().Where(squirrel.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	view, err := scanItemView(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}

	if err := s.loadComments(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, page queries.PageWindow) ([]*queries.ItemView, error) {
	q := itemSelect().
		Where(squirrel.Eq{"i.owner_id": ownerID}).
		OrderBy("i.id ASC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset()))

	views, err := s.listItems(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if err := s.loadComments(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

// Search matches available items whose name or description contains the
// already-lowercased text.
func (s *ItemReadStore) Search(ctx context.Context, text string, page queries.PageWindow) ([]*queries.ItemView, error) {
	pattern := "%" + text + "%"
	q := itemSelect().
		Where(squirrel.Eq{"i.is_available": true}).
		Where(squirrel.Or{
			squirrel.Like{"lower(i.name)": pattern},
			squirrel.Like{"lower(i.description)": pattern},
		}).
		OrderBy("i.id ASC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset()))

	return s.listItems(ctx, q)
}

func (s *ItemReadStore) FindLastBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingBrief, error) {
	q := psql.Select("id", "booker_id", "start_at", "end_at").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Lt{"end_at": now}).
		OrderBy("end_at DESC").
		Limit(1)
	return s.findBookingBrief(ctx, q)
}

func (s *ItemReadStore) FindNextBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingBrief, error) {
	q := psql.Select("id", "booker_id", "start_at", "end_at").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Gt{"start_at": now}).
		OrderBy("start_at ASC").
		Limit(1)
	return s.findBookingBrief(ctx, q)
}

func (s *ItemReadStore) findBookingBrief(ctx context.Context, q squirrel.SelectBuilder) (*queries.BookingBrief, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking brief query", err)
	}

	var b queries.BookingBrief
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.BookerID, &b.Start, &b.End); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking brief", err)
	}
	return &b, nil
}

func (s *ItemReadStore) listItems(ctx context.Context, q squirrel.SelectBuilder) ([]*queries.ItemView, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item listing query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func (s *ItemReadStore) loadComments(ctx context.Context, view *queries.ItemView) error {
	sql, args, err := psql.Select("c.id", "c.text", "u.name", "c.created").
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.item_id": view.ID}).
		OrderBy("c.created ASC").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build comment query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	comments := make([]queries.CommentView, 0)
	for rows.Next() {
		var c queries.CommentView
		if err := rows.Scan(&c.ID, &c.Text, &c.AuthorName, &c.Created); err != nil {
			return infra.WrapRepoErr("failed to scan comment row", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read comment rows", err)
	}

	view.Comments = comments
	return nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var v queries.ItemView
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &v.RequestID); err != nil {
		return nil, err
	}
	v.Comments = make([]queries.CommentView, 0)
	return &v, nil
}
