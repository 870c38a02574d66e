package readstore

import (
	"context"
	"errors"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func bookingSelect() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.start_at", "b.end_at", "b.status",
		"i.id", "i.name", "i.owner_id",
		"u.id", "u.name",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

// ApplyBookingFilter translates the declarative filter of a state token into
// SQL conditions. CURRENT keeps both bounds inclusive; PAST and FUTURE are
// strict.
func ApplyBookingFilter(q squirrel.SelectBuilder, filter queries.BookingFilter) squirrel.SelectBuilder {
	if filter.CurrentAt != nil {
		q = q.Where(squirrel.LtOrEq{"b.start_at": *filter.CurrentAt}).
			Where(squirrel.GtOrEq{"b.end_at": *filter.CurrentAt})
	}
	if filter.EndBefore != nil {
		q = q.Where(squirrel.Lt{"b.end_at": *filter.EndBefore})
	}
	if filter.StartAfter != nil {
		q = q.Where(squirrel.Gt{"b.start_at": *filter.StartAfter})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"b.status": string(*filter.Status)})
	}
	return q
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	sql, args, err := bookingSelect().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	view, err := scanBookingView(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByBooker(ctx context.Context, bookerID uuid.UUID, filter queries.BookingFilter, page queries.PageWindow) ([]*queries.BookingView, error) {
	q := bookingSelect().Where(squirrel.Eq{"b.booker_id": bookerID})
	return s.listBookings(ctx, q, filter, page)
}

func (s *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter queries.BookingFilter, page queries.PageWindow) ([]*queries.BookingView, error) {
	q := bookingSelect().Where(squirrel.Eq{"i.owner_id": ownerID})
	return s.listBookings(ctx, q, filter, page)
}

func (s *BookingReadStore) listBookings(ctx context.Context, q squirrel.SelectBuilder, filter queries.BookingFilter, page queries.PageWindow) ([]*queries.BookingView, error) {
	q = ApplyBookingFilter(q, filter).
		OrderBy("b.start_at DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset()))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking listing query", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	var status string
	if err := row.Scan(
		&v.ID, &v.Start, &v.End, &status,
		&v.Item.ID, &v.Item.Name, &v.Item.OwnerID,
		&v.Booker.ID, &v.Booker.Name,
	); err != nil {
		return nil, err
	}
	v.Status = booking.Status(status)
	return &v, nil
}
