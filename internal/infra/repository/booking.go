package repository

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

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*queries.BookingView, error) {
	sql, args, err := psql.Insert("bookings").
		Columns("id", "item_id", "booker_id", "start_at", "end_at", "status").
		Values(b.ID(), b.ItemID(), b.BookerID(), b.Start(), b.End(), string(b.Status())).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	return r.findView(ctx, b.ID())
}

// DecideStatus applies the decision with a conditional update so only one of
// two racing approvals can leave WAITING. false means the booking was already
// decided.
func (r *BookingRepository) DecideStatus(ctx context.Context, id uuid.UUID, next booking.Status) (bool, error) {
	sql, args, err := psql.Update("bookings").
		Set("status", string(next)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(booking.StatusWaiting)}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build booking decision update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) findView(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	sql, args, err := psql.Select(
		"b.id", "b.start_at", "b.end_at", "b.status",
		"i.id", "i.name", "i.owner_id",
		"u.id", "u.name",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	var v queries.BookingView
	var status string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&v.ID, &v.Start, &v.End, &status,
		&v.Item.ID, &v.Item.Name, &v.Item.OwnerID,
		&v.Booker.ID, &v.Booker.Name,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found after write", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking after write", err)
	}
	v.Status = booking.Status(status)
	return &v, nil
}
