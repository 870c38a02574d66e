package repository

import (
	"context"
	"errors"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CommentRepository struct {
	db infra.DBTX
}

func NewCommentRepository(db infra.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, id, itemID, authorID uuid.UUID, text string, created time.Time) (*queries.CommentView, error) {
	nameSQL, nameArgs, err := psql.Select("name").
		From("users").
		Where(squirrel.Eq{"id": authorID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build author query", err)
	}

	var authorName string
	if err := r.db.QueryRow(ctx, nameSQL, nameArgs...).Scan(&authorName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("author not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find comment author", err)
	}

	sql, args, err := psql.Insert("comments").
		Columns("id", "item_id", "author_id", "text", "created").
		Values(id, itemID, authorID, text, created).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comment insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to insert comment", err)
	}

	return &queries.CommentView{
		ID:         id,
		Text:       text,
		AuthorName: authorName,
		Created:    created,
	}, nil
}

func (r *CommentRepository) HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	sub := psql.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booker_id": bookerID}).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"status": string(booking.StatusApproved)}).
		Where(squirrel.Lt{"end_at": now})

	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build booking existence query", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS ("+subSQL+")", subArgs...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}
