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

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, id uuid.UUID, name, email string) (*queries.UserView, error) {
	sql, args, err := psql.Insert("users").
		Columns("id", "name", "email").
		Values(id, name, email).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to insert user", err)
	}
	return &queries.UserView{ID: id, Name: name, Email: email}, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, name, email string) (*queries.UserView, error) {
	sql, args, err := psql.Update("users").
		Set("name", name).
		Set("email", email).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &queries.UserView{ID: id, Name: name, Email: email}, nil
}

// FindByID satisfies the command-side user reader.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	sql, args, err := psql.Select("id", "name", "email").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user snapshot query", err)
	}

	var snap commands.UserSnapshot
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&snap.ID, &snap.Name, &snap.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user snapshot", err)
	}
	return &snap, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user delete", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
