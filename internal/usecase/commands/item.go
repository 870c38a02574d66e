package commands

import (
	"context"
	"log/slog"
	"strings"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/clock"
	"lendshare/internal/pkg/errs"
	"lendshare/internal/pkg/patch"
	"lendshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*queries.ItemView, error)
	// Update patches an item; only the owner may do so, anyone else gets the
	// same not-found as a missing item.
	Update(ctx context.Context, ownerID, itemID uuid.UUID, name, description *string, available *bool) (*queries.ItemView, error)
	// AddComment requires the author to have held an APPROVED booking of the
	// item that already ended.
	AddComment(ctx context.Context, userID, itemID uuid.UUID, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	repo     ItemRepository
	comments CommentRepository
	items    ItemReader
	users    UserReader
	clock    clock.Clock
}

func NewItemCommands(
	repo ItemRepository,
	comments CommentRepository,
	items ItemReader,
	users UserReader,
	clock clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		repo:     repo,
		comments: comments,
		items:    items,
		users:    users,
		clock:    clock,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*queries.ItemView, error) {
	if _, err := c.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.repo.Create(ctx, ItemSnapshot{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Available:   available,
		RequestID:   requestID,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("item created", "item_id", view.ID, "owner_id", ownerID)
	return view, nil
}

func (c *itemCommandsImpl) Update(ctx context.Context, ownerID, itemID uuid.UUID, name, description *string, available *bool) (*queries.ItemView, error) {
	current, err := c.items.FindByID(ctx, ownerID, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if current.OwnerID != ownerID {
		return nil, errs.ErrItemNotFound
	}

	view, err := c.repo.Update(ctx,
		itemID,
		patch.Coalesce(name, current.Name),
		patch.Coalesce(description, current.Description),
		patch.Coalesce(available, current.Available),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *itemCommandsImpl) AddComment(ctx context.Context, userID, itemID uuid.UUID, text string) (*queries.CommentView, error) {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := c.items.FindByID(ctx, userID, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	rented, err := c.comments.HasFinishedApprovedBooking(ctx, userID, itemID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !rented {
		return nil, errs.ErrCommentWithoutBooking
	}

	view, err := c.comments.Create(ctx, uuid.New(), itemID, userID, strings.TrimSpace(text), now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
