//go:build unit

package repository_test

import (
	"context"
	"testing"

	"lendshare/internal/infra"
	"lendshare/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	ownerID := uuid.New()

	scanItem := func(dest ...any) error {
		*dest[0].(*uuid.UUID) = itemID
		*dest[1].(*uuid.UUID) = ownerID
		*dest[2].(*string) = "drill"
		*dest[3].(*string) = "cordless drill"
		*dest[4].(*bool) = true
		*dest[5].(**uuid.UUID) = nil
		return nil
	}

	t.Run("success: snapshot is read by item id", func(t *testing.T) {
		db := &stubDBTX{scan: scanItem}
		repo := repository.NewItemRepository(db)

		snap, err := repo.FindByID(ctx, uuid.New(), itemID)
		require.NoError(t, err)
		assert.Equal(t, itemID, snap.ID)
		assert.Equal(t, ownerID, snap.OwnerID)
		assert.True(t, snap.Available)
	})

	t.Run("requester identity does not narrow the lookup", func(t *testing.T) {
		db := &stubDBTX{scan: scanItem}
		repo := repository.NewItemRepository(db)

		_, err := repo.FindByID(ctx, ownerID, itemID)
		require.NoError(t, err)
		firstSQL, firstArgs := db.lastSQL, db.lastArgs

		_, err = repo.FindByID(ctx, uuid.New(), itemID)
		require.NoError(t, err)
		assert.Equal(t, firstSQL, db.lastSQL)
		assert.Equal(t, firstArgs, db.lastArgs)
		assert.Equal(t, []any{itemID}, db.lastArgs)
	})

	t.Run("error: no row maps to not found", func(t *testing.T) {
		db := &stubDBTX{rowErr: pgx.ErrNoRows}
		repo := repository.NewItemRepository(db)

		snap, err := repo.FindByID(ctx, uuid.New(), itemID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "expected kind [%v] but got (%v)", infra.KindNotFound, err)
		assert.Nil(t, snap)
	})
}
