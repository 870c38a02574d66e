//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestBookingRepository_DecideStatus(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success: waiting row is updated", func(t *testing.T) {
		db := &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 1")}
		repo := repository.NewBookingRepository(db)

		applied, err := repo.DecideStatus(ctx, bookingID, booking.StatusApproved)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("update is guarded on the WAITING status", func(t *testing.T) {
		db := &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 1")}
		repo := repository.NewBookingRepository(db)

		_, err := repo.DecideStatus(ctx, bookingID, booking.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3", db.lastSQL)
		assert.Equal(t, []any{string(booking.StatusApproved), bookingID, string(booking.StatusWaiting)}, db.lastArgs)
	})

	t.Run("zero affected rows reports the decision as lost", func(t *testing.T) {
		db := &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 0")}
		repo := repository.NewBookingRepository(db)

		applied, err := repo.DecideStatus(ctx, bookingID, booking.StatusRejected)
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("error: database error", func(t *testing.T) {
		db := &stubDBTX{execErr: errDBConnectionLost}
		repo := repository.NewBookingRepository(db)

		applied, err := repo.DecideStatus(ctx, bookingID, booking.StatusApproved)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "expected kind [%v] but got (%v)", infra.KindDBFailure, err)
		assert.False(t, applied)
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// stubDBTX is a stub implementation of infra.DBTX that records the last
// statement and serves canned results.
type stubDBTX struct {
	execTag  pgconn.CommandTag
	execErr  error
	rowErr   error
	scan     func(dest ...any) error
	lastSQL  string
	lastArgs []any
}

func (s *stubDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.lastSQL, s.lastArgs = sql, args
	return s.execTag, s.execErr
}

func (s *stubDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.lastSQL, s.lastArgs = sql, args
	return nil, nil
}

func (s *stubDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.lastSQL, s.lastArgs = sql, args
	return stubRow{err: s.rowErr, scan: s.scan}
}

type stubRow struct {
	err  error
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.scan != nil {
		return r.scan(dest...)
	}
	return nil
}
