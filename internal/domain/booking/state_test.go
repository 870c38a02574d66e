//go:build unit

package booking_test

import (
	"testing"

	"lendshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		current  booking.Status
		isOwner  bool
		approved bool
		want     booking.Status
		errIs    error
	}{
		{name: "owner approves waiting", current: booking.StatusWaiting, isOwner: true, approved: true, want: booking.StatusApproved},
		{name: "owner rejects waiting", current: booking.StatusWaiting, isOwner: true, approved: false, want: booking.StatusRejected},
		{name: "owner approves approved", current: booking.StatusApproved, isOwner: true, approved: true, errIs: booking.ErrAlreadyDecided},
		{name: "owner rejects approved", current: booking.StatusApproved, isOwner: true, approved: false, errIs: booking.ErrAlreadyDecided},
		{name: "owner approves rejected", current: booking.StatusRejected, isOwner: true, approved: true, errIs: booking.ErrAlreadyDecided},
		{name: "owner rejects rejected", current: booking.StatusRejected, isOwner: true, approved: false, errIs: booking.ErrAlreadyDecided},
		{name: "stranger approves waiting", current: booking.StatusWaiting, isOwner: false, approved: true, errIs: booking.ErrNotOwner},
		{name: "stranger rejects waiting", current: booking.StatusWaiting, isOwner: false, approved: false, errIs: booking.ErrNotOwner},
		{name: "stranger approves approved", current: booking.StatusApproved, isOwner: false, approved: true, errIs: booking.ErrNotOwner},
		{name: "stranger rejects approved", current: booking.StatusApproved, isOwner: false, approved: false, errIs: booking.ErrNotOwner},
		{name: "stranger approves rejected", current: booking.StatusRejected, isOwner: false, approved: true, errIs: booking.ErrNotOwner},
		{name: "stranger rejects rejected", current: booking.StatusRejected, isOwner: false, approved: false, errIs: booking.ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := booking.Transition(tt.current, tt.isOwner, tt.approved)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				// A failed transition leaves the status where it was.
				assert.Equal(t, tt.current, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestTransitionOwnershipCheckedFirst(t *testing.T) {
	// A stranger poking an already-decided booking gets the ownership error,
	// not the already-decided one.
	_, err := booking.Transition(booking.StatusApproved, false, true)
	require.ErrorIs(t, err, booking.ErrNotOwner)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusWaiting.IsValid())
	assert.True(t, booking.StatusApproved.IsValid())
	assert.True(t, booking.StatusRejected.IsValid())
	assert.False(t, booking.Status("CANCELLED").IsValid())
	assert.False(t, booking.Status("waiting").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusWaiting.IsTerminal())
	assert.True(t, booking.StatusApproved.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
}
