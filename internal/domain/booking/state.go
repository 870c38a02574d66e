package booking

import "errors"

var (
	ErrNotOwner       = errors.New("only the item owner may decide a booking")
	ErrAlreadyDecided = errors.New("booking is no longer waiting for a decision")
)

// Transition decides a waiting booking. Only the item owner may decide, and
// only while the booking is still WAITING; a decision is taken exactly once.
// Ownership is checked before the status so a non-owner probing a decided
// booking still gets the permission error.
func Transition(current Status, approverIsOwner bool, approved bool) (Status, error) {
	if !approverIsOwner {
		return current, ErrNotOwner
	}
	if current != StatusWaiting {
		return current, ErrAlreadyDecided
	}
	if approved {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}
