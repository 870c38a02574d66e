package queries

import (
	"time"

	"lendshare/internal/domain/booking"
)

// StateToken is a caller-supplied keyword selecting a temporal or status
// subset of bookings. Matching is case-sensitive.
type StateToken string

const (
	StateAll      StateToken = "ALL"
	StateCurrent  StateToken = "CURRENT"
	StatePast     StateToken = "PAST"
	StateFuture   StateToken = "FUTURE"
	StateWaiting  StateToken = "WAITING"
	StateRejected StateToken = "REJECTED"
)

// UnknownStateError reports the exact token the caller sent; the message
// format is part of the API contract.
type UnknownStateError struct {
	Token string
}

func (e *UnknownStateError) Error() string {
	return "Unknown state: " + e.Token
}

func ParseStateToken(s string) (StateToken, error) {
	switch tok := StateToken(s); tok {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return tok, nil
	default:
		return "", &UnknownStateError{Token: s}
	}
}

// BookingFilter is the declarative predicate a state token resolves to. At
// most one of the temporal fields is set; read stores translate it to SQL.
type BookingFilter struct {
	// CurrentAt selects bookings with start <= t <= end, bounds inclusive.
	CurrentAt *time.Time
	// EndBefore selects bookings with end < t.
	EndBefore *time.Time
	// StartAfter selects bookings with start > t.
	StartAfter *time.Time
	// Status selects bookings by exact status.
	Status *booking.Status
}

// FilterForState resolves a token against the reference instant now.
func FilterForState(tok StateToken, now time.Time) (BookingFilter, error) {
	switch tok {
	case StateAll:
		return BookingFilter{}, nil
	case StateCurrent:
		return BookingFilter{CurrentAt: &now}, nil
	case StatePast:
		return BookingFilter{EndBefore: &now}, nil
	case StateFuture:
		return BookingFilter{StartAfter: &now}, nil
	case StateWaiting:
		st := booking.StatusWaiting
		return BookingFilter{Status: &st}, nil
	case StateRejected:
		st := booking.StatusRejected
		return BookingFilter{Status: &st}, nil
	default:
		return BookingFilter{}, &UnknownStateError{Token: string(tok)}
	}
}
