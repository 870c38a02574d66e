package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrOwnerBooking    = errors.New("owner cannot book own item")
)

// ItemSpec is the slice of the item collaborator the create path needs.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id       uuid.UUID
	itemID   uuid.UUID
	bookerID uuid.UUID
	start    time.Time
	end      time.Time
	status   Status
}

// NewBooking runs the create-path checks in order: the item must be marked
// available, and the booker must not be the item's owner. The availability
// flag is read once here and never locked; overlapping windows on the same
// item are accepted on purpose.
//
// The start < end relation is not checked, matching the persisted contract.
func NewBooking(item ItemSpec, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if bookerID == item.OwnerID {
		return nil, ErrOwnerBooking
	}

	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		start:    start,
		end:      end,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		start:    start,
		end:      end,
		status:   status,
	}
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Start() time.Time    { return b.start }
func (b *Booking) End() time.Time      { return b.end }
func (b *Booking) Status() Status      { return b.status }
