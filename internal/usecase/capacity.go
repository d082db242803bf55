package usecase

import (
	"time"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
)

// checkCapacity decides admission of a candidate stay against a retreat's
// capacity, given a snapshot of existing reservations. Pure decision over
// the snapshot; the caller is responsible for taking the snapshot and
// writing the reservation inside one serialized boundary.
//
// A zero-length stay (checkIn == checkOut) occupies one day under the
// inclusive overlap rule. Pass uuid.Nil as exclude when creating.
func checkCapacity(capacity int, checkIn, checkOut time.Time, partySize int, existing []*entity.Reservation, exclude uuid.UUID) error {
	committed := committedPartySize(checkIn, checkOut, existing, exclude)
	if committed+partySize > capacity {
		return entity.ErrCapacityExceeded
	}
	return nil
}
