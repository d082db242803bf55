package usecase

import (
	"time"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
)

// rangesOverlap reports whether two date ranges intersect. Bounds are
// inclusive: a checkout on the same day as another stay's check-in counts
// as overlapping.
func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// committedPartySize sums the party sizes of seat-holding reservations whose
// stay intersects [checkIn, checkOut]. Only confirmed and completed
// reservations hold seats; the reservation identified by exclude is skipped
// so an edit can re-validate against everyone else.
func committedPartySize(checkIn, checkOut time.Time, existing []*entity.Reservation, exclude uuid.UUID) int {
	committed := 0
	for _, res := range existing {
		if res.ID == exclude {
			continue
		}
		if !res.CountsTowardCapacity() {
			continue
		}
		if rangesOverlap(checkIn, checkOut, res.CheckIn, res.CheckOut) {
			committed += res.PartySize
		}
	}
	return committed
}
