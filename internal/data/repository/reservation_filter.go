package repository

import (
	"fmt"
	"strings"
	"time"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
)

// ReservationFilter adds one typed WHERE dimension to a reservation listing.
// Filters compose with AND; there is no ad hoc predicate object.
type ReservationFilter func(*reservationWhere)

type reservationWhere struct {
	clauses []string
	args    []any
}

// WithStatus limits results to a single reservation status.
func WithStatus(status entity.ReservationStatus) ReservationFilter {
	return func(w *reservationWhere) {
		w.clauses = append(w.clauses, fmt.Sprintf("status = $%d", len(w.args)+1))
		w.args = append(w.args, status)
	}
}

// WithRetreat limits results to reservations of one retreat.
func WithRetreat(retreatID uuid.UUID) ReservationFilter {
	return func(w *reservationWhere) {
		w.clauses = append(w.clauses, fmt.Sprintf("retreat_id = $%d", len(w.args)+1))
		w.args = append(w.args, retreatID)
	}
}

// WithGuest limits results to reservations of one guest.
func WithGuest(guestID uuid.UUID) ReservationFilter {
	return func(w *reservationWhere) {
		w.clauses = append(w.clauses, fmt.Sprintf("guest_id = $%d", len(w.args)+1))
		w.args = append(w.args, guestID)
	}
}

// WithDateWindow limits results to stays intersecting [from, to], bounds
// inclusive, matching the overlap rule used for capacity.
func WithDateWindow(from, to time.Time) ReservationFilter {
	return func(w *reservationWhere) {
		w.clauses = append(w.clauses, fmt.Sprintf("check_in <= $%d AND check_out >= $%d", len(w.args)+2, len(w.args)+1))
		w.args = append(w.args, from, to)
	}
}

func buildReservationWhere(filters []ReservationFilter) (string, []any) {
	w := &reservationWhere{}
	for _, f := range filters {
		f(w)
	}
	if len(w.clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(w.clauses, " AND "), w.args
}
