package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Reservation struct {
	Base
	Code          string            `db:"code"`
	RetreatID     uuid.UUID         `db:"retreat_id"`
	GuestID       uuid.UUID         `db:"guest_id"`
	CheckIn       time.Time         `db:"check_in"`
	CheckOut      time.Time         `db:"check_out"`
	PartySize     int               `db:"party_size"`
	Status        ReservationStatus `db:"status"`
	TotalAmount   float64           `db:"total_amount"`
	PaidAmount    float64           `db:"paid_amount"`
	PaymentStatus PaymentStatus     `db:"payment_status"`
	PaymentMethod *string           `db:"payment_method"`
	CheckedInAt   *time.Time        `db:"checked_in_at"`
	CheckedInBy   *string           `db:"checked_in_by"`
}

// CountsTowardCapacity reports whether this reservation consumes seats.
// Pending reservations hold no seats until confirmed; cancelled never count.
func (r *Reservation) CountsTowardCapacity() bool {
	return r.Status == ReservationStatusConfirmed || r.Status == ReservationStatusCompleted
}

// IsTerminal reports whether the reservation reached a state that payment
// reconciliation must not override.
func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationStatusCancelled || r.Status == ReservationStatusCompleted
}
