package entity

import "github.com/google/uuid"

type LedgerType string

const (
	LedgerTypeIncome  LedgerType = "income"
	LedgerTypeExpense LedgerType = "expense"
)

type LedgerStatus string

const (
	LedgerStatusPending   LedgerStatus = "pending"
	LedgerStatusProcessed LedgerStatus = "processed"
)

// CategoryRetreatBooking marks the single income entry that mirrors a
// reservation's paid amount. Other categories are free-form.
const CategoryRetreatBooking = "retreat_booking"

type LedgerEntry struct {
	Base
	Type          LedgerType   `db:"type"`
	Category      string       `db:"category"`
	Amount        float64      `db:"amount"`
	ReservationID *uuid.UUID   `db:"reservation_id"`
	Status        LedgerStatus `db:"status"`
	Description   *string      `db:"description"`
}
