package entity

import "github.com/google/uuid"

type LoyaltyTransactionType string

const (
	LoyaltyEarned   LoyaltyTransactionType = "earned"
	LoyaltyRedeemed LoyaltyTransactionType = "redeemed"
)

type LoyaltyTransaction struct {
	BaseSimple
	GuestID       uuid.UUID              `db:"guest_id"`
	ReservationID *uuid.UUID             `db:"reservation_id"`
	Type          LoyaltyTransactionType `db:"type"`
	Points        int                    `db:"points"`
	Description   string                 `db:"description"`
}
