package response

import (
	"time"

	"retreat-booking/internal/data/entity"
)

type GuestResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Phone                *string            `json:"phone,omitempty"`
	LoyaltyPoints        int                `json:"loyalty_points"`
	LoyaltyTier          entity.LoyaltyTier `json:"loyalty_tier"`
	LoyaltyProgramActive bool               `json:"loyalty_program_active"`
	CreatedAt            time.Time          `json:"created_at"`
}

type LoyaltyTransactionResponse struct {
	ID            string                        `json:"id"`
	ReservationID *string                       `json:"reservation_id,omitempty"`
	Type          entity.LoyaltyTransactionType `json:"type"`
	Points        int                           `json:"points"`
	Description   string                        `json:"description"`
	CreatedAt     time.Time                     `json:"created_at"`
}

type LoyaltyBalanceResponse struct {
	GuestID      string                       `json:"guest_id"`
	Points       int                          `json:"points"`
	Tier         entity.LoyaltyTier           `json:"tier"`
	Transactions []LoyaltyTransactionResponse `json:"transactions"`
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:                   guest.ID.String(),
		Name:                 guest.Name,
		Email:                guest.Email,
		Phone:                guest.Phone,
		LoyaltyPoints:        guest.LoyaltyPoints,
		LoyaltyTier:          guest.LoyaltyTier,
		LoyaltyProgramActive: guest.LoyaltyProgramActive,
		CreatedAt:            guest.CreatedAt,
	}
}

func LoyaltyTransactionToResponse(txn *entity.LoyaltyTransaction) LoyaltyTransactionResponse {
	resp := LoyaltyTransactionResponse{
		ID:          txn.ID.String(),
		Type:        txn.Type,
		Points:      txn.Points,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
	if txn.ReservationID != nil {
		id := txn.ReservationID.String()
		resp.ReservationID = &id
	}
	return resp
}
