package response

import (
	"time"

	"retreat-booking/internal/data/entity"
)

type LedgerEntryResponse struct {
	ID            string              `json:"id"`
	Type          entity.LedgerType   `json:"type"`
	Category      string              `json:"category"`
	Amount        float64             `json:"amount"`
	ReservationID *string             `json:"reservation_id,omitempty"`
	Status        entity.LedgerStatus `json:"status"`
	Description   *string             `json:"description,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func LedgerEntryToResponse(entry *entity.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		ID:          entry.ID.String(),
		Type:        entry.Type,
		Category:    entry.Category,
		Amount:      entry.Amount,
		Status:      entry.Status,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
	if entry.ReservationID != nil {
		id := entry.ReservationID.String()
		resp.ReservationID = &id
	}
	return resp
}
