package response

import (
	"time"

	"retreat-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID            string                   `json:"id"`
	Code          string                   `json:"code"`
	RetreatID     string                   `json:"retreat_id"`
	GuestID       string                   `json:"guest_id"`
	RetreatName   string                   `json:"retreat_name,omitempty"`
	GuestName     string                   `json:"guest_name,omitempty"`
	CheckIn       string                   `json:"check_in"`
	CheckOut      string                   `json:"check_out"`
	PartySize     int                      `json:"party_size"`
	Status        entity.ReservationStatus `json:"status"`
	TotalAmount   float64                  `json:"total_amount"`
	PaidAmount    float64                  `json:"paid_amount"`
	PaymentStatus entity.PaymentStatus     `json:"payment_status"`
	PaymentMethod *string                  `json:"payment_method,omitempty"`
	CheckedInAt   *time.Time               `json:"checked_in_at,omitempty"`
	CheckedInBy   *string                  `json:"checked_in_by,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	LedgerEntries []LedgerEntryResponse `json:"ledger_entries,omitempty"`
}

// PaymentUpdateResponse reports the reconciliation outcome. Warning carries
// a ledger-write failure that did not fail the payment update itself.
type PaymentUpdateResponse struct {
	Reservation       ReservationResponse `json:"reservation"`
	PaymentDifference float64             `json:"payment_difference"`
	Warning           string              `json:"warning,omitempty"`
}

func ReservationToResponse(res *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            res.ID.String(),
		Code:          res.Code,
		RetreatID:     res.RetreatID.String(),
		GuestID:       res.GuestID.String(),
		CheckIn:       res.CheckIn.Format("2006-01-02"),
		CheckOut:      res.CheckOut.Format("2006-01-02"),
		PartySize:     res.PartySize,
		Status:        res.Status,
		TotalAmount:   res.TotalAmount,
		PaidAmount:    res.PaidAmount,
		PaymentStatus: res.PaymentStatus,
		PaymentMethod: res.PaymentMethod,
		CheckedInAt:   res.CheckedInAt,
		CheckedInBy:   res.CheckedInBy,
		CreatedAt:     res.CreatedAt,
	}
}
