package request

type CreateLedgerEntryRequest struct {
	Type          string  `json:"type" validate:"required,oneof=income expense"`
	Category      string  `json:"category" validate:"required,min=2,max=60"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	ReservationID *string `json:"reservation_id,omitempty" validate:"omitempty,uuid4"`
	Description   *string `json:"description,omitempty"`
}
