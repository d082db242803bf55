package request

type CreateReservationRequest struct {
	RetreatID string `json:"retreat_id" validate:"required,uuid4"`
	GuestID   string `json:"guest_id" validate:"required,uuid4"`
	CheckIn   string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut  string `json:"check_out" validate:"required,datetime=2006-01-02"`
	PartySize int    `json:"party_size" validate:"required,min=1"`
	// Confirm creates the reservation directly in confirmed state, claiming
	// seats immediately.
	Confirm bool `json:"confirm"`
}

// UpdateReservationRequest patches the stay; nil fields are left unchanged.
// Any change to dates or party size re-runs capacity admission.
type UpdateReservationRequest struct {
	CheckIn   *string `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut  *string `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PartySize *int    `json:"party_size,omitempty" validate:"omitempty,min=1"`
}

type UpdatePaymentRequest struct {
	PaidAmount float64 `json:"paid_amount" validate:"min=0"`
	Method     *string `json:"method,omitempty"`
	// Status overrides the derived payment status when provided.
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending partial paid"`
}

// ListReservationsRequest carries the query-string filters; every field is
// optional and the date window only applies when both ends are present.
type ListReservationsRequest struct {
	PaginatedRequest
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	RetreatID *string `json:"retreat_id,omitempty"`
	GuestID   *string `json:"guest_id,omitempty"`
	From      *string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To        *string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type CheckInRequest struct {
	StaffMember string  `json:"staff_member" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
}
