package request

// UpdateRetreatRequest patches retreat metadata; nil fields are left
// unchanged. Capacity changes apply to future admissions only, existing
// reservations are not re-validated.
type UpdateRetreatRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	Description   *string  `json:"description,omitempty"`
	Capacity      *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Instructor    *string  `json:"instructor,omitempty"`
	Location      *string  `json:"location,omitempty"`
	PricePerGuest *float64 `json:"price_per_guest,omitempty" validate:"omitempty,gt=0"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type CreateRetreatRequest struct {
	Name          string  `json:"name" validate:"required,min=3,max=120"`
	Description   *string `json:"description,omitempty"`
	Capacity      int     `json:"capacity" validate:"required,min=1"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Instructor    string  `json:"instructor" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	PricePerGuest float64 `json:"price_per_guest" validate:"required,gt=0"`
}
