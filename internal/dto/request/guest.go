package request

type CreateGuestRequest struct {
	Name                 string  `json:"name" validate:"required,min=2,max=120"`
	Email                string  `json:"email" validate:"required,email"`
	Phone                *string `json:"phone,omitempty"`
	LoyaltyProgramActive bool    `json:"loyalty_program_active"`
}
