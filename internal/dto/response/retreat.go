package response

import (
	"time"

	"retreat-booking/internal/data/entity"
)

type RetreatResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Capacity      int       `json:"capacity"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Instructor    string    `json:"instructor"`
	Location      string    `json:"location"`
	PricePerGuest float64   `json:"price_per_guest"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	RetreatID string `json:"retreat_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Capacity  int    `json:"capacity"`
	Committed int    `json:"committed"`
	Remaining int    `json:"remaining"`
}

func RetreatToResponse(retreat *entity.Retreat) RetreatResponse {
	return RetreatResponse{
		ID:            retreat.ID.String(),
		Name:          retreat.Name,
		Description:   retreat.Description,
		Capacity:      retreat.Capacity,
		StartDate:     retreat.StartDate.Format("2006-01-02"),
		EndDate:       retreat.EndDate.Format("2006-01-02"),
		Instructor:    retreat.Instructor,
		Location:      retreat.Location,
		PricePerGuest: retreat.PricePerGuest,
		IsActive:      retreat.IsActive,
		CreatedAt:     retreat.CreatedAt,
	}
}
