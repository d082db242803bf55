package entity

import "time"

type Retreat struct {
	Base
	Name          string    `db:"name"`
	Description   *string   `db:"description"`
	Capacity      int       `db:"capacity"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	Instructor    string    `db:"instructor"`
	Location      string    `db:"location"`
	PricePerGuest float64   `db:"price_per_guest"`
	IsActive      bool      `db:"is_active"`
}
