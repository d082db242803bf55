package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled session within a retreat's offering window. It is
// bound to an instructor and a physical location, both of which are subject
// to double-booking detection.
type Activity struct {
	Base
	RetreatID  uuid.UUID `db:"retreat_id"`
	Title      string    `db:"title"`
	StartTime  time.Time `db:"start_time"`
	EndTime    time.Time `db:"end_time"`
	Instructor string    `db:"instructor"`
	Location   string    `db:"location"`
	Capacity   int       `db:"capacity"`
}
