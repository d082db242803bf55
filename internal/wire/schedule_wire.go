package wire

import (
	"retreat-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSchedule(r chi.Router, scheduleHandler *adaptor.ScheduleHandler) {
	// POST /api/activities - Add an activity to a retreat's schedule
	r.Post("/api/activities", scheduleHandler.CreateActivity)

	// GET /api/schedule/conflicts - Report instructor/location double-bookings
	r.Get("/api/schedule/conflicts", scheduleHandler.DetectConflicts)
}
