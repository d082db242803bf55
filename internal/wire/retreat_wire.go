package wire

import (
	"retreat-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRetreat(r chi.Router, retreatHandler *adaptor.RetreatHandler, scheduleHandler *adaptor.ScheduleHandler) {
	r.Route("/api/retreats", func(r chi.Router) {
		// POST /api/retreats - Create a retreat
		r.Post("/", retreatHandler.CreateRetreat)

		// GET /api/retreats - List retreats
		r.Get("/", retreatHandler.ListRetreats)

		// GET /api/retreats/{id} - Retreat details
		r.Get("/{id}", retreatHandler.GetRetreatByID)

		// PUT /api/retreats/{id} - Update retreat metadata
		r.Put("/{id}", retreatHandler.UpdateRetreat)

		// GET /api/retreats/{id}/availability - Remaining capacity over a window
		r.Get("/{id}/availability", retreatHandler.GetAvailability)

		// GET /api/retreats/{id}/schedule - Activities of a retreat
		r.Get("/{id}/schedule", scheduleHandler.GetRetreatSchedule)
	})
}
