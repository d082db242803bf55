package wire

import (
	"retreat-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	r.Route("/api/reservations", func(r chi.Router) {
		// POST /api/reservations - Create a reservation (capacity admission)
		r.Post("/", reservationHandler.CreateReservation)

		// GET /api/reservations - List reservations with filters
		r.Get("/", reservationHandler.ListReservations)

		// GET /api/reservations/{id} - Reservation details with ledger entries
		r.Get("/{id}", reservationHandler.GetReservationByID)

		// PUT /api/reservations/{id} - Change dates or party size (re-admission)
		r.Put("/{id}", reservationHandler.UpdateReservation)

		// PUT /api/reservations/{id}/payment - Record a payment and reconcile
		r.Put("/{id}/payment", reservationHandler.UpdatePayment)

		// POST /api/reservations/{id}/check-in - Check in and accrue loyalty
		r.Post("/{id}/check-in", reservationHandler.CheckIn)

		// PUT /api/reservations/{id}/cancel - Cancel, releasing seats
		r.Put("/{id}/cancel", reservationHandler.CancelReservation)

		// DELETE /api/reservations/{id} - Delete when no ledger entries depend on it
		r.Delete("/{id}", reservationHandler.DeleteReservation)
	})
}
