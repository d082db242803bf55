package wire

import (
	"retreat-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGuest(r chi.Router, guestHandler *adaptor.GuestHandler) {
	r.Route("/api/guests", func(r chi.Router) {
		// POST /api/guests - Register a guest
		r.Post("/", guestHandler.CreateGuest)

		// GET /api/guests/{id} - Guest details
		r.Get("/{id}", guestHandler.GetGuestByID)

		// GET /api/guests/{id}/loyalty - Points balance and history
		r.Get("/{id}/loyalty", guestHandler.GetLoyaltyBalance)
	})
}
