package wire

import (
	"retreat-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLedger(r chi.Router, ledgerHandler *adaptor.LedgerHandler) {
	r.Route("/api/ledger", func(r chi.Router) {
		// POST /api/ledger - Record a manual income or expense entry
		r.Post("/", ledgerHandler.CreateEntry)

		// GET /api/ledger - List ledger entries
		r.Get("/", ledgerHandler.ListEntries)

		// GET /api/ledger/{id} - Entry details
		r.Get("/{id}", ledgerHandler.GetEntryByID)
	})
}
