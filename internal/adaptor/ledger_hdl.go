package adaptor

import (
	"encoding/json"
	"net/http"

	"retreat-booking/internal/dto/request"
	"retreat-booking/internal/usecase"
	"retreat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	service usecase.LedgerService
	log     *zap.Logger
}

func NewLedgerHandler(service usecase.LedgerService, log *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: service,
		log:     log.With(zap.String("handler", "ledger")),
	}
}

// CreateEntry handles POST /api/ledger
func (h *LedgerHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLedgerEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	entry, err := h.service.CreateEntry(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create ledger entry")
		return
	}

	utils.ResponseCreated(w, "success", entry)
}

// ListEntries handles GET /api/ledger
func (h *LedgerHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	entries, err := h.service.ListEntries(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list ledger entries")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// GetEntryByID handles GET /api/ledger/{id}
func (h *LedgerHandler) GetEntryByID(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		utils.ResponseBadRequest(w, "Ledger entry ID is required", nil)
		return
	}

	entry, err := h.service.GetEntryByID(r.Context(), entryID)
	if err != nil {
		respondServiceError(w, h.log, err, "get ledger entry by ID")
		return
	}

	utils.ResponseSuccess(w, "success", entry)
}
