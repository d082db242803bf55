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

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/guests
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// GetGuestByID handles GET /api/guests/{id}
func (h *GuestHandler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	guest, err := h.service.GetGuestByID(r.Context(), guestID)
	if err != nil {
		respondServiceError(w, h.log, err, "get guest by ID")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// GetLoyaltyBalance handles GET /api/guests/{id}/loyalty
func (h *GuestHandler) GetLoyaltyBalance(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	balance, err := h.service.GetLoyaltyBalance(r.Context(), guestID)
	if err != nil {
		respondServiceError(w, h.log, err, "get loyalty balance")
		return
	}

	utils.ResponseSuccess(w, "success", balance)
}
