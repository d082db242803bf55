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

type RetreatHandler struct {
	service usecase.RetreatService
	log     *zap.Logger
}

func NewRetreatHandler(service usecase.RetreatService, log *zap.Logger) *RetreatHandler {
	return &RetreatHandler{
		service: service,
		log:     log.With(zap.String("handler", "retreat")),
	}
}

// CreateRetreat handles POST /api/retreats
func (h *RetreatHandler) CreateRetreat(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRetreatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	retreat, err := h.service.CreateRetreat(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create retreat")
		return
	}

	utils.ResponseCreated(w, "success", retreat)
}

// ListRetreats handles GET /api/retreats
func (h *RetreatHandler) ListRetreats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	retreats, err := h.service.ListRetreats(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list retreats")
		return
	}

	utils.ResponseSuccess(w, "success", retreats)
}

// GetRetreatByID handles GET /api/retreats/{id}
func (h *RetreatHandler) GetRetreatByID(w http.ResponseWriter, r *http.Request) {
	retreatID := chi.URLParam(r, "id")
	if retreatID == "" {
		utils.ResponseBadRequest(w, "Retreat ID is required", nil)
		return
	}

	retreat, err := h.service.GetRetreatByID(r.Context(), retreatID)
	if err != nil {
		respondServiceError(w, h.log, err, "get retreat by ID")
		return
	}

	utils.ResponseSuccess(w, "success", retreat)
}

// UpdateRetreat handles PUT /api/retreats/{id}
func (h *RetreatHandler) UpdateRetreat(w http.ResponseWriter, r *http.Request) {
	retreatID := chi.URLParam(r, "id")
	if retreatID == "" {
		utils.ResponseBadRequest(w, "Retreat ID is required", nil)
		return
	}

	var req request.UpdateRetreatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	retreat, err := h.service.UpdateRetreat(r.Context(), retreatID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update retreat")
		return
	}

	utils.ResponseSuccess(w, "success", retreat)
}

// GetAvailability handles GET /api/retreats/{id}/availability?check_in=...&check_out=...
func (h *RetreatHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	retreatID := chi.URLParam(r, "id")
	if retreatID == "" {
		utils.ResponseBadRequest(w, "Retreat ID is required", nil)
		return
	}

	query := r.URL.Query()
	checkIn := query.Get("check_in")
	checkOut := query.Get("check_out")
	if checkIn == "" || checkOut == "" {
		utils.ResponseBadRequest(w, "check_in and check_out query parameters are required", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), retreatID, checkIn, checkOut)
	if err != nil {
		respondServiceError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
