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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// CreateActivity handles POST /api/activities
func (h *ScheduleHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req request.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "success", activity)
}

// GetRetreatSchedule handles GET /api/retreats/{id}/schedule
func (h *ScheduleHandler) GetRetreatSchedule(w http.ResponseWriter, r *http.Request) {
	retreatID := chi.URLParam(r, "id")
	if retreatID == "" {
		utils.ResponseBadRequest(w, "Retreat ID is required", nil)
		return
	}

	activities, err := h.service.GetRetreatSchedule(r.Context(), retreatID)
	if err != nil {
		respondServiceError(w, h.log, err, "get retreat schedule")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// DetectConflicts handles GET /api/schedule/conflicts?from=...&to=...
func (h *ScheduleHandler) DetectConflicts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "from and to query parameters are required", nil)
		return
	}

	conflicts, err := h.service.DetectScheduleConflicts(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, h.log, err, "detect schedule conflicts")
		return
	}

	utils.ResponseSuccess(w, "success", conflicts)
}
