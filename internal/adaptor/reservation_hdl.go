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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// ListReservations handles GET /api/reservations
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ListReservationsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
	}

	for key, dst := range map[string]**string{
		"status":     &req.Status,
		"retreat_id": &req.RetreatID,
		"guest_id":   &req.GuestID,
		"from":       &req.From,
		"to":         &req.To,
	} {
		if val := query.Get(key); val != "" {
			v := val
			*dst = &v
		}
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservations, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservationByID handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), reservationID)
	if err != nil {
		respondServiceError(w, h.log, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// UpdateReservation handles PUT /api/reservations/{id}
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), reservationID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// UpdatePayment handles PUT /api/reservations/{id}/payment
func (h *ReservationHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.UpdatePayment(r.Context(), reservationID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update payment")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CheckIn handles POST /api/reservations/{id}/check-in
func (h *ReservationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CheckIn(r.Context(), reservationID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "check in reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// CancelReservation handles PUT /api/reservations/{id}/cancel
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.CancelReservation(r.Context(), reservationID)
	if err != nil {
		respondServiceError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// DeleteReservation handles DELETE /api/reservations/{id}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.DeleteReservation(r.Context(), reservationID); err != nil {
		respondServiceError(w, h.log, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
