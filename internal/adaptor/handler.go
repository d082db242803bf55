package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"retreat-booking/internal/data/entity"
	"retreat-booking/internal/usecase"
	"retreat-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Retreat     *RetreatHandler
	Reservation *ReservationHandler
	Schedule    *ScheduleHandler
	Guest       *GuestHandler
	Ledger      *LedgerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Retreat:     NewRetreatHandler(service.Retreat, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Schedule:    NewScheduleHandler(service.Schedule, log),
		Guest:       NewGuestHandler(service.Guest, log),
		Ledger:      NewLedgerHandler(service.Ledger, log),
	}
}

// respondServiceError maps domain errors to HTTP statuses. Typed errors are
// matched with errors.Is; input parsing failures fall back to message
// inspection because they carry wrapped stdlib errors.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrRetreatNotFound),
		errors.Is(err, entity.ErrReservationNotFound),
		errors.Is(err, entity.ErrGuestNotFound),
		errors.Is(err, entity.ErrActivityNotFound),
		errors.Is(err, entity.ErrLedgerEntryNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrCapacityExceeded),
		errors.Is(err, entity.ErrAlreadyCheckedIn),
		errors.Is(err, entity.ErrHasLedgerEntries),
		errors.Is(err, entity.ErrReservationClosed),
		errors.Is(err, entity.ErrGuestEmailTaken):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrActivityOutsideRetreat):
		log.Warn(operation+" failed - outside retreat dates",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
