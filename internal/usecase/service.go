package usecase

import (
	"retreat-booking/internal/data/repository"
	"retreat-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Retreat     RetreatService
	Reservation ReservationService
	Schedule    ScheduleService
	Guest       GuestService
	Ledger      LedgerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Retreat:     NewRetreatService(repo, log),
		Reservation: NewReservationService(repo, config, log),
		Schedule:    NewScheduleService(repo, log),
		Guest:       NewGuestService(repo, log),
		Ledger:      NewLedgerService(repo, log),
	}
}
