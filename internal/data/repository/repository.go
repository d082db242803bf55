package repository

import (
	"retreat-booking/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	Retreat      RetreatRepository
	Reservation  ReservationRepository
	Ledger       LedgerRepository
	Guest        GuestRepository
	Loyalty      LoyaltyRepository
	Activity     ActivityRepository
	Audit        AuditRepository
	Availability *AvailabilityCache
}

func NewRepository(db database.PgxIface, rdb *redis.Client, log *zap.Logger) *Repository {
	return &Repository{
		Retreat:      NewRetreatRepository(db, log),
		Reservation:  NewReservationRepository(db, log),
		Ledger:       NewLedgerRepository(db, log),
		Guest:        NewGuestRepository(db, log),
		Loyalty:      NewLoyaltyRepository(db, log),
		Activity:     NewActivityRepository(db, log),
		Audit:        NewAuditRepository(db, log),
		Availability: NewAvailabilityCache(rdb, log),
	}
}
