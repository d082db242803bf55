package usecase

import (
	"context"
	"fmt"
	"time"

	"retreat-booking/internal/data/entity"
	"retreat-booking/internal/data/repository"
	"retreat-booking/internal/dto/request"
	"retreat-booking/internal/dto/response"
	"retreat-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LedgerService interface {
	// CreateEntry records a manual income or expense line. Booking-payment
	// mirror entries are written by the reservation service, not here.
	CreateEntry(ctx context.Context, req *request.CreateLedgerEntryRequest) (*response.LedgerEntryResponse, error)
	GetEntryByID(ctx context.Context, entryID string) (*response.LedgerEntryResponse, error)
	ListEntries(ctx context.Context, req *request.PaginatedRequest) ([]response.LedgerEntryResponse, error)
}

type ledgerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLedgerService(repo *repository.Repository, log *zap.Logger) LedgerService {
	return &ledgerService{
		repo: repo,
		log:  log.With(zap.String("service", "ledger")),
	}
}

func (s *ledgerService) CreateEntry(ctx context.Context, req *request.CreateLedgerEntryRequest) (*response.LedgerEntryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ledger entry validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var reservationID *uuid.UUID
	if req.ReservationID != nil {
		id, err := uuid.Parse(*req.ReservationID)
		if err != nil {
			return nil, fmt.Errorf("invalid reservation ID format %s: %w", *req.ReservationID, err)
		}

		reservation, err := s.repo.Reservation.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find reservation: %w", err)
		}
		if reservation == nil {
			return nil, fmt.Errorf("reservation %s: %w", *req.ReservationID, entity.ErrReservationNotFound)
		}

		reservationID = &id
	}

	now := time.Now()
	entry := &entity.LedgerEntry{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:          entity.LedgerType(req.Type),
		Category:      req.Category,
		Amount:        req.Amount,
		ReservationID: reservationID,
		Status:        entity.LedgerStatusProcessed,
		Description:   req.Description,
	}

	if err := s.repo.Ledger.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info("Ledger entry created",
		zap.String("entry_id", entry.ID.String()),
		zap.String("type", string(entry.Type)),
		zap.String("category", entry.Category),
		zap.Float64("amount", entry.Amount),
	)

	resp := response.LedgerEntryToResponse(entry)
	return &resp, nil
}

func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*response.LedgerEntryResponse, error) {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger entry ID format %s: %w", entryID, err)
	}

	entry, err := s.repo.Ledger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ledger entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("ledger entry %s: %w", entryID, entity.ErrLedgerEntryNotFound)
	}

	resp := response.LedgerEntryToResponse(entry)
	return &resp, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, req *request.PaginatedRequest) ([]response.LedgerEntryResponse, error) {
	entries, err := s.repo.Ledger.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list ledger entries", zap.Error(err))
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	responses := make([]response.LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = response.LedgerEntryToResponse(entry)
	}

	return responses, nil
}
