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

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error)
	GetLoyaltyBalance(ctx context.Context, guestID string) (*response.LoyaltyBalanceResponse, error)
}

type guestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGuestService(repo *repository.Repository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Guest.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check guest email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("guest %s: %w", req.Email, entity.ErrGuestEmailTaken)
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		LoyaltyPoints:        0,
		LoyaltyTier:          entity.TierBronze,
		LoyaltyProgramActive: req.LoyaltyProgramActive,
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		return nil, err
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("email", guest.Email),
	)

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find guest: %w", err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s: %w", guestID, entity.ErrGuestNotFound)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetLoyaltyBalance(ctx context.Context, guestID string) (*response.LoyaltyBalanceResponse, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find guest: %w", err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s: %w", guestID, entity.ErrGuestNotFound)
	}

	txns, err := s.repo.Loyalty.FindByGuestID(ctx, id)
	if err != nil {
		return nil, err
	}

	txnResponses := make([]response.LoyaltyTransactionResponse, len(txns))
	for i, txn := range txns {
		txnResponses[i] = response.LoyaltyTransactionToResponse(txn)
	}

	return &response.LoyaltyBalanceResponse{
		GuestID:      guest.ID.String(),
		Points:       guest.LoyaltyPoints,
		Tier:         guest.LoyaltyTier,
		Transactions: txnResponses,
	}, nil
}
