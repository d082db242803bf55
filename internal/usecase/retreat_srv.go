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

type RetreatService interface {
	CreateRetreat(ctx context.Context, req *request.CreateRetreatRequest) (*response.RetreatResponse, error)
	GetRetreatByID(ctx context.Context, retreatID string) (*response.RetreatResponse, error)
	ListRetreats(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RetreatResponse], error)
	UpdateRetreat(ctx context.Context, retreatID string, req *request.UpdateRetreatRequest) (*response.RetreatResponse, error)
	// GetAvailability reports committed and remaining capacity over a window.
	// The figure is advisory; admission recomputes under a row lock.
	GetAvailability(ctx context.Context, retreatID, checkIn, checkOut string) (*response.AvailabilityResponse, error)
}

type retreatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRetreatService(repo *repository.Repository, log *zap.Logger) RetreatService {
	return &retreatService{
		repo: repo,
		log:  log.With(zap.String("service", "retreat")),
	}
}

func (s *retreatService) CreateRetreat(ctx context.Context, req *request.CreateRetreatRequest) (*response.RetreatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create retreat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %s: %w", req.StartDate, err)
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date %s: %w", req.EndDate, err)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("validation failed: end_date must not be before start_date")
	}

	now := time.Now()
	retreat := &entity.Retreat{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		StartDate:     startDate,
		EndDate:       endDate,
		Instructor:    req.Instructor,
		Location:      req.Location,
		PricePerGuest: req.PricePerGuest,
		IsActive:      true,
	}

	if err := s.repo.Retreat.Create(ctx, retreat); err != nil {
		return nil, err
	}

	s.log.Info("Retreat created",
		zap.String("retreat_id", retreat.ID.String()),
		zap.String("name", retreat.Name),
		zap.Int("capacity", retreat.Capacity),
	)

	resp := response.RetreatToResponse(retreat)
	return &resp, nil
}

func (s *retreatService) GetRetreatByID(ctx context.Context, retreatID string) (*response.RetreatResponse, error) {
	id, err := uuid.Parse(retreatID)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID format %s: %w", retreatID, err)
	}

	retreat, err := s.repo.Retreat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find retreat: %w", err)
	}
	if retreat == nil {
		return nil, fmt.Errorf("retreat %s: %w", retreatID, entity.ErrRetreatNotFound)
	}

	resp := response.RetreatToResponse(retreat)
	return &resp, nil
}

func (s *retreatService) ListRetreats(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RetreatResponse], error) {
	retreats, err := s.repo.Retreat.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list retreats", zap.Error(err))
		return nil, fmt.Errorf("list retreats: %w", err)
	}

	total, err := s.repo.Retreat.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count retreats", zap.Error(err))
		return nil, fmt.Errorf("count retreats: %w", err)
	}

	retreatResponses := make([]response.RetreatResponse, len(retreats))
	for i, retreat := range retreats {
		retreatResponses[i] = response.RetreatToResponse(retreat)
	}

	return response.NewPaginatedResponse(retreatResponses, req.Page, req.PerPage, total), nil
}

func (s *retreatService) UpdateRetreat(ctx context.Context, retreatID string, req *request.UpdateRetreatRequest) (*response.RetreatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update retreat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(retreatID)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID format %s: %w", retreatID, err)
	}

	retreat, err := s.repo.Retreat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find retreat: %w", err)
	}
	if retreat == nil {
		return nil, fmt.Errorf("retreat %s: %w", retreatID, entity.ErrRetreatNotFound)
	}

	if req.Name != nil {
		retreat.Name = *req.Name
	}
	if req.Description != nil {
		retreat.Description = req.Description
	}
	if req.Capacity != nil {
		retreat.Capacity = *req.Capacity
	}
	if req.Instructor != nil {
		retreat.Instructor = *req.Instructor
	}
	if req.Location != nil {
		retreat.Location = *req.Location
	}
	if req.PricePerGuest != nil {
		retreat.PricePerGuest = *req.PricePerGuest
	}
	if req.IsActive != nil {
		retreat.IsActive = *req.IsActive
	}
	retreat.UpdatedAt = time.Now()

	if err := s.repo.Retreat.Update(ctx, retreat); err != nil {
		return nil, err
	}

	// A capacity change alters remaining figures for every cached window.
	if req.Capacity != nil {
		s.repo.Availability.Invalidate(ctx, id)
	}

	s.log.Info("Retreat updated",
		zap.String("retreat_id", retreatID),
		zap.Int("capacity", retreat.Capacity),
	)

	resp := response.RetreatToResponse(retreat)
	return &resp, nil
}

func (s *retreatService) GetAvailability(ctx context.Context, retreatID, checkInStr, checkOutStr string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(retreatID)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID format %s: %w", retreatID, err)
	}

	checkIn, checkOut, err := parseStay(checkInStr, checkOutStr)
	if err != nil {
		return nil, err
	}

	retreat, err := s.repo.Retreat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find retreat: %w", err)
	}
	if retreat == nil {
		return nil, fmt.Errorf("retreat %s: %w", retreatID, entity.ErrRetreatNotFound)
	}

	if remaining, ok := s.repo.Availability.Get(ctx, id, checkIn, checkOut); ok {
		return &response.AvailabilityResponse{
			RetreatID: retreatID,
			CheckIn:   checkIn.Format(utils.DateLayout),
			CheckOut:  checkOut.Format(utils.DateLayout),
			Capacity:  retreat.Capacity,
			Committed: retreat.Capacity - remaining,
			Remaining: remaining,
		}, nil
	}

	existing, err := s.repo.Reservation.FindOverlapping(ctx, id, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("load overlapping reservations: %w", err)
	}

	committed := committedPartySize(checkIn, checkOut, existing, uuid.Nil)
	remaining := retreat.Capacity - committed
	if remaining < 0 {
		remaining = 0
	}

	s.repo.Availability.Set(ctx, id, checkIn, checkOut, remaining)

	return &response.AvailabilityResponse{
		RetreatID: retreatID,
		CheckIn:   checkIn.Format(utils.DateLayout),
		CheckOut:  checkOut.Format(utils.DateLayout),
		Capacity:  retreat.Capacity,
		Committed: committed,
		Remaining: remaining,
	}, nil
}
