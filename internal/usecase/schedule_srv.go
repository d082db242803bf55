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

type ScheduleService interface {
	CreateActivity(ctx context.Context, req *request.CreateActivityRequest) (*response.ActivityResponse, error)
	GetRetreatSchedule(ctx context.Context, retreatID string) ([]response.ActivityResponse, error)
	// DetectScheduleConflicts loads every activity touching the window and
	// reports pairs that share an instructor or a location while their time
	// ranges overlap.
	DetectScheduleConflicts(ctx context.Context, from, to string) ([]response.ConflictReportResponse, error)
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) CreateActivity(ctx context.Context, req *request.CreateActivityRequest) (*response.ActivityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	retreatID, err := uuid.Parse(req.RetreatID)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID format %s: %w", req.RetreatID, err)
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start_time %s: %w", req.StartTime, err)
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end_time %s: %w", req.EndTime, err)
	}

	if !startTime.Before(endTime) {
		return nil, fmt.Errorf("validation failed: start_time must be before end_time")
	}

	retreat, err := s.repo.Retreat.FindByID(ctx, retreatID)
	if err != nil {
		return nil, fmt.Errorf("find retreat: %w", err)
	}
	if retreat == nil {
		return nil, fmt.Errorf("retreat %s: %w", req.RetreatID, entity.ErrRetreatNotFound)
	}

	// The retreat's dates are day-granular; an activity must fall inside
	// [start date 00:00, day after end date 00:00).
	retreatEnd := retreat.EndDate.AddDate(0, 0, 1)
	if startTime.Before(retreat.StartDate) || endTime.After(retreatEnd) {
		return nil, fmt.Errorf("activity %s: %w", req.Title, entity.ErrActivityOutsideRetreat)
	}

	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RetreatID:  retreatID,
		Title:      req.Title,
		StartTime:  startTime,
		EndTime:    endTime,
		Instructor: req.Instructor,
		Location:   req.Location,
		Capacity:   req.Capacity,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		return nil, err
	}

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("retreat_id", req.RetreatID),
		zap.String("title", req.Title),
	)

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *scheduleService) GetRetreatSchedule(ctx context.Context, retreatID string) ([]response.ActivityResponse, error) {
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

	activities, err := s.repo.Activity.FindByRetreatID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]response.ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = response.ActivityToResponse(activity)
	}

	return responses, nil
}

func (s *scheduleService) DetectScheduleConflicts(ctx context.Context, fromStr, toStr string) ([]response.ConflictReportResponse, error) {
	from, err := utils.ParseDate(fromStr)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %s: %w", fromStr, err)
	}

	to, err := utils.ParseDate(toStr)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %s: %w", toStr, err)
	}

	if to.Before(from) {
		return nil, fmt.Errorf("validation failed: to must not be before from")
	}

	// The window bound is day-granular; include the whole final day.
	activities, err := s.repo.Activity.FindInWindow(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	reports := DetectConflicts(activities)

	s.log.Info("Schedule conflict scan finished",
		zap.String("from", fromStr),
		zap.String("to", toStr),
		zap.Int("activities", len(activities)),
		zap.Int("conflicts", len(reports)),
	)

	responses := make([]response.ConflictReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = response.ConflictReportToResponse(report)
	}

	return responses, nil
}
