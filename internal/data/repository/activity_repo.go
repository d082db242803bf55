package repository

import (
	"context"
	"fmt"
	"time"

	"retreat-booking/internal/data/entity"
	"retreat-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	FindByRetreatID(ctx context.Context, retreatID uuid.UUID) ([]*entity.Activity, error)
	// FindInWindow returns activities whose time range intersects [from, to],
	// bounds inclusive. Input for conflict detection.
	FindInWindow(ctx context.Context, from, to time.Time) ([]*entity.Activity, error)
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

const activityColumns = `id, retreat_id, title, start_time, end_time, instructor, location, capacity, created_at, updated_at`

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var activity entity.Activity
	err := row.Scan(
		&activity.ID,
		&activity.RetreatID,
		&activity.Title,
		&activity.StartTime,
		&activity.EndTime,
		&activity.Instructor,
		&activity.Location,
		&activity.Capacity,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, retreat_id, title, start_time, end_time, instructor, location, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		activity.ID,
		activity.RetreatID,
		activity.Title,
		activity.StartTime,
		activity.EndTime,
		activity.Instructor,
		activity.Location,
		activity.Capacity,
		activity.CreatedAt,
		activity.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("title", activity.Title),
			zap.String("retreat_id", activity.RetreatID.String()),
		)
		return fmt.Errorf("create activity %s: %w", activity.Title, err)
	}

	return nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	activity, err := scanActivity(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return activity, nil
}

func (r *activityRepository) FindByRetreatID(ctx context.Context, retreatID uuid.UUID) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE retreat_id = $1
		ORDER BY start_time
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, retreatID)
	if err != nil {
		r.log.Error("Failed to find activities by retreat ID",
			zap.Error(err),
			zap.String("retreat_id", retreatID.String()),
		)
		return nil, fmt.Errorf("find activities for retreat %s: %w", retreatID.String(), err)
	}
	defer rows.Close()

	return collectActivities(rows, r.log)
}

func (r *activityRepository) FindInWindow(ctx context.Context, from, to time.Time) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE start_time <= $2 AND end_time >= $1
		ORDER BY start_time
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find activities in window",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find activities in window: %w", err)
	}
	defer rows.Close()

	return collectActivities(rows, r.log)
}

func collectActivities(rows pgx.Rows, log *zap.Logger) ([]*entity.Activity, error) {
	var activities []*entity.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
