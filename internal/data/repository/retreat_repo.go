package repository

import (
	"context"
	"fmt"

	"retreat-booking/internal/data/entity"
	"retreat-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RetreatRepository interface {
	Create(ctx context.Context, retreat *entity.Retreat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Retreat, error)
	// FindByIDForUpdate takes a row lock on the retreat. Only meaningful
	// inside a transaction carried by ctx; used to serialize admission.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Retreat, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Retreat, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, retreat *entity.Retreat) error
}

type retreatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRetreatRepository(db database.PgxIface, log *zap.Logger) RetreatRepository {
	return &retreatRepository{
		db:  db,
		log: log.With(zap.String("repository", "retreat")),
	}
}

const retreatColumns = `id, name, description, capacity, start_date, end_date, instructor, location, price_per_guest, is_active, created_at, updated_at`

func scanRetreat(row pgx.Row) (*entity.Retreat, error) {
	var retreat entity.Retreat
	err := row.Scan(
		&retreat.ID,
		&retreat.Name,
		&retreat.Description,
		&retreat.Capacity,
		&retreat.StartDate,
		&retreat.EndDate,
		&retreat.Instructor,
		&retreat.Location,
		&retreat.PricePerGuest,
		&retreat.IsActive,
		&retreat.CreatedAt,
		&retreat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &retreat, nil
}

func (r *retreatRepository) Create(ctx context.Context, retreat *entity.Retreat) error {
	query := `
		INSERT INTO retreats (id, name, description, capacity, start_date, end_date, instructor, location, price_per_guest, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		retreat.ID,
		retreat.Name,
		retreat.Description,
		retreat.Capacity,
		retreat.StartDate,
		retreat.EndDate,
		retreat.Instructor,
		retreat.Location,
		retreat.PricePerGuest,
		retreat.IsActive,
		retreat.CreatedAt,
		retreat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create retreat",
			zap.Error(err),
			zap.String("name", retreat.Name),
		)
		return fmt.Errorf("create retreat %s: %w", retreat.Name, err)
	}

	return nil
}

func (r *retreatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Retreat, error) {
	query := `SELECT ` + retreatColumns + ` FROM retreats WHERE id = $1`

	retreat, err := scanRetreat(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find retreat by ID",
			zap.Error(err),
			zap.String("retreat_id", id.String()),
		)
		return nil, fmt.Errorf("find retreat by ID %s: %w", id.String(), err)
	}

	return retreat, nil
}

func (r *retreatRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Retreat, error) {
	query := `SELECT ` + retreatColumns + ` FROM retreats WHERE id = $1 FOR UPDATE`

	retreat, err := scanRetreat(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock retreat row",
			zap.Error(err),
			zap.String("retreat_id", id.String()),
		)
		return nil, fmt.Errorf("lock retreat %s: %w", id.String(), err)
	}

	return retreat, nil
}

func (r *retreatRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Retreat, error) {
	query := `
		SELECT ` + retreatColumns + `
		FROM retreats
		ORDER BY start_date
		LIMIT $1 OFFSET $2
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find retreats",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find retreats: %w", err)
	}
	defer rows.Close()

	var retreats []*entity.Retreat
	for rows.Next() {
		retreat, err := scanRetreat(rows)
		if err != nil {
			r.log.Error("Failed to scan retreat row", zap.Error(err))
			return nil, fmt.Errorf("scan retreat row: %w", err)
		}
		retreats = append(retreats, retreat)
	}

	return retreats, nil
}

func (r *retreatRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM retreats`

	var count int64
	err := database.QuerierFrom(ctx, r.db).QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count retreats", zap.Error(err))
		return 0, fmt.Errorf("count retreats: %w", err)
	}

	return count, nil
}

func (r *retreatRepository) Update(ctx context.Context, retreat *entity.Retreat) error {
	query := `
		UPDATE retreats
		SET name = $2, description = $3, capacity = $4, start_date = $5, end_date = $6,
		    instructor = $7, location = $8, price_per_guest = $9, is_active = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		retreat.ID,
		retreat.Name,
		retreat.Description,
		retreat.Capacity,
		retreat.StartDate,
		retreat.EndDate,
		retreat.Instructor,
		retreat.Location,
		retreat.PricePerGuest,
		retreat.IsActive,
		retreat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update retreat",
			zap.Error(err),
			zap.String("retreat_id", retreat.ID.String()),
		)
		return fmt.Errorf("update retreat %s: %w", retreat.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("retreat %s: %w", retreat.ID.String(), entity.ErrRetreatNotFound)
	}

	return nil
}
