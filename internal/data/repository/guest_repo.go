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

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByEmail(ctx context.Context, email string) (*entity.Guest, error)
	// AddLoyaltyPoints increments the balance atomically in SQL; the guest's
	// balance is only ever mutated through this method.
	AddLoyaltyPoints(ctx context.Context, guestID uuid.UUID, points int) error
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

const guestColumns = `id, name, email, phone, loyalty_points, loyalty_tier, loyalty_program_active, created_at, updated_at`

func scanGuest(row pgx.Row) (*entity.Guest, error) {
	var guest entity.Guest
	err := row.Scan(
		&guest.ID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.LoyaltyPoints,
		&guest.LoyaltyTier,
		&guest.LoyaltyProgramActive,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, name, email, phone, loyalty_points, loyalty_tier, loyalty_program_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.LoyaltyPoints,
		guest.LoyaltyTier,
		guest.LoyaltyProgramActive,
		guest.CreatedAt,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("email", guest.Email),
		)
		return fmt.Errorf("create guest %s: %w", guest.Email, err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	guest, err := scanGuest(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("find guest by ID %s: %w", id.String(), err)
	}

	return guest, nil
}

func (r *guestRepository) FindByEmail(ctx context.Context, email string) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE email = $1`

	guest, err := scanGuest(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find guest by email %s: %w", email, err)
	}

	return guest, nil
}

func (r *guestRepository) AddLoyaltyPoints(ctx context.Context, guestID uuid.UUID, points int) error {
	query := `
		UPDATE guests
		SET loyalty_points = loyalty_points + $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, guestID, points)
	if err != nil {
		r.log.Error("Failed to add loyalty points",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
			zap.Int("points", points),
		)
		return fmt.Errorf("add %d loyalty points to guest %s: %w", points, guestID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s: %w", guestID.String(), entity.ErrGuestNotFound)
	}

	return nil
}
