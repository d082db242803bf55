package repository

import (
	"context"
	"fmt"

	"retreat-booking/internal/data/entity"
	"retreat-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LoyaltyRepository interface {
	Create(ctx context.Context, txn *entity.LoyaltyTransaction) error
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.LoyaltyTransaction, error)
}

type loyaltyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLoyaltyRepository(db database.PgxIface, log *zap.Logger) LoyaltyRepository {
	return &loyaltyRepository{
		db:  db,
		log: log.With(zap.String("repository", "loyalty")),
	}
}

func (r *loyaltyRepository) Create(ctx context.Context, txn *entity.LoyaltyTransaction) error {
	query := `
		INSERT INTO loyalty_transactions (id, guest_id, reservation_id, type, points, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		txn.ID,
		txn.GuestID,
		txn.ReservationID,
		txn.Type,
		txn.Points,
		txn.Description,
		txn.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create loyalty transaction",
			zap.Error(err),
			zap.String("guest_id", txn.GuestID.String()),
			zap.Int("points", txn.Points),
		)
		return fmt.Errorf("create loyalty transaction for guest %s: %w", txn.GuestID.String(), err)
	}

	return nil
}

func (r *loyaltyRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*entity.LoyaltyTransaction, error) {
	query := `
		SELECT id, guest_id, reservation_id, type, points, description, created_at
		FROM loyalty_transactions
		WHERE guest_id = $1
		ORDER BY created_at DESC
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, guestID)
	if err != nil {
		r.log.Error("Failed to find loyalty transactions",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return nil, fmt.Errorf("find loyalty transactions for guest %s: %w", guestID.String(), err)
	}
	defer rows.Close()

	var txns []*entity.LoyaltyTransaction
	for rows.Next() {
		var txn entity.LoyaltyTransaction
		err := rows.Scan(
			&txn.ID,
			&txn.GuestID,
			&txn.ReservationID,
			&txn.Type,
			&txn.Points,
			&txn.Description,
			&txn.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan loyalty transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan loyalty transaction row: %w", err)
		}
		txns = append(txns, &txn)
	}

	return txns, nil
}
