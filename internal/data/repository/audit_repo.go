package repository

import (
	"context"
	"fmt"

	"retreat-booking/internal/data/entity"
	"retreat-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuditRepository interface {
	Create(ctx context.Context, record *entity.AuditRecord) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.AuditRecord, error)
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) Create(ctx context.Context, record *entity.AuditRecord) error {
	query := `
		INSERT INTO audit_records (id, action, reservation_id, actor, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		record.ID,
		record.Action,
		record.ReservationID,
		record.Actor,
		record.Detail,
		record.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create audit record",
			zap.Error(err),
			zap.String("action", record.Action),
		)
		return fmt.Errorf("create audit record %s: %w", record.Action, err)
	}

	return nil
}

func (r *auditRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.AuditRecord, error) {
	query := `
		SELECT id, action, reservation_id, actor, detail, created_at
		FROM audit_records
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find audit records",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find audit records for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var records []*entity.AuditRecord
	for rows.Next() {
		var record entity.AuditRecord
		err := rows.Scan(
			&record.ID,
			&record.Action,
			&record.ReservationID,
			&record.Actor,
			&record.Detail,
			&record.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan audit record row", zap.Error(err))
			return nil, fmt.Errorf("scan audit record row: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}
