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

type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)
	// FindBookingEntry returns the single income/retreat_booking entry that
	// mirrors a reservation's paid amount, or nil when none exists yet.
	FindBookingEntry(ctx context.Context, reservationID uuid.UUID) (*entity.LedgerEntry, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.LedgerEntry, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.LedgerEntry, error)
	UpdateAmountAndStatus(ctx context.Context, entryID uuid.UUID, amount float64, status entity.LedgerStatus) error
	ExistsByReservationID(ctx context.Context, reservationID uuid.UUID) (bool, error)
}

type ledgerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLedgerRepository(db database.PgxIface, log *zap.Logger) LedgerRepository {
	return &ledgerRepository{
		db:  db,
		log: log.With(zap.String("repository", "ledger")),
	}
}

const ledgerColumns = `id, type, category, amount, reservation_id, status, description, created_at, updated_at`

func scanLedgerEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var entry entity.LedgerEntry
	err := row.Scan(
		&entry.ID,
		&entry.Type,
		&entry.Category,
		&entry.Amount,
		&entry.ReservationID,
		&entry.Status,
		&entry.Description,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, type, category, amount, reservation_id, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		entry.ID,
		entry.Type,
		entry.Category,
		entry.Amount,
		entry.ReservationID,
		entry.Status,
		entry.Description,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ledger entry",
			zap.Error(err),
			zap.String("category", entry.Category),
			zap.Float64("amount", entry.Amount),
		)
		return fmt.Errorf("create ledger entry: %w", err)
	}

	return nil
}

func (r *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`

	entry, err := scanLedgerEntry(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ledger entry by ID",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("find ledger entry by ID %s: %w", id.String(), err)
	}

	return entry, nil
}

func (r *ledgerRepository) FindBookingEntry(ctx context.Context, reservationID uuid.UUID) (*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE reservation_id = $1 AND type = 'income' AND category = $2
		LIMIT 1
	`

	entry, err := scanLedgerEntry(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, reservationID, entity.CategoryRetreatBooking))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking ledger entry",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find booking ledger entry for reservation %s: %w", reservationID.String(), err)
	}

	return entry, nil
}

func (r *ledgerRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find ledger entries by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find ledger entries for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			r.log.Error("Failed to scan ledger entry row", zap.Error(err))
			return nil, fmt.Errorf("scan ledger entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *ledgerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find ledger entries", zap.Error(err))
		return nil, fmt.Errorf("find ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			r.log.Error("Failed to scan ledger entry row", zap.Error(err))
			return nil, fmt.Errorf("scan ledger entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *ledgerRepository) UpdateAmountAndStatus(ctx context.Context, entryID uuid.UUID, amount float64, status entity.LedgerStatus) error {
	query := `
		UPDATE ledger_entries
		SET amount = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, entryID, amount, status)
	if err != nil {
		r.log.Error("Failed to update ledger entry",
			zap.Error(err),
			zap.String("entry_id", entryID.String()),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("update ledger entry %s: %w", entryID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %s not found", entryID.String())
	}

	return nil
}

func (r *ledgerRepository) ExistsByReservationID(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE reservation_id = $1)`

	var exists bool
	err := database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, reservationID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check ledger entries existence",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return false, fmt.Errorf("check ledger entries for reservation %s: %w", reservationID.String(), err)
	}

	return exists, nil
}
