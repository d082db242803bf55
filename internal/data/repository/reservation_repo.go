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

type ReservationRepository interface {
	// WithTx runs fn inside a single transaction; repository calls made with
	// the callback context join it. Admission (lock + aggregate + insert)
	// depends on this.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context, limit, offset int, filters ...ReservationFilter) ([]*entity.Reservation, error)
	Count(ctx context.Context, filters ...ReservationFilter) (int64, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindOverlapping(ctx context.Context, retreatID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Reservation, error)
	UpdatePaymentFields(ctx context.Context, reservation *entity.Reservation) error
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error
	SetCheckedIn(ctx context.Context, reservation *entity.Reservation) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, code, retreat_id, guest_id, check_in, check_out, party_size, status, total_amount, paid_amount, payment_status, payment_method, checked_in_at, checked_in_by, created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.Code,
		&res.RetreatID,
		&res.GuestID,
		&res.CheckIn,
		&res.CheckOut,
		&res.PartySize,
		&res.Status,
		&res.TotalAmount,
		&res.PaidAmount,
		&res.PaymentStatus,
		&res.PaymentMethod,
		&res.CheckedInAt,
		&res.CheckedInBy,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTx(ctx, r.db, fn)
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, code, retreat_id, guest_id, check_in, check_out, party_size, status, total_amount, paid_amount, payment_status, payment_method, checked_in_at, checked_in_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		reservation.ID,
		reservation.Code,
		reservation.RetreatID,
		reservation.GuestID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.PartySize,
		reservation.Status,
		reservation.TotalAmount,
		reservation.PaidAmount,
		reservation.PaymentStatus,
		reservation.PaymentMethod,
		reservation.CheckedInAt,
		reservation.CheckedInBy,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("code", reservation.Code),
			zap.String("retreat_id", reservation.RetreatID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.Code, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return res, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int, filters ...ReservationFilter) ([]*entity.Reservation, error) {
	where, args := buildReservationWhere(filters)
	query := fmt.Sprintf(`
		SELECT %s
		FROM reservations
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, reservationColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reservations",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

func (r *reservationRepository) Count(ctx context.Context, filters ...ReservationFilter) (int64, error) {
	where, args := buildReservationWhere(filters)
	query := `SELECT COUNT(*) FROM reservations ` + where

	var count int64
	err := database.QuerierFrom(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return count, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET check_in = $2, check_out = $3, party_size = $4, status = $5,
		    total_amount = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		reservation.ID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.PartySize,
		reservation.Status,
		reservation.TotalAmount,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", reservation.ID.String(), entity.ErrReservationNotFound)
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id.String(), entity.ErrReservationNotFound)
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

// FindOverlapping returns seat-holding reservations of a retreat whose stay
// intersects [checkIn, checkOut], bounds inclusive. Pending and cancelled
// reservations never hold seats, so the status filter lives in the query.
func (r *reservationRepository) FindOverlapping(ctx context.Context, retreatID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE retreat_id = $1
		  AND status IN ('confirmed', 'completed')
		  AND check_in <= $3
		  AND check_out >= $2
		ORDER BY check_in
	`

	rows, err := database.QuerierFrom(ctx, r.db).Query(ctx, query, retreatID, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find overlapping reservations",
			zap.Error(err),
			zap.String("retreat_id", retreatID.String()),
		)
		return nil, fmt.Errorf("find overlapping reservations for retreat %s: %w", retreatID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

func (r *reservationRepository) UpdatePaymentFields(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET paid_amount = $2, payment_status = $3, payment_method = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		reservation.ID,
		reservation.PaidAmount,
		reservation.PaymentStatus,
		reservation.PaymentMethod,
		reservation.Status,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation payment fields",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update payment fields for reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", reservation.ID.String(), entity.ErrReservationNotFound)
	}

	return nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query, reservationID, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", reservationID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", reservationID.String(), entity.ErrReservationNotFound)
	}

	return nil
}

func (r *reservationRepository) SetCheckedIn(ctx context.Context, reservation *entity.Reservation) error {
	// Guard in SQL as well: a concurrent retry must not overwrite the first
	// check-in's metadata.
	query := `
		UPDATE reservations
		SET checked_in_at = $2, checked_in_by = $3, status = $4, updated_at = $5
		WHERE id = $1 AND checked_in_at IS NULL
	`

	result, err := database.QuerierFrom(ctx, r.db).Exec(ctx, query,
		reservation.ID,
		reservation.CheckedInAt,
		reservation.CheckedInBy,
		reservation.Status,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to set reservation checked in",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("set checked in for reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", reservation.ID.String(), entity.ErrAlreadyCheckedIn)
	}

	return nil
}
