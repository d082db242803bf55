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

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error)
	ListReservations(ctx context.Context, req *request.ListReservationsRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)
	UpdatePayment(ctx context.Context, reservationID string, req *request.UpdatePaymentRequest) (*response.PaymentUpdateResponse, error)
	CheckIn(ctx context.Context, reservationID string, req *request.CheckInRequest) (*response.ReservationResponse, error)
	CancelReservation(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo        *repository.Repository
	earnDivisor int
	log         *zap.Logger
}

func NewReservationService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:        repo,
		earnDivisor: config.Loyalty.EarnDivisor,
		log:         log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	retreatID, err := uuid.Parse(req.RetreatID)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID format %s: %w", req.RetreatID, err)
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", req.GuestID, err)
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// Validate guest exists before opening the admission transaction
	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("find guest: %w", err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s: %w", req.GuestID, entity.ErrGuestNotFound)
	}

	status := entity.ReservationStatusPending
	if req.Confirm {
		status = entity.ReservationStatusConfirmed
	}

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:          utils.GenerateReservationCode(),
		RetreatID:     retreatID,
		GuestID:       guestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PartySize:     req.PartySize,
		Status:        status,
		PaidAmount:    0,
		PaymentStatus: entity.PaymentStatusPending,
	}

	// Admission runs inside one transaction: the retreat row lock serializes
	// concurrent reservations of the same retreat so that two requests
	// cannot both observe the same committed count and overshoot capacity.
	err = s.repo.Reservation.WithTx(ctx, func(txCtx context.Context) error {
		retreat, err := s.repo.Retreat.FindByIDForUpdate(txCtx, retreatID)
		if err != nil {
			return fmt.Errorf("lock retreat: %w", err)
		}
		if retreat == nil {
			return fmt.Errorf("retreat %s: %w", req.RetreatID, entity.ErrRetreatNotFound)
		}

		existing, err := s.repo.Reservation.FindOverlapping(txCtx, retreatID, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("load overlapping reservations: %w", err)
		}

		if err := checkCapacity(retreat.Capacity, checkIn, checkOut, req.PartySize, existing, uuid.Nil); err != nil {
			return err
		}

		reservation.TotalAmount = stayAmount(retreat.PricePerGuest, req.PartySize, checkIn, checkOut)

		return s.repo.Reservation.Create(txCtx, reservation)
	})
	if err != nil {
		s.log.Warn("Reservation admission failed",
			zap.Error(err),
			zap.String("retreat_id", req.RetreatID),
			zap.Int("party_size", req.PartySize),
		)
		return nil, err
	}

	s.repo.Availability.Invalidate(ctx, retreatID)

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("retreat_id", req.RetreatID),
		zap.Int("party_size", req.PartySize),
		zap.Float64("total_amount", reservation.TotalAmount),
		zap.String("status", string(reservation.Status)),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationNotFound)
	}

	resp := response.ReservationToResponse(reservation)

	retreat, _ := s.repo.Retreat.FindByID(ctx, reservation.RetreatID)
	if retreat != nil {
		resp.RetreatName = retreat.Name
	}

	guest, _ := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if guest != nil {
		resp.GuestName = guest.Name
	}

	entries, _ := s.repo.Ledger.FindByReservationID(ctx, id)
	entryResponses := make([]response.LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		entryResponses[i] = response.LedgerEntryToResponse(entry)
	}

	return &response.ReservationDetailResponse{
		ReservationResponse: resp,
		LedgerEntries:       entryResponses,
	}, nil
}

func (s *reservationService) ListReservations(ctx context.Context, req *request.ListReservationsRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	filters, err := buildListFilters(req)
	if err != nil {
		return nil, err
	}

	limit := req.Limit()
	offset := req.Offset()

	reservations, err := s.repo.Reservation.FindAll(ctx, limit, offset, filters...)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.Count(ctx, filters...)
	if err != nil {
		s.log.Error("Failed to count reservations", zap.Error(err))
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, res := range reservations {
		reservationResponses[i] = response.ReservationToResponse(res)
	}

	return response.NewPaginatedResponse(reservationResponses, req.Page, req.PerPage, total), nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationNotFound)
	}

	if reservation.IsTerminal() {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationClosed)
	}

	checkIn, checkOut := reservation.CheckIn, reservation.CheckOut
	partySize := reservation.PartySize

	if req.CheckIn != nil {
		if checkIn, err = utils.ParseDate(*req.CheckIn); err != nil {
			return nil, fmt.Errorf("invalid check_in date %s: %w", *req.CheckIn, err)
		}
	}
	if req.CheckOut != nil {
		if checkOut, err = utils.ParseDate(*req.CheckOut); err != nil {
			return nil, fmt.Errorf("invalid check_out date %s: %w", *req.CheckOut, err)
		}
	}
	if req.PartySize != nil {
		partySize = *req.PartySize
	}

	if checkOut.Before(checkIn) {
		return nil, fmt.Errorf("validation failed: check_out must not be before check_in")
	}

	changed := !checkIn.Equal(reservation.CheckIn) || !checkOut.Equal(reservation.CheckOut) || partySize != reservation.PartySize
	if !changed {
		resp := response.ReservationToResponse(reservation)
		return &resp, nil
	}

	// Re-admit against everyone else under the same serialized boundary as
	// creation, excluding this reservation's own committed seats.
	err = s.repo.Reservation.WithTx(ctx, func(txCtx context.Context) error {
		retreat, err := s.repo.Retreat.FindByIDForUpdate(txCtx, reservation.RetreatID)
		if err != nil {
			return fmt.Errorf("lock retreat: %w", err)
		}
		if retreat == nil {
			return fmt.Errorf("retreat %s: %w", reservation.RetreatID.String(), entity.ErrRetreatNotFound)
		}

		existing, err := s.repo.Reservation.FindOverlapping(txCtx, reservation.RetreatID, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("load overlapping reservations: %w", err)
		}

		if err := checkCapacity(retreat.Capacity, checkIn, checkOut, partySize, existing, reservation.ID); err != nil {
			return err
		}

		reservation.CheckIn = checkIn
		reservation.CheckOut = checkOut
		reservation.PartySize = partySize
		reservation.TotalAmount = stayAmount(retreat.PricePerGuest, partySize, checkIn, checkOut)
		reservation.UpdatedAt = time.Now()

		return s.repo.Reservation.Update(txCtx, reservation)
	})
	if err != nil {
		s.log.Warn("Reservation update admission failed",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, err
	}

	s.repo.Availability.Invalidate(ctx, reservation.RetreatID)

	s.log.Info("Reservation updated",
		zap.String("reservation_id", reservationID),
		zap.Int("party_size", partySize),
		zap.Float64("total_amount", reservation.TotalAmount),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) UpdatePayment(ctx context.Context, reservationID string, req *request.UpdatePaymentRequest) (*response.PaymentUpdateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationNotFound)
	}

	var explicit *entity.PaymentStatus
	if req.Status != nil {
		status := entity.PaymentStatus(*req.Status)
		explicit = &status
	}

	result := reconcilePayment(reservation, req.PaidAmount, explicit)

	confirmsSeats := reservation.Status == entity.ReservationStatusPending &&
		result.ReservationStatus == entity.ReservationStatusConfirmed

	reservation.PaidAmount = req.PaidAmount
	reservation.PaymentStatus = result.PaymentStatus
	reservation.Status = result.ReservationStatus
	if req.Method != nil {
		reservation.PaymentMethod = req.Method
	}
	reservation.UpdatedAt = time.Now()

	// The reservation's payment fields are the source of truth; this write
	// must succeed or the whole operation fails.
	if err := s.repo.Reservation.UpdatePaymentFields(ctx, reservation); err != nil {
		s.log.Error("Failed to persist payment update",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, err
	}

	if confirmsSeats {
		s.repo.Availability.Invalidate(ctx, reservation.RetreatID)
	}

	// The mirroring ledger write is best-effort: a failure is reported as a
	// warning alongside the successful payment update, never as an error.
	warning := ""
	if result.Ledger.Needed {
		if err := s.applyLedgerMirror(ctx, reservation, result.Ledger); err != nil {
			s.log.Warn("Ledger write failed after payment update",
				zap.Error(err),
				zap.String("reservation_id", reservationID),
				zap.Float64("paid_amount", req.PaidAmount),
			)
			warning = fmt.Sprintf("payment recorded but ledger update failed: %v", err)
		}
	}

	s.log.Info("Payment updated",
		zap.String("reservation_id", reservationID),
		zap.Float64("paid_amount", req.PaidAmount),
		zap.Float64("difference", result.Delta),
		zap.String("payment_status", string(result.PaymentStatus)),
	)

	return &response.PaymentUpdateResponse{
		Reservation:       response.ReservationToResponse(reservation),
		PaymentDifference: result.Delta,
		Warning:           warning,
	}, nil
}

// applyLedgerMirror keeps the single income/retreat_booking entry equal to
// the reservation's paid amount: update when it exists, create when money
// has been received and none exists yet.
func (s *reservationService) applyLedgerMirror(ctx context.Context, reservation *entity.Reservation, mirror ledgerMirror) error {
	entry, err := s.repo.Ledger.FindBookingEntry(ctx, reservation.ID)
	if err != nil {
		return err
	}

	if entry != nil {
		return s.repo.Ledger.UpdateAmountAndStatus(ctx, entry.ID, mirror.Amount, mirror.Status)
	}

	if mirror.Amount <= 0 {
		return nil
	}

	now := time.Now()
	description := fmt.Sprintf("Booking payment for reservation %s", reservation.Code)
	reservationID := reservation.ID
	return s.repo.Ledger.Create(ctx, &entity.LedgerEntry{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:          entity.LedgerTypeIncome,
		Category:      entity.CategoryRetreatBooking,
		Amount:        mirror.Amount,
		ReservationID: &reservationID,
		Status:        mirror.Status,
		Description:   &description,
	})
}

func (s *reservationService) CheckIn(ctx context.Context, reservationID string, req *request.CheckInRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationNotFound)
	}

	// Idempotency guard: a retried check-in must not run accrual again.
	if reservation.CheckedInAt != nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrAlreadyCheckedIn)
	}

	if reservation.Status == entity.ReservationStatusCancelled {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationClosed)
	}

	now := time.Now()
	reservation.CheckedInAt = &now
	reservation.CheckedInBy = &req.StaffMember
	reservation.Status = entity.ReservationStatusCompleted
	reservation.UpdatedAt = now

	// The repository repeats the guard in SQL, so a concurrent duplicate
	// loses the race and gets ErrAlreadyCheckedIn instead of double accrual.
	if err := s.repo.Reservation.SetCheckedIn(ctx, reservation); err != nil {
		return nil, err
	}

	s.accrueLoyalty(ctx, reservation)
	s.writeCheckInAudit(ctx, reservation, req)

	s.log.Info("Reservation checked in",
		zap.String("reservation_id", reservationID),
		zap.String("staff_member", req.StaffMember),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// accrueLoyalty awards points for a completed stay. Failures are logged and
// do not undo the check-in; the stay is already recorded.
func (s *reservationService) accrueLoyalty(ctx context.Context, reservation *entity.Reservation) {
	guest, err := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if err != nil || guest == nil {
		s.log.Warn("Loyalty accrual skipped, guest lookup failed",
			zap.Error(err),
			zap.String("guest_id", reservation.GuestID.String()),
		)
		return
	}

	if !guest.LoyaltyProgramActive {
		return
	}

	points := loyaltyPointsEarned(reservation.TotalAmount, s.earnDivisor)
	if points <= 0 {
		return
	}

	reservationID := reservation.ID
	txn := &entity.LoyaltyTransaction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		GuestID:       guest.ID,
		ReservationID: &reservationID,
		Type:          entity.LoyaltyEarned,
		Points:        points,
		Description:   fmt.Sprintf("Stay completed, reservation %s", reservation.Code),
	}

	if err := s.repo.Loyalty.Create(ctx, txn); err != nil {
		s.log.Error("Failed to record loyalty transaction",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
			zap.Int("points", points),
		)
		return
	}

	if err := s.repo.Guest.AddLoyaltyPoints(ctx, guest.ID, points); err != nil {
		s.log.Error("Failed to add loyalty points",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
			zap.Int("points", points),
		)
		return
	}

	s.log.Info("Loyalty points awarded",
		zap.String("guest_id", guest.ID.String()),
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int("points", points),
	)
}

func (s *reservationService) writeCheckInAudit(ctx context.Context, reservation *entity.Reservation, req *request.CheckInRequest) {
	detail := fmt.Sprintf("Guest party of %d checked in for reservation %s", reservation.PartySize, reservation.Code)
	if req.Notes != nil && *req.Notes != "" {
		detail = detail + ": " + *req.Notes
	}

	reservationID := reservation.ID
	record := &entity.AuditRecord{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Action:        "reservation_check_in",
		ReservationID: &reservationID,
		Actor:         req.StaffMember,
		Detail:        detail,
	}

	if err := s.repo.Audit.Create(ctx, record); err != nil {
		s.log.Warn("Failed to write check-in audit record",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationNotFound)
	}

	if reservation.Status != entity.ReservationStatusPending && reservation.Status != entity.ReservationStatusConfirmed {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationClosed)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, entity.ReservationStatusCancelled); err != nil {
		s.log.Error("Failed to cancel reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	reservation.Status = entity.ReservationStatusCancelled
	s.repo.Availability.Invalidate(ctx, reservation.RetreatID)

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return fmt.Errorf("reservation %s: %w", reservationID, entity.ErrReservationNotFound)
	}

	// Payment history pins the reservation: with ledger entries attached the
	// only allowed exit is cancellation.
	hasEntries, err := s.repo.Ledger.ExistsByReservationID(ctx, id)
	if err != nil {
		return fmt.Errorf("check ledger entries: %w", err)
	}
	if hasEntries {
		return fmt.Errorf("reservation %s: %w", reservationID, entity.ErrHasLedgerEntries)
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		return err
	}

	s.repo.Availability.Invalidate(ctx, reservation.RetreatID)
	return nil
}

// ==================== HELPERS ====================

func parseStay(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_in date %s: %w", checkInStr, err)
	}

	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_out date %s: %w", checkOutStr, err)
	}

	if checkOut.Before(checkIn) {
		return time.Time{}, time.Time{}, fmt.Errorf("validation failed: check_out must not be before check_in")
	}

	return checkIn, checkOut, nil
}

// stayAmount prices a stay: per guest, per night, with same-day stays
// charged as one night.
func stayAmount(pricePerGuest float64, partySize int, checkIn, checkOut time.Time) float64 {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return pricePerGuest * float64(partySize) * float64(nights)
}

func buildListFilters(req *request.ListReservationsRequest) ([]repository.ReservationFilter, error) {
	var filters []repository.ReservationFilter

	if req.Status != nil {
		filters = append(filters, repository.WithStatus(entity.ReservationStatus(*req.Status)))
	}

	if req.RetreatID != nil {
		retreatID, err := uuid.Parse(*req.RetreatID)
		if err != nil {
			return nil, fmt.Errorf("invalid retreat ID format %s: %w", *req.RetreatID, err)
		}
		filters = append(filters, repository.WithRetreat(retreatID))
	}

	if req.GuestID != nil {
		guestID, err := uuid.Parse(*req.GuestID)
		if err != nil {
			return nil, fmt.Errorf("invalid guest ID format %s: %w", *req.GuestID, err)
		}
		filters = append(filters, repository.WithGuest(guestID))
	}

	if req.From != nil && req.To != nil {
		from, err := utils.ParseDate(*req.From)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %s: %w", *req.From, err)
		}
		to, err := utils.ParseDate(*req.To)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %s: %w", *req.To, err)
		}
		filters = append(filters, repository.WithDateWindow(from, to))
	}

	return filters, nil
}
