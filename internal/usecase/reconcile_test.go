package usecase

import (
	"testing"

	"retreat-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func paymentReservation(status entity.ReservationStatus, total, paid float64) *entity.Reservation {
	return &entity.Reservation{
		Status:      status,
		TotalAmount: total,
		PaidAmount:  paid,
	}
}

func TestReconcilePayment(t *testing.T) {
	t.Run("full payment derives paid and confirms", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusPending, 500, 0)

		result := reconcilePayment(res, 500, nil)

		assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
		assert.Equal(t, entity.ReservationStatusConfirmed, result.ReservationStatus)
		assert.Equal(t, 500.0, result.Delta)
		assert.True(t, result.Ledger.Needed)
		assert.Equal(t, 500.0, result.Ledger.Amount)
		assert.Equal(t, entity.LedgerStatusProcessed, result.Ledger.Status)
	})

	t.Run("partial payment derives partial and keeps status", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusPending, 500, 0)

		result := reconcilePayment(res, 200, nil)

		assert.Equal(t, entity.PaymentStatusPartial, result.PaymentStatus)
		assert.Equal(t, entity.ReservationStatusPending, result.ReservationStatus)
		assert.Equal(t, 200.0, result.Delta)
		assert.True(t, result.Ledger.Needed)
		assert.Equal(t, entity.LedgerStatusPending, result.Ledger.Status)
	})

	t.Run("zero amount derives pending", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusPending, 500, 100)

		result := reconcilePayment(res, 0, nil)

		assert.Equal(t, entity.PaymentStatusPending, result.PaymentStatus)
		assert.Equal(t, -100.0, result.Delta)
		assert.True(t, result.Ledger.Needed)
		assert.Equal(t, 0.0, result.Ledger.Amount)
	})

	t.Run("overpayment is paid without a cap", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusConfirmed, 500, 500)

		result := reconcilePayment(res, 650, nil)

		assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
		assert.Equal(t, 150.0, result.Delta)
		assert.Equal(t, 650.0, result.Ledger.Amount)
	})

	t.Run("explicit status wins over derived", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusPending, 500, 0)
		partial := entity.PaymentStatusPartial

		result := reconcilePayment(res, 500, &partial)

		assert.Equal(t, entity.PaymentStatusPartial, result.PaymentStatus)
		assert.Equal(t, entity.ReservationStatusPending, result.ReservationStatus)
	})

	t.Run("unchanged amount needs no ledger write", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusConfirmed, 500, 300)

		result := reconcilePayment(res, 300, nil)

		assert.Equal(t, 0.0, result.Delta)
		assert.False(t, result.Ledger.Needed)
	})

	t.Run("cancelled reservation keeps its status when paid", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusCancelled, 500, 0)

		result := reconcilePayment(res, 500, nil)

		assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
		assert.Equal(t, entity.ReservationStatusCancelled, result.ReservationStatus)
	})

	t.Run("completed reservation keeps its status when paid", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusCompleted, 500, 200)

		result := reconcilePayment(res, 500, nil)

		assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
		assert.Equal(t, entity.ReservationStatusCompleted, result.ReservationStatus)
	})

	t.Run("refund produces negative delta", func(t *testing.T) {
		res := paymentReservation(entity.ReservationStatusConfirmed, 500, 500)

		result := reconcilePayment(res, 250, nil)

		assert.Equal(t, -250.0, result.Delta)
		assert.Equal(t, entity.PaymentStatusPartial, result.PaymentStatus)
		assert.True(t, result.Ledger.Needed)
		assert.Equal(t, 250.0, result.Ledger.Amount)
		assert.Equal(t, entity.LedgerStatusPending, result.Ledger.Status)
	})
}
