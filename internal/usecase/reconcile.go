package usecase

import "retreat-booking/internal/data/entity"

// ledgerMirror describes the ledger write that must reflect a payment
// change: the booking entry's amount always equals the reservation's paid
// amount, and the entry is processed once fully paid. Whether this becomes
// a create or an update depends on whether the entry already exists, which
// the orchestrator resolves.
type ledgerMirror struct {
	Needed bool
	Amount float64
	Status entity.LedgerStatus
}

// reconciliationResult is the outcome of applying a payment event to a
// reservation snapshot. Delta may be negative for corrections and refunds.
type reconciliationResult struct {
	PaymentStatus     entity.PaymentStatus
	ReservationStatus entity.ReservationStatus
	Delta             float64
	Ledger            ledgerMirror
}

// reconcilePayment computes the payment status, paid-amount delta and the
// mirroring ledger operation for a new paid amount. An explicit status from
// the caller wins over the derived one. Overpayment is a valid state; no cap
// at the total is enforced.
//
// The reservation status moves to confirmed once fully paid, except for
// cancelled and completed reservations, which keep their status.
func reconcilePayment(res *entity.Reservation, newPaid float64, explicit *entity.PaymentStatus) reconciliationResult {
	result := reconciliationResult{
		ReservationStatus: res.Status,
		Delta:             newPaid - res.PaidAmount,
	}

	switch {
	case explicit != nil:
		result.PaymentStatus = *explicit
	case newPaid >= res.TotalAmount:
		result.PaymentStatus = entity.PaymentStatusPaid
	case newPaid > 0:
		result.PaymentStatus = entity.PaymentStatusPartial
	default:
		result.PaymentStatus = entity.PaymentStatusPending
	}

	if result.PaymentStatus == entity.PaymentStatusPaid && !res.IsTerminal() {
		result.ReservationStatus = entity.ReservationStatusConfirmed
	}

	if result.Delta != 0 {
		ledgerStatus := entity.LedgerStatusPending
		if result.PaymentStatus == entity.PaymentStatusPaid {
			ledgerStatus = entity.LedgerStatusProcessed
		}
		result.Ledger = ledgerMirror{
			Needed: true,
			Amount: newPaid,
			Status: ledgerStatus,
		}
	}

	return result
}
