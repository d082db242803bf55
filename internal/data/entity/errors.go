package entity

import "errors"

// Domain decisions are returned as typed errors so handlers can map them to
// HTTP statuses without string matching.
var (
	ErrRetreatNotFound     = errors.New("retreat not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	ErrGuestEmailTaken        = errors.New("guest email already registered")
	ErrActivityOutsideRetreat = errors.New("activity falls outside the retreat dates")

	ErrCapacityExceeded  = errors.New("retreat capacity exceeded for the requested dates")
	ErrAlreadyCheckedIn  = errors.New("reservation is already checked in")
	ErrHasLedgerEntries  = errors.New("reservation has dependent ledger entries")
	ErrReservationClosed = errors.New("reservation is cancelled or completed")
)
