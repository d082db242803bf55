package usecase

import (
	"testing"
	"time"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(d string) time.Time {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{"disjoint before", "2026-06-01", "2026-06-03", "2026-06-05", "2026-06-08", false},
		{"disjoint after", "2026-06-10", "2026-06-12", "2026-06-05", "2026-06-08", false},
		{"contained", "2026-06-05", "2026-06-06", "2026-06-01", "2026-06-10", true},
		{"partial overlap", "2026-06-01", "2026-06-06", "2026-06-05", "2026-06-10", true},
		{"shared boundary day counts", "2026-06-01", "2026-06-05", "2026-06-05", "2026-06-10", true},
		{"identical range", "2026-06-01", "2026-06-05", "2026-06-01", "2026-06-05", true},
		{"zero-length inside range", "2026-06-03", "2026-06-03", "2026-06-01", "2026-06-05", true},
		{"zero-length on boundary", "2026-06-05", "2026-06-05", "2026-06-01", "2026-06-05", true},
		{"zero-length outside", "2026-06-06", "2026-06-06", "2026-06-01", "2026-06-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rangesOverlap(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.expected, got)

			// Overlap is symmetric
			assert.Equal(t, tt.expected, rangesOverlap(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd)))
		})
	}
}

func makeReservation(status entity.ReservationStatus, checkIn, checkOut string, partySize int) *entity.Reservation {
	return &entity.Reservation{
		Base:      entity.Base{ID: uuid.New()},
		CheckIn:   day(checkIn),
		CheckOut:  day(checkOut),
		PartySize: partySize,
		Status:    status,
	}
}

func TestCommittedPartySize(t *testing.T) {
	existing := []*entity.Reservation{
		makeReservation(entity.ReservationStatusConfirmed, "2026-06-01", "2026-06-05", 4),
		makeReservation(entity.ReservationStatusCompleted, "2026-06-03", "2026-06-07", 2),
		makeReservation(entity.ReservationStatusPending, "2026-06-01", "2026-06-05", 10),
		makeReservation(entity.ReservationStatusCancelled, "2026-06-01", "2026-06-05", 10),
		makeReservation(entity.ReservationStatusConfirmed, "2026-06-20", "2026-06-25", 8),
	}

	t.Run("only seat-holding overlapping reservations count", func(t *testing.T) {
		got := committedPartySize(day("2026-06-04"), day("2026-06-06"), existing, uuid.Nil)
		assert.Equal(t, 6, got)
	})

	t.Run("window outside every stay", func(t *testing.T) {
		got := committedPartySize(day("2026-07-01"), day("2026-07-05"), existing, uuid.Nil)
		assert.Equal(t, 0, got)
	})

	t.Run("exclude skips own seats", func(t *testing.T) {
		got := committedPartySize(day("2026-06-04"), day("2026-06-06"), existing, existing[0].ID)
		assert.Equal(t, 2, got)
	})
}
