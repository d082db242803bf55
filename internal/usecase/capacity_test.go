package usecase

import (
	"testing"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCapacity(t *testing.T) {
	existing := []*entity.Reservation{
		makeReservation(entity.ReservationStatusConfirmed, "2026-06-01", "2026-06-05", 12),
		makeReservation(entity.ReservationStatusConfirmed, "2026-06-03", "2026-06-08", 5),
	}

	t.Run("admits when committed plus party fits", func(t *testing.T) {
		err := checkCapacity(20, day("2026-06-04"), day("2026-06-06"), 3, existing, uuid.Nil)
		assert.NoError(t, err)
	})

	t.Run("rejects when committed plus party exceeds capacity", func(t *testing.T) {
		err := checkCapacity(20, day("2026-06-04"), day("2026-06-06"), 4, existing, uuid.Nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrCapacityExceeded)
	})

	t.Run("exact fit is admitted", func(t *testing.T) {
		err := checkCapacity(20, day("2026-06-04"), day("2026-06-06"), 3, existing, uuid.Nil)
		assert.NoError(t, err)

		err = checkCapacity(17, day("2026-06-04"), day("2026-06-06"), 0, existing, uuid.Nil)
		assert.NoError(t, err)
	})

	t.Run("pending reservations hold no seats", func(t *testing.T) {
		withPending := append([]*entity.Reservation{
			makeReservation(entity.ReservationStatusPending, "2026-06-01", "2026-06-10", 50),
		}, existing...)

		err := checkCapacity(20, day("2026-06-04"), day("2026-06-06"), 3, withPending, uuid.Nil)
		assert.NoError(t, err)
	})

	t.Run("zero-length stay occupies its single day", func(t *testing.T) {
		err := checkCapacity(17, day("2026-06-05"), day("2026-06-05"), 1, existing, uuid.Nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrCapacityExceeded)
	})

	t.Run("excluding own reservation frees its seats for an edit", func(t *testing.T) {
		err := checkCapacity(20, day("2026-06-04"), day("2026-06-06"), 14, existing, existing[0].ID)
		assert.NoError(t, err)

		err = checkCapacity(20, day("2026-06-04"), day("2026-06-06"), 16, existing, existing[0].ID)
		assert.ErrorIs(t, err, entity.ErrCapacityExceeded)
	})

	t.Run("non-overlapping window ignores existing stays", func(t *testing.T) {
		err := checkCapacity(20, day("2026-07-01"), day("2026-07-05"), 20, existing, uuid.Nil)
		assert.NoError(t, err)
	})
}
