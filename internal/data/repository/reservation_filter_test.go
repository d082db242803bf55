package repository

import (
	"testing"
	"time"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReservationWhere(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		clause, args := buildReservationWhere(nil)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("single status filter", func(t *testing.T) {
		clause, args := buildReservationWhere([]ReservationFilter{
			WithStatus(entity.ReservationStatusConfirmed),
		})

		assert.Equal(t, "WHERE status = $1", clause)
		require.Len(t, args, 1)
		assert.Equal(t, entity.ReservationStatusConfirmed, args[0])
	})

	t.Run("filters compose with AND and renumber placeholders", func(t *testing.T) {
		retreatID := uuid.New()
		guestID := uuid.New()

		clause, args := buildReservationWhere([]ReservationFilter{
			WithStatus(entity.ReservationStatusPending),
			WithRetreat(retreatID),
			WithGuest(guestID),
		})

		assert.Equal(t, "WHERE status = $1 AND retreat_id = $2 AND guest_id = $3", clause)
		require.Len(t, args, 3)
		assert.Equal(t, retreatID, args[1])
		assert.Equal(t, guestID, args[2])
	})

	t.Run("date window uses the inclusive overlap rule", func(t *testing.T) {
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

		clause, args := buildReservationWhere([]ReservationFilter{
			WithDateWindow(from, to),
		})

		assert.Equal(t, "WHERE check_in <= $2 AND check_out >= $1", clause)
		require.Len(t, args, 2)
		assert.Equal(t, from, args[0])
		assert.Equal(t, to, args[1])
	})

	t.Run("date window after another filter keeps numbering dense", func(t *testing.T) {
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

		clause, args := buildReservationWhere([]ReservationFilter{
			WithStatus(entity.ReservationStatusConfirmed),
			WithDateWindow(from, to),
		})

		assert.Equal(t, "WHERE status = $1 AND check_in <= $3 AND check_out >= $2", clause)
		assert.Len(t, args, 3)
	})
}
