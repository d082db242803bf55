package usecase

import (
	"testing"
	"time"

	"retreat-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeActivity(title, instructor, location, start, end string) *entity.Activity {
	parse := func(v string) time.Time {
		t, err := time.Parse("2006-01-02 15:04", v)
		if err != nil {
			panic(err)
		}
		return t
	}
	return &entity.Activity{
		Base:       entity.Base{ID: uuid.New()},
		Title:      title,
		Instructor: instructor,
		Location:   location,
		StartTime:  parse(start),
		EndTime:    parse(end),
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Run("same instructor overlapping", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("Morning Yoga", "Maya", "Pavilion", "2026-06-01 08:00", "2026-06-01 09:30"),
			makeActivity("Breathwork", "Maya", "Garden", "2026-06-01 09:00", "2026-06-01 10:00"),
		})

		require.Len(t, reports, 1)
		assert.Equal(t, entity.ConflictKindInstructor, reports[0].Kind)
		assert.Equal(t, "Maya", reports[0].Resource)
	})

	t.Run("same location overlapping", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("Morning Yoga", "Maya", "Pavilion", "2026-06-01 08:00", "2026-06-01 09:30"),
			makeActivity("Meditation", "Ravi", "Pavilion", "2026-06-01 09:00", "2026-06-01 10:00"),
		})

		require.Len(t, reports, 1)
		assert.Equal(t, entity.ConflictKindLocation, reports[0].Kind)
		assert.Equal(t, "Pavilion", reports[0].Resource)
	})

	t.Run("shared instructor and location yields two reports", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("Morning Yoga", "Maya", "Pavilion", "2026-06-01 08:00", "2026-06-01 09:30"),
			makeActivity("Flow Session", "Maya", "Pavilion", "2026-06-01 09:00", "2026-06-01 10:00"),
		})

		require.Len(t, reports, 2)
		kinds := []entity.ConflictKind{reports[0].Kind, reports[1].Kind}
		assert.Contains(t, kinds, entity.ConflictKindInstructor)
		assert.Contains(t, kinds, entity.ConflictKindLocation)
	})

	t.Run("no overlap no conflict", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("Morning Yoga", "Maya", "Pavilion", "2026-06-01 08:00", "2026-06-01 09:00"),
			makeActivity("Evening Yoga", "Maya", "Pavilion", "2026-06-01 17:00", "2026-06-01 18:00"),
		})

		assert.Empty(t, reports)
	})

	t.Run("touching boundaries count as overlapping", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("Morning Yoga", "Maya", "Pavilion", "2026-06-01 08:00", "2026-06-01 09:00"),
			makeActivity("Breathwork", "Maya", "Garden", "2026-06-01 09:00", "2026-06-01 10:00"),
		})

		require.Len(t, reports, 1)
		assert.Equal(t, entity.ConflictKindInstructor, reports[0].Kind)
	})

	t.Run("empty resource never conflicts", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("Free Time", "", "", "2026-06-01 08:00", "2026-06-01 10:00"),
			makeActivity("Open Space", "", "", "2026-06-01 09:00", "2026-06-01 11:00"),
		})

		assert.Empty(t, reports)
	})

	t.Run("every pair is examined", func(t *testing.T) {
		reports := DetectConflicts([]*entity.Activity{
			makeActivity("A", "Maya", "Pavilion", "2026-06-01 08:00", "2026-06-01 12:00"),
			makeActivity("B", "Maya", "Garden", "2026-06-01 09:00", "2026-06-01 10:00"),
			makeActivity("C", "Maya", "Lake", "2026-06-01 10:00", "2026-06-01 11:00"),
		})

		// A-B, A-C and B-C all share Maya and overlap pairwise.
		assert.Len(t, reports, 3)
	})
}
