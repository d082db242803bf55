package usecase

import (
	"context"
	"testing"
	"time"

	"retreat-booking/internal/data/entity"
	"retreat-booking/internal/data/repository"
	"retreat-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeActivityRepo struct {
	activities map[uuid.UUID]*entity.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[uuid.UUID]*entity.Activity)}
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	clone := *activity
	f.activities[activity.ID] = &clone
	return nil
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return nil, nil
	}
	clone := *activity
	return &clone, nil
}

func (f *fakeActivityRepo) FindByRetreatID(_ context.Context, retreatID uuid.UUID) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, activity := range f.activities {
		if activity.RetreatID == retreatID {
			clone := *activity
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) FindInWindow(_ context.Context, from, to time.Time) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, activity := range f.activities {
		if !activity.StartTime.After(to) && !from.After(activity.EndTime) {
			clone := *activity
			out = append(out, &clone)
		}
	}
	return out, nil
}

type scheduleFixture struct {
	service    ScheduleService
	activities *fakeActivityRepo
	retreat    *entity.Retreat
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	retreats := newFakeRetreatRepo()
	activities := newFakeActivityRepo()

	retreat := &entity.Retreat{
		Base:      entity.Base{ID: uuid.New()},
		Name:      "Mountain Silence",
		Capacity:  10,
		StartDate: day("2026-06-01"),
		EndDate:   day("2026-06-30"),
	}
	retreats.retreats[retreat.ID] = retreat

	repo := &repository.Repository{
		Retreat:  retreats,
		Activity: activities,
	}

	return &scheduleFixture{
		service:    NewScheduleService(repo, zap.NewNop()),
		activities: activities,
		retreat:    retreat,
	}
}

func (f *scheduleFixture) createActivity(t *testing.T, title, instructor, location, start, end string) {
	t.Helper()

	_, err := f.service.CreateActivity(context.Background(), &request.CreateActivityRequest{
		RetreatID:  f.retreat.ID.String(),
		Title:      title,
		StartTime:  start,
		EndTime:    end,
		Instructor: instructor,
		Location:   location,
		Capacity:   20,
	})
	require.NoError(t, err)
}

func TestCreateActivity(t *testing.T) {
	t.Run("creates within retreat dates", func(t *testing.T) {
		f := newScheduleFixture(t)

		resp, err := f.service.CreateActivity(context.Background(), &request.CreateActivityRequest{
			RetreatID:  f.retreat.ID.String(),
			Title:      "Morning Yoga",
			StartTime:  "2026-06-05T08:00:00Z",
			EndTime:    "2026-06-05T09:30:00Z",
			Instructor: "Maya",
			Location:   "Pavilion",
			Capacity:   20,
		})

		require.NoError(t, err)
		assert.Equal(t, "Morning Yoga", resp.Title)
		assert.Len(t, f.activities.activities, 1)
	})

	t.Run("rejects activity outside retreat dates", func(t *testing.T) {
		f := newScheduleFixture(t)

		_, err := f.service.CreateActivity(context.Background(), &request.CreateActivityRequest{
			RetreatID:  f.retreat.ID.String(),
			Title:      "Late Session",
			StartTime:  "2026-07-02T08:00:00Z",
			EndTime:    "2026-07-02T09:00:00Z",
			Instructor: "Maya",
			Location:   "Pavilion",
			Capacity:   20,
		})

		assert.ErrorIs(t, err, entity.ErrActivityOutsideRetreat)
	})

	t.Run("rejects inverted times", func(t *testing.T) {
		f := newScheduleFixture(t)

		_, err := f.service.CreateActivity(context.Background(), &request.CreateActivityRequest{
			RetreatID:  f.retreat.ID.String(),
			Title:      "Backwards",
			StartTime:  "2026-06-05T10:00:00Z",
			EndTime:    "2026-06-05T09:00:00Z",
			Instructor: "Maya",
			Location:   "Pavilion",
			Capacity:   20,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "start_time must be before end_time")
	})

	t.Run("unknown retreat", func(t *testing.T) {
		f := newScheduleFixture(t)

		_, err := f.service.CreateActivity(context.Background(), &request.CreateActivityRequest{
			RetreatID:  uuid.New().String(),
			Title:      "Orphan",
			StartTime:  "2026-06-05T08:00:00Z",
			EndTime:    "2026-06-05T09:00:00Z",
			Instructor: "Maya",
			Location:   "Pavilion",
			Capacity:   20,
		})

		assert.ErrorIs(t, err, entity.ErrRetreatNotFound)
	})
}

func TestDetectScheduleConflicts(t *testing.T) {
	t.Run("reports double-booked instructor inside the window", func(t *testing.T) {
		f := newScheduleFixture(t)
		f.createActivity(t, "Morning Yoga", "Maya", "Pavilion", "2026-06-05T08:00:00Z", "2026-06-05T09:30:00Z")
		f.createActivity(t, "Breathwork", "Maya", "Garden", "2026-06-05T09:00:00Z", "2026-06-05T10:00:00Z")
		f.createActivity(t, "Meditation", "Ravi", "Lake", "2026-06-05T09:00:00Z", "2026-06-05T10:00:00Z")

		conflicts, err := f.service.DetectScheduleConflicts(context.Background(), "2026-06-01", "2026-06-10")

		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "instructor", conflicts[0].Kind)
		assert.Equal(t, "Maya", conflicts[0].Resource)
	})

	t.Run("activities outside the window are ignored", func(t *testing.T) {
		f := newScheduleFixture(t)
		f.createActivity(t, "Morning Yoga", "Maya", "Pavilion", "2026-06-20T08:00:00Z", "2026-06-20T09:30:00Z")
		f.createActivity(t, "Breathwork", "Maya", "Garden", "2026-06-20T09:00:00Z", "2026-06-20T10:00:00Z")

		conflicts, err := f.service.DetectScheduleConflicts(context.Background(), "2026-06-01", "2026-06-10")

		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("clean schedule yields no conflicts", func(t *testing.T) {
		f := newScheduleFixture(t)
		f.createActivity(t, "Morning Yoga", "Maya", "Pavilion", "2026-06-05T08:00:00Z", "2026-06-05T09:00:00Z")
		f.createActivity(t, "Evening Yoga", "Maya", "Pavilion", "2026-06-05T17:00:00Z", "2026-06-05T18:00:00Z")

		conflicts, err := f.service.DetectScheduleConflicts(context.Background(), "2026-06-01", "2026-06-10")

		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		f := newScheduleFixture(t)

		_, err := f.service.DetectScheduleConflicts(context.Background(), "2026-06-10", "2026-06-01")

		assert.Error(t, err)
	})
}
