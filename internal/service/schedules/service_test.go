package schedules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules/models"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

type fakeScheduleRepo struct {
	schedules []*domain.Schedule
}

func (f *fakeScheduleRepo) Search(_ context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	matches := make([]*domain.Schedule, 0)
	for _, s := range f.schedules {
		if filter.Matches(s) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (f *fakeScheduleRepo) GetByRoomAndDay(_ context.Context, roomID string, day domain.Weekday) ([]*domain.Schedule, error) {
	matches := make([]*domain.Schedule, 0)
	for _, s := range f.schedules {
		if s.RoomID == roomID && s.Day == day {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule(id int64, room string, day domain.Weekday, course, lecturer string) *domain.Schedule {
	return &domain.Schedule{
		ID:        id,
		RoomID:    room,
		Day:       day,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
		Course:    course,
		Lecturer:  lecturer,
		Status:    domain.DefaultStatus,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestService_Search(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "Math 101", "Dr. Ada"),
		testSchedule(2, "R2", domain.Monday, "Physics 201", "Dr. Grace"),
		testSchedule(3, "R1", domain.Tuesday, "Math 101", "Dr. Ada"),
	}}
	svc := NewService(repo, domain.MaxPageSize, nopLogger{})

	t.Run("filter by room", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{RoomID: strPtr("R1")})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 2)
		assert.Equal(t, 2, resp.Pagination.TotalItems)
	})

	t.Run("filter by day", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{Day: strPtr("monday")})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 2)
	})

	t.Run("text search matches lecturer", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{Text: strPtr("grace")})
		require.NoError(t, err)
		require.Len(t, resp.Schedules, 1)
		assert.Equal(t, int64(2), resp.Schedules[0].ID)
	})

	t.Run("invalid day", func(t *testing.T) {
		_, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{Day: strPtr("Mondayish")})
		assert.ErrorIs(t, err, ErrInvalidDay)
	})
}

func TestService_Search_Pagination(t *testing.T) {
	schedules := make([]*domain.Schedule, 0, 25)
	for i := int64(1); i <= 25; i++ {
		schedules = append(schedules, testSchedule(i, "R1", domain.Monday, "Math 101", "Dr. Ada"))
	}
	svc := NewService(&fakeScheduleRepo{schedules: schedules}, domain.MaxPageSize, nopLogger{})

	t.Run("defaults", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, domain.DefaultPageSize)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 25, resp.Pagination.TotalItems)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{Page: 3, PerPage: 10})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 5)
		assert.Equal(t, int64(21), resp.Schedules[0].ID)
	})

	t.Run("page beyond range is empty", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchSchedulesRequest{Page: 9, PerPage: 10})
		require.NoError(t, err)
		assert.Empty(t, resp.Schedules)
		assert.Equal(t, 25, resp.Pagination.TotalItems)
	})

	t.Run("per page capped", func(t *testing.T) {
		svcCapped := NewService(&fakeScheduleRepo{schedules: schedules}, 20, nopLogger{})
		resp, err := svcCapped.Search(context.Background(), &models.SearchSchedulesRequest{PerPage: 100})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 20)
		assert.Equal(t, 20, resp.Pagination.PerPage)
	})
}

func TestService_GetRoomSchedules(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "Math 101", "Dr. Ada"),
		testSchedule(2, "R1", domain.Tuesday, "Physics 201", "Dr. Grace"),
		testSchedule(3, "R2", domain.Monday, "Chemistry 301", "Dr. Rosalind"),
	}}
	svc := NewService(repo, domain.MaxPageSize, nopLogger{})

	t.Run("all days", func(t *testing.T) {
		resp, err := svc.GetRoomSchedules(context.Background(), &models.GetRoomSchedulesRequest{RoomID: "R1"})
		require.NoError(t, err)
		assert.Len(t, resp.Schedules, 2)
	})

	t.Run("single day", func(t *testing.T) {
		resp, err := svc.GetRoomSchedules(context.Background(), &models.GetRoomSchedulesRequest{
			RoomID: "R1",
			Day:    strPtr("Tuesday"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Schedules, 1)
		assert.Equal(t, int64(2), resp.Schedules[0].ID)
	})

	t.Run("missing room id", func(t *testing.T) {
		_, err := svc.GetRoomSchedules(context.Background(), &models.GetRoomSchedulesRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
