package suggest_rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

type fakeScheduleRepo struct {
	rooms     []string
	schedules map[string][]*domain.Schedule
}

func (f *fakeScheduleRepo) ListRooms(_ context.Context) ([]string, error) {
	return f.rooms, nil
}

func (f *fakeScheduleRepo) GetByRoomAndDay(_ context.Context, roomID string, _ domain.Weekday) ([]*domain.Schedule, error) {
	return f.schedules[roomID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule(id int64, room, start, end, course, department string) *domain.Schedule {
	return &domain.Schedule{
		ID:         id,
		RoomID:     room,
		Day:        domain.Monday,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		Course:     course,
		Department: department,
		Status:     domain.DefaultStatus,
	}
}

func testWindow(t *testing.T) types.TimeSpan {
	t.Helper()
	window, err := types.NewTimeSpanFromStrings("08:00", "18:00")
	require.NoError(t, err)
	return window
}

func strPtr(s string) *string {
	return &s
}

func TestUseCase_Execute_RankingAndConflicted(t *testing.T) {
	repo := &fakeScheduleRepo{
		rooms: []string{"R1", "R2", "R3"},
		schedules: map[string][]*domain.Schedule{
			"R1": {testSchedule(1, "R1", "09:00", "10:00", "Math 101", "Mathematics")},
			"R2": {},
			"R3": {testSchedule(2, "R3", "09:30", "11:30", "Physics 201", "Physics")},
		},
	}
	uc := NewUseCase(repo, testWindow(t), domain.MaxPageSize, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Day:   "Monday",
		Start: "10:00",
		End:   "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Monday", resp.Day)

	// Комната без занятий свободнее - идет первой
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "R2", resp.Suggestions[0].RoomID)
	assert.Equal(t, 600, resp.Suggestions[0].TotalFreeMinutes)
	assert.Equal(t, "10h", resp.Suggestions[0].TotalFreeTime)
	assert.Equal(t, "R1", resp.Suggestions[1].RoomID)
	assert.Equal(t, 540, resp.Suggestions[1].TotalFreeMinutes)
	assert.Equal(t, "Mathematics", resp.Suggestions[1].Department)

	// Комната с мешающим занятием возвращается отдельно
	require.Len(t, resp.ConflictedRooms, 1)
	assert.Equal(t, "R3", resp.ConflictedRooms[0].RoomID)
	assert.Equal(t, "Physics 201", resp.ConflictedRooms[0].Conflict.Course)
	assert.Equal(t, "09:30-11:30", resp.ConflictedRooms[0].Conflict.TimeSlot)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestUseCase_Execute_DepartmentFilter(t *testing.T) {
	repo := &fakeScheduleRepo{
		rooms: []string{"R1", "R2", "R3"},
		schedules: map[string][]*domain.Schedule{
			"R1": {testSchedule(1, "R1", "09:00", "10:00", "Math 101", "Mathematics")},
			"R2": {testSchedule(2, "R2", "09:00", "10:00", "Physics 201", "Physics")},
			"R3": {},
		},
	}
	uc := NewUseCase(repo, testWindow(t), domain.MaxPageSize, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Day:        "Monday",
		Start:      "14:00",
		End:        "15:00",
		Department: strPtr("mathematics"),
	})

	require.NoError(t, err)
	// R2 отфильтрована; R3 без занятий не раскрывает факультет и проходит фильтр
	assert.Equal(t, []string{"R3", "R1"}, []string{resp.Suggestions[0].RoomID, resp.Suggestions[1].RoomID})
}

func TestUseCase_Execute_SingleRoomFilter(t *testing.T) {
	repo := &fakeScheduleRepo{
		rooms: []string{"R1", "R2"},
		schedules: map[string][]*domain.Schedule{
			"R1": {},
			"R2": {},
		},
	}
	uc := NewUseCase(repo, testWindow(t), domain.MaxPageSize, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Day:    "Monday",
		Start:  "10:00",
		End:    "11:00",
		RoomID: strPtr("R2"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "R2", resp.Suggestions[0].RoomID)
}

func TestUseCase_Execute_Pagination(t *testing.T) {
	repo := &fakeScheduleRepo{
		rooms: []string{"R1", "R2", "R3", "R4", "R5"},
		schedules: map[string][]*domain.Schedule{
			"R1": {}, "R2": {}, "R3": {}, "R4": {}, "R5": {},
		},
	}
	uc := NewUseCase(repo, testWindow(t), domain.MaxPageSize, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Day:     "Monday",
		Start:   "10:00",
		End:     "11:00",
		Page:    2,
		PerPage: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.TotalItems)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "R3", resp.Suggestions[0].RoomID)
	assert.Equal(t, "R4", resp.Suggestions[1].RoomID)

	// Страница за пределами набора - остается первая
	resp, err = uc.Execute(context.Background(), &Request{
		Day:     "Monday",
		Start:   "10:00",
		End:     "11:00",
		Page:    9,
		PerPage: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "R1", resp.Suggestions[0].RoomID)
}

func TestUseCase_Execute_OutsideOperatingHours(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testWindow(t), domain.MaxPageSize, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Day:   "Monday",
		Start: "07:00",
		End:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{
		Day:   "Monday",
		Start: "17:00",
		End:   "19:00",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testWindow(t), domain.MaxPageSize, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Start: "10:00", End: "11:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Day: "Monday"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Day: "Monday", Start: "11:00", End: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
