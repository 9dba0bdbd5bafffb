package reallocate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/schedule"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

type fakeScheduleRepo struct {
	schedules []*domain.Schedule
	updated   *domain.Schedule
	updatedID int64
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.Schedule, error) {
	for _, s := range f.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
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

func (f *fakeScheduleRepo) Update(_ context.Context, id int64, s *domain.Schedule) (*domain.Schedule, error) {
	for _, existing := range f.schedules {
		if existing.ID == id {
			out := *s
			out.ID = id
			out.UpdatedAt = time.Now()
			f.updated = &out
			f.updatedID = id
			return &out, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule(id int64, room string, day domain.Weekday, start, end, course string) *domain.Schedule {
	return &domain.Schedule{
		ID:         id,
		RoomID:     room,
		Day:        day,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		Course:     course,
		Department: "Mathematics",
		Lecturer:   "Dr. Ada",
		Status:     domain.DefaultStatus,
	}
}

func newTestUseCase(repo *fakeScheduleRepo) *UseCase {
	return NewUseCase(repo, passthroughTxManager{}, domain.SeverityMedium, nopLogger{})
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestUseCase_Execute_ByID(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:    int64Ptr(1),
		Patch: Patch{Start: strPtr("14:00"), End: strPtr("15:00")},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Schedule.ID)
	assert.Equal(t, "14:00-15:00", resp.Schedule.TimeSlot)

	// Незатронутые патчем поля сохраняются
	assert.Equal(t, "Math 101", resp.Schedule.Course)
	assert.Equal(t, "Mathematics", resp.Schedule.Department)
	assert.Equal(t, "Dr. Ada", resp.Schedule.Lecturer)
	assert.Equal(t, "R1", resp.Schedule.RoomID)
}

func TestUseCase_Execute_ByCriteria(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
		testSchedule(2, "R1", domain.Monday, "11:00", "12:00", "Physics 201"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Criteria: &Criteria{RoomID: strPtr("R1"), Day: strPtr("Monday"), Course: strPtr("Math 101")},
		Patch:    Patch{RoomID: strPtr("R2")},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Schedule.ID)
	assert.Equal(t, "R2", resp.Schedule.RoomID)
}

func TestUseCase_Execute_CriteriaNarrowedByTime(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
		testSchedule(2, "R1", domain.Monday, "11:00", "12:00", "Math 101"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Criteria: &Criteria{RoomID: strPtr("R1"), Course: strPtr("Math 101"), Start: strPtr("11:00")},
		Patch:    Patch{Lecturer: strPtr("Dr. Grace")},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Schedule.ID)
	assert.Equal(t, "Dr. Grace", resp.Schedule.Lecturer)
}

func TestUseCase_Execute_CriteriaTimeNormalized(t *testing.T) {
	// Критерий "9:00" находит запись, хранимую как "09:00"
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
		testSchedule(2, "R1", domain.Monday, "11:00", "12:00", "Math 101"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Criteria: &Criteria{RoomID: strPtr("R1"), Course: strPtr("Math 101"), Start: strPtr("9:00")},
		Patch:    Patch{Lecturer: strPtr("Dr. Grace")},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Schedule.ID)
}

func TestUseCase_Execute_LenientPatchTimes(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:    int64Ptr(1),
		Patch: Patch{Start: strPtr("14.00"), End: strPtr("1500")},
	})

	require.NoError(t, err)
	assert.Equal(t, "14:00-15:00", resp.Schedule.TimeSlot)
}

func TestUseCase_Execute_AmbiguousMatch(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
		testSchedule(2, "R1", domain.Tuesday, "09:00", "10:00", "Math 101"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Criteria: &Criteria{Course: strPtr("Math 101")},
		Patch:    Patch{RoomID: strPtr("R2")},
	})

	// Движок никогда не выбирает запись за пользователя
	require.ErrorIs(t, err, ErrAmbiguousMatch)
	require.NotNil(t, resp)
	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, int64(1), resp.Candidates[0].ID)
	assert.Equal(t, int64(2), resp.Candidates[1].ID)

	// Ни одна запись не изменена
	assert.Nil(t, repo.updated)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		ID:    int64Ptr(99),
		Patch: Patch{RoomID: strPtr("R2")},
	})
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	_, err = uc.Execute(ctx, &Request{
		Criteria: &Criteria{Course: strPtr("Unknown 999")},
		Patch:    Patch{RoomID: strPtr("R2")},
	})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestUseCase_Execute_NewConflictRejected(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
		testSchedule(2, "R2", domain.Monday, "14:00", "15:00", "Physics 201"),
	}}
	uc := newTestUseCase(repo)

	// Перенос в R2 на время, занятое Physics 201
	resp, err := uc.Execute(context.Background(), &Request{
		ID:    int64Ptr(1),
		Patch: Patch{RoomID: strPtr("R2"), Start: strPtr("14:00"), End: strPtr("15:00")},
	})

	require.ErrorIs(t, err, ErrNewConflict)
	require.NotNil(t, resp)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Physics 201", resp.Conflicts[0].SecondCourse)

	// Исходная запись не изменена
	assert.Nil(t, repo.updated)
}

func TestUseCase_Execute_MoveWithinSameRoomExcludesSelf(t *testing.T) {
	// Сдвиг записи на интервал, пересекающийся с её прежним местом:
	// перемещаемая запись не конфликтует сама с собой
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:    int64Ptr(1),
		Patch: Patch{Start: strPtr("09:30"), End: strPtr("10:30")},
	})

	require.NoError(t, err)
	assert.Equal(t, "09:30-10:30", resp.Schedule.TimeSlot)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{schedules: []*domain.Schedule{
		testSchedule(1, "R1", domain.Monday, "09:00", "10:00", "Math 101"),
	}})
	ctx := context.Background()

	// Ни ID, ни критериев
	_, err := uc.Execute(ctx, &Request{Patch: Patch{RoomID: strPtr("R2")}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Пустой патч
	_, err = uc.Execute(ctx, &Request{ID: int64Ptr(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Невалидное время в патче
	_, err = uc.Execute(ctx, &Request{ID: int64Ptr(1), Patch: Patch{Start: strPtr("25:00")}})
	assert.ErrorIs(t, err, ErrInvalidTime)

	// Патч, делающий интервал вырожденным
	_, err = uc.Execute(ctx, &Request{ID: int64Ptr(1), Patch: Patch{Start: strPtr("11:00"), End: strPtr("10:00")}})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
