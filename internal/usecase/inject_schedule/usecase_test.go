package inject_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

type fakeScheduleRepo struct {
	existing []*domain.Schedule
	created  *domain.Schedule
	nextID   int64
}

func (f *fakeScheduleRepo) GetByRoomAndDay(_ context.Context, _ string, _ domain.Weekday) ([]*domain.Schedule, error) {
	return f.existing, nil
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	out := *s
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

// passthroughTxManager выполняет функцию без настоящей транзакции
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

func testSchedule(id int64, start, end, course string) *domain.Schedule {
	return &domain.Schedule{
		ID:        id,
		RoomID:    "R1",
		Day:       domain.Monday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Course:    course,
		Status:    domain.DefaultStatus,
	}
}

func newTestUseCase(repo *fakeScheduleRepo) *UseCase {
	return NewUseCase(repo, passthroughTxManager{}, domain.SeverityMedium, nopLogger{})
}

func strPtr(s string) *string {
	return &s
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeScheduleRepo{nextID: 42}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:     "R1",
		Day:        "Monday",
		Start:      "10:00",
		End:        "12:00",
		Course:     "Math 101",
		Department: "Mathematics",
		Lecturer:   "Dr. Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Schedule.ID)
	assert.Equal(t, "R1", resp.Schedule.RoomID)
	assert.Equal(t, "Monday", resp.Schedule.Day)
	assert.Equal(t, "10:00-12:00", resp.Schedule.TimeSlot)
	assert.Equal(t, domain.DefaultStatus, resp.Schedule.Status)
	assert.Empty(t, resp.Warnings)
	require.NotNil(t, repo.created)
}

func TestUseCase_Execute_LenientTimeForms(t *testing.T) {
	// Исторические выгрузки присылают время без разделителя и с точкой
	repo := &fakeScheduleRepo{nextID: 11}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "R1",
		Day:    "Monday",
		Start:  "830",
		End:    "10.30",
		Course: "Math 101",
	})

	require.NoError(t, err)
	assert.Equal(t, "08:30-10:30", resp.Schedule.TimeSlot)
	require.NotNil(t, repo.created)
	assert.Equal(t, "08:30", repo.created.StartTime.String())
	assert.Equal(t, "10:30", repo.created.EndTime.String())
}

func TestUseCase_Execute_BlockingConflict(t *testing.T) {
	repo := &fakeScheduleRepo{existing: []*domain.Schedule{
		testSchedule(1, "09:00", "11:00", "Physics 201"),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "R1",
		Day:    "Monday",
		Start:  "10:00",
		End:    "12:00",
		Course: "Math 101",
	})

	require.ErrorIs(t, err, ErrConflict)
	// Список блокирующих конфликтов возвращается рядом с ошибкой
	require.NotNil(t, resp)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Physics 201", resp.Conflicts[0].SecondCourse)
	assert.Equal(t, "10:00-11:00", resp.Conflicts[0].OverlapPeriod)

	// Запись не создается
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_LowSeverityWarns(t *testing.T) {
	// Пересечение 10 минут - ниже порога Medium, создание проходит
	repo := &fakeScheduleRepo{
		nextID: 7,
		existing: []*domain.Schedule{
			testSchedule(1, "09:00", "10:10", "Physics 201"),
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "R1",
		Day:    "Monday",
		Start:  "10:00",
		End:    "12:00",
		Course: "Math 101",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Schedule.ID)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "Low", resp.Warnings[0].Severity)
	assert.Equal(t, 10, resp.Warnings[0].OverlapMinutes)
}

func TestUseCase_Execute_BackToBackSucceeds(t *testing.T) {
	repo := &fakeScheduleRepo{
		nextID: 8,
		existing: []*domain.Schedule{
			testSchedule(1, "09:00", "10:00", "Physics 201"),
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "R1",
		Day:    "Monday",
		Start:  "10:00",
		End:    "11:00",
		Course: "Math 101",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
}

func TestUseCase_Execute_DayInferredFromDate(t *testing.T) {
	repo := &fakeScheduleRepo{nextID: 9}
	uc := newTestUseCase(repo)

	// 2026-09-01 - вторник
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: "R1",
		Date:   strPtr("2026-09-01"),
		Start:  "10:00",
		End:    "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Tuesday", resp.Schedule.Day)
	require.NotNil(t, resp.Schedule.Date)
	assert.Equal(t, "2026-09-01", *resp.Schedule.Date)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Day: "Monday", Start: "10:00", End: "11:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{RoomID: "R1", Day: "Monday"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{RoomID: "R1", Day: "Monday", Start: "11:00", End: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(ctx, &Request{RoomID: "R1", Date: strPtr("not-a-date"), Start: "10:00", End: "11:00"})
	assert.ErrorIs(t, err, ErrInvalidTime)
}
