package reallocate

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	Search(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	GetByRoomAndDay(ctx context.Context, roomID string, day domain.Weekday) ([]*domain.Schedule, error)
	Update(ctx context.Context, id int64, s *domain.Schedule) (*domain.Schedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
