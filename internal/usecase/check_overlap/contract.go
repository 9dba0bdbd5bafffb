package check_overlap

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByRoomAndDay(ctx context.Context, roomID string, day domain.Weekday) ([]*domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
