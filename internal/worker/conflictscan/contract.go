package conflictscan

import (
	"context"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notifyservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListRoomDayPairs(ctx context.Context) ([]domain.RoomDay, error)
	GetByRoomAndDay(ctx context.Context, roomID string, day domain.Weekday) ([]*domain.Schedule, error)
}

// ConflictRepository интерфейс репозитория зафиксированных конфликтов
type ConflictRepository interface {
	UpsertByHash(ctx context.Context, c *domain.Conflict) (*domain.DetectedConflict, error)
	MarkNotified(ctx context.Context, id int64) error
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

// Notifier интерфейс клиента сервиса уведомлений
type Notifier interface {
	SendWithGracefulDegradation(ctx context.Context, n *notifyservice.ConflictNotification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
