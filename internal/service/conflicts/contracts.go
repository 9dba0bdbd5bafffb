package conflicts

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// ConflictRepository интерфейс репозитория зафиксированных конфликтов
type ConflictRepository interface {
	List(ctx context.Context, filter domain.ConflictFilter) ([]*domain.DetectedConflict, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
