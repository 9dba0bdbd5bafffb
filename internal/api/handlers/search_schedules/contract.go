package search_schedules

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules/models"
)

type SchedulesService interface {
	Search(ctx context.Context, req *models.SearchSchedulesRequest) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
