package get_room_schedules

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules/models"
)

type SchedulesService interface {
	GetRoomSchedules(ctx context.Context, req *models.GetRoomSchedulesRequest) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
