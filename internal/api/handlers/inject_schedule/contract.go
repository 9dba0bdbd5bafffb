package inject_schedule

import (
	"context"

	injectSchedule "github.com/m04kA/EDU-SchedulingService/internal/usecase/inject_schedule"
)

type InjectScheduleUseCase interface {
	Execute(ctx context.Context, req *injectSchedule.Request) (*injectSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
