package check_overlap

import (
	"context"

	checkOverlap "github.com/m04kA/EDU-SchedulingService/internal/usecase/check_overlap"
)

type CheckOverlapUseCase interface {
	Execute(ctx context.Context, req *checkOverlap.Request) (*checkOverlap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
