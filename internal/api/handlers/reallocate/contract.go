package reallocate

import (
	"context"

	reallocateUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/reallocate"
)

type ReallocateUseCase interface {
	Execute(ctx context.Context, req *reallocateUC.Request) (*reallocateUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
