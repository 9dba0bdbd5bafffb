package suggest_rooms

import (
	"context"

	suggestRooms "github.com/m04kA/EDU-SchedulingService/internal/usecase/suggest_rooms"
)

type SuggestRoomsUseCase interface {
	Execute(ctx context.Context, req *suggestRooms.Request) (*suggestRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
