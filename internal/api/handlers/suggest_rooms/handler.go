package suggest_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	suggestRooms "github.com/m04kA/EDU-SchedulingService/internal/usecase/suggest_rooms"
)

const (
	msgInvalidInput = "некорректные параметры запроса"
	msgInvalidTime  = "некорректный формат времени"
	msgInvalidRange = "некорректный временной интервал"
)

type Handler struct {
	useCase SuggestRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/suggestions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ParseQuery(r.URL.Query())

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, suggestRooms.ErrInvalidInput):
			h.logger.Warn("SuggestRooms: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, suggestRooms.ErrInvalidTime):
			h.logger.Warn("SuggestRooms: невалидное время: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, suggestRooms.ErrInvalidRange):
			h.logger.Warn("SuggestRooms: невалидный интервал: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("SuggestRooms: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
