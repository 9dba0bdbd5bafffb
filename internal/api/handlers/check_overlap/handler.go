package check_overlap

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	checkOverlap "github.com/m04kA/EDU-SchedulingService/internal/usecase/check_overlap"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные параметры запроса"
	msgInvalidTime  = "некорректный формат времени"
	msgInvalidRange = "некорректный временной интервал"
)

type Handler struct {
	useCase CheckOverlapUseCase
	logger  Logger
}

func NewHandler(useCase CheckOverlapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/days/{day}/overlap-check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID := vars["roomId"]
	day := vars["day"]

	// Тело опционально: без него проверяются только существующие записи
	var req CheckOverlapRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("CheckOverlap: невалидное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(roomID, day))
	if err != nil {
		switch {
		case errors.Is(err, checkOverlap.ErrInvalidInput):
			h.logger.Warn("CheckOverlap: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, checkOverlap.ErrInvalidTime):
			h.logger.Warn("CheckOverlap: невалидное время: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, checkOverlap.ErrInvalidRange):
			h.logger.Warn("CheckOverlap: невалидный интервал: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("CheckOverlap: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
