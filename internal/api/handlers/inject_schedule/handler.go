package inject_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	injectSchedule "github.com/m04kA/EDU-SchedulingService/internal/usecase/inject_schedule"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные параметры запроса"
	msgInvalidTime  = "некорректный формат времени"
	msgInvalidRange = "некорректный временной интервал"
	msgConflict     = "запись конфликтует с существующим расписанием"
)

type Handler struct {
	useCase InjectScheduleUseCase
	logger  Logger
}

func NewHandler(useCase InjectScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InjectScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("InjectSchedule: невалидное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, injectSchedule.ErrConflict):
			h.logger.Warn("InjectSchedule: блокирующий конфликт в комнате %s: %v", req.RoomID, err)
			payload := &ConflictResponse{Message: msgConflict}
			if resp != nil {
				payload.Conflicts = conflictInfos(resp.Conflicts)
			}
			handlers.RespondJSON(w, http.StatusConflict, payload)
		case errors.Is(err, injectSchedule.ErrInvalidInput):
			h.logger.Warn("InjectSchedule: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, injectSchedule.ErrInvalidTime):
			h.logger.Warn("InjectSchedule: невалидное время: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, injectSchedule.ErrInvalidRange):
			h.logger.Warn("InjectSchedule: невалидный интервал: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("InjectSchedule: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("InjectSchedule: создана запись id=%d комната=%s", resp.Schedule.ID, resp.Schedule.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
