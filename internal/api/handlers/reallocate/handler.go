package reallocate

import (
	"errors"
	"net/http"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	reallocateUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/reallocate"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные параметры запроса"
	msgInvalidTime  = "некорректный формат времени"
	msgInvalidRange = "некорректный временной интервал"
	msgNotFound     = "запись расписания не найдена"
	msgAmbiguous    = "критериям соответствует несколько записей, уточните запрос"
	msgNewConflict  = "целевой интервал конфликтует с существующим расписанием"
)

type Handler struct {
	useCase ReallocateUseCase
	logger  Logger
}

func NewHandler(useCase ReallocateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReallocateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Reallocate: невалидное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, reallocateUC.ErrAmbiguousMatch):
			h.logger.Warn("Reallocate: неоднозначное совпадение: %v", err)
			payload := &AmbiguousResponse{Message: msgAmbiguous}
			if resp != nil {
				payload.Candidates = scheduleInfos(resp.Candidates)
			}
			handlers.RespondJSON(w, http.StatusConflict, payload)
		case errors.Is(err, reallocateUC.ErrNewConflict):
			h.logger.Warn("Reallocate: конфликт целевого интервала: %v", err)
			payload := &ConflictResponse{Message: msgNewConflict}
			if resp != nil {
				payload.Conflicts = conflictInfos(resp.Conflicts)
			}
			handlers.RespondJSON(w, http.StatusConflict, payload)
		case errors.Is(err, reallocateUC.ErrScheduleNotFound):
			h.logger.Warn("Reallocate: запись не найдена: %v", err)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reallocateUC.ErrInvalidInput):
			h.logger.Warn("Reallocate: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, reallocateUC.ErrInvalidTime):
			h.logger.Warn("Reallocate: невалидное время: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, reallocateUC.ErrInvalidRange):
			h.logger.Warn("Reallocate: невалидный интервал: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("Reallocate: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("Reallocate: перенесена запись id=%d", resp.Schedule.ID)
	handlers.RespondJSON(w, http.StatusOK, &ReallocateResponse{Schedule: scheduleInfo(resp.Schedule)})
}
