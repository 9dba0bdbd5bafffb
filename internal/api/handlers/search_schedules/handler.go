package search_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules"
)

const (
	msgInvalidInput = "некорректные параметры запроса"
	msgInvalidDay   = "некорректный день недели"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ParseQuery(r.URL.Query())

	resp, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidDay):
			h.logger.Warn("SearchSchedules: невалидный день недели: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDay)
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("SearchSchedules: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("SearchSchedules: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
