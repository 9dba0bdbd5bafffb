package list_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	"github.com/m04kA/EDU-SchedulingService/internal/service/conflicts"
	"github.com/m04kA/EDU-SchedulingService/internal/service/conflicts/models"
)

const msgInvalidInput = "некорректные параметры запроса"

type Handler struct {
	service ConflictsService
	logger  Logger
}

func NewHandler(service ConflictsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListConflictsRequest{}
	if v := query.Get("room_id"); v != "" {
		req.RoomID = &v
	}
	if v := query.Get("day"); v != "" {
		req.Day = &v
	}
	if v := query.Get("severity"); v != "" {
		req.Severity = &v
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, conflicts.ErrInvalidInput):
			h.logger.Warn("ListConflicts: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("ListConflicts: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
