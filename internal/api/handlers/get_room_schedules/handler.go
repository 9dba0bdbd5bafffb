package get_room_schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules"
	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules/models"
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

// Handle GET /api/v1/rooms/{roomId}/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	req := &models.GetRoomSchedulesRequest{
		RoomID: vars["roomId"],
	}
	if v := query.Get("day"); v != "" {
		req.Day = &v
	}
	if v := query.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			req.Page = page
		}
	}
	if v := query.Get("per_page"); v != "" {
		if perPage, err := strconv.Atoi(v); err == nil {
			req.PerPage = perPage
		}
	}

	resp, err := h.service.GetRoomSchedules(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidDay):
			h.logger.Warn("GetRoomSchedules: невалидный день недели: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDay)
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GetRoomSchedules: невалидные параметры: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GetRoomSchedules: внутренняя ошибка: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
