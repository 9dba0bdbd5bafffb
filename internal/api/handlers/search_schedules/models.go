package search_schedules

import (
	"net/url"
	"strconv"

	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules/models"
)

// ParseQuery собирает модель запроса сервиса из query-параметров
func ParseQuery(query url.Values) *models.SearchSchedulesRequest {
	req := &models.SearchSchedulesRequest{}

	if v := query.Get("room_id"); v != "" {
		req.RoomID = &v
	}
	if v := query.Get("day"); v != "" {
		req.Day = &v
	}
	if v := query.Get("course"); v != "" {
		req.Course = &v
	}
	if v := query.Get("q"); v != "" {
		req.Text = &v
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

	return req
}
