package suggest_rooms

import (
	"net/url"
	"strconv"

	suggestRooms "github.com/m04kA/EDU-SchedulingService/internal/usecase/suggest_rooms"
)

// SuggestRoomsResponse HTTP response model
type SuggestRoomsResponse struct {
	Day             string               `json:"day"`
	Start           string               `json:"start"`
	End             string               `json:"end"`
	Suggestions     []SuggestionInfo     `json:"suggestions"`
	ConflictedRooms []ConflictedRoomInfo `json:"conflictedRooms"`
	Pagination      PaginationInfo       `json:"pagination"`
}

// SuggestionInfo подходящая комната в HTTP ответе
type SuggestionInfo struct {
	RoomID           string     `json:"roomId"`
	Department       string     `json:"department,omitempty"`
	FreeSlots        []SlotInfo `json:"freeSlots"`
	TotalFreeMinutes int        `json:"totalFreeMinutes"`
	TotalFreeTime    string     `json:"totalFreeTime"`
	TotalSchedules   int        `json:"totalSchedules"`
}

// ConflictedRoomInfo комната, где запрошенный интервал не помещается
type ConflictedRoomInfo struct {
	RoomID     string                  `json:"roomId"`
	Department string                  `json:"department,omitempty"`
	Conflict   ConflictingScheduleInfo `json:"conflict"`
}

// ConflictingScheduleInfo занятие, мешающее запрошенному интервалу
type ConflictingScheduleInfo struct {
	Course     string `json:"course"`
	Department string `json:"department,omitempty"`
	TimeSlot   string `json:"timeSlot"`
}

// SlotInfo описание свободного окна
type SlotInfo struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
	Duration        string `json:"duration"`
}

// PaginationInfo параметры страницы в HTTP ответе
type PaginationInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// ParseQuery собирает модель запроса use case из query-параметров
func ParseQuery(query url.Values) *suggestRooms.Request {
	req := &suggestRooms.Request{
		Day:   query.Get("day"),
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("department"); v != "" {
		req.Department = &v
	}
	if v := query.Get("room_id"); v != "" {
		req.RoomID = &v
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestRooms.Response) *SuggestRoomsResponse {
	suggestions := make([]SuggestionInfo, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		slots := make([]SlotInfo, 0, len(s.FreeSlots))
		for _, f := range s.FreeSlots {
			slots = append(slots, SlotInfo{
				Start:           f.Start,
				End:             f.End,
				DurationMinutes: f.DurationMinutes,
				Duration:        f.Duration,
			})
		}
		suggestions = append(suggestions, SuggestionInfo{
			RoomID:           s.RoomID,
			Department:       s.Department,
			FreeSlots:        slots,
			TotalFreeMinutes: s.TotalFreeMinutes,
			TotalFreeTime:    s.TotalFreeTime,
			TotalSchedules:   s.TotalSchedules,
		})
	}

	conflicted := make([]ConflictedRoomInfo, 0, len(resp.ConflictedRooms))
	for _, c := range resp.ConflictedRooms {
		conflicted = append(conflicted, ConflictedRoomInfo{
			RoomID:     c.RoomID,
			Department: c.Department,
			Conflict: ConflictingScheduleInfo{
				Course:     c.Conflict.Course,
				Department: c.Conflict.Department,
				TimeSlot:   c.Conflict.TimeSlot,
			},
		})
	}

	return &SuggestRoomsResponse{
		Day:             resp.Day,
		Start:           resp.Start,
		End:             resp.End,
		Suggestions:     suggestions,
		ConflictedRooms: conflicted,
		Pagination: PaginationInfo{
			Page:       resp.Page,
			PerPage:    resp.PerPage,
			TotalItems: resp.TotalItems,
			TotalPages: resp.TotalPages,
		},
	}
}
