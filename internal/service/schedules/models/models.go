package models

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модели

// SearchSchedulesRequest запрос на поиск записей расписания
type SearchSchedulesRequest struct {
	RoomID  *string `json:"roomId,omitempty"`  // Точное совпадение комнаты (опционально)
	Day     *string `json:"day,omitempty"`     // Точное совпадение дня недели (опционально)
	Course  *string `json:"course,omitempty"`  // Точное совпадение курса (опционально)
	Text    *string `json:"q,omitempty"`       // Подстрока в room/course/department/lecturer (опционально)
	Page    int     `json:"page"`
	PerPage int     `json:"perPage"`
}

// GetRoomSchedulesRequest запрос расписания одной комнаты
type GetRoomSchedulesRequest struct {
	RoomID  string  `json:"roomId"`
	Day     *string `json:"day,omitempty"` // Фильтр по дню недели (опционально)
	Page    int     `json:"page"`
	PerPage int     `json:"perPage"`
}

// Response модели

// ScheduleResponse ответ с данными записи расписания
type ScheduleResponse struct {
	ID         int64   `json:"id"`
	RoomID     string  `json:"roomId"`
	Day        string  `json:"day"`
	Date       *string `json:"date,omitempty"` // "2026-09-01"
	StartTime  string  `json:"startTime"`      // "10:00"
	EndTime    string  `json:"endTime"`        // "12:00"
	TimeSlot   string  `json:"timeSlot"`       // "10:00-12:00"
	Course     string  `json:"course"`
	Department string  `json:"department"`
	Lecturer   string  `json:"lecturer"`
	Year       string  `json:"year"`
	Status     string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pagination сведения о постраничной выборке
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// ScheduleListResponse ответ со списком записей расписания
type ScheduleListResponse struct {
	Schedules  []ScheduleResponse `json:"schedules"`
	Pagination Pagination         `json:"pagination"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:         s.ID,
		RoomID:     s.RoomID,
		Day:        string(s.Day),
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		TimeSlot:   s.TimeSlot(),
		Course:     s.Course,
		Department: s.Department,
		Lecturer:   s.Lecturer,
		Year:       s.Year,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	if s.Date != nil {
		dateStr := s.Date.Format(domain.DateFormat)
		resp.Date = &dateStr
	}

	return resp
}

// FromDomainScheduleList конвертирует срез записей в постраничный DTO
// Записи за пределами запрошенной страницы отбрасываются
func FromDomainScheduleList(schedules []*domain.Schedule, page, perPage int) *ScheduleListResponse {
	total := len(schedules)
	pageItems := PageSlice(schedules, page, perPage)

	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(pageItems)),
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalItems: total,
			TotalPages: TotalPages(total, perPage),
		},
	}

	for _, s := range pageItems {
		if item := FromDomainSchedule(s); item != nil {
			resp.Schedules = append(resp.Schedules, *item)
		}
	}

	return resp
}

// NormalizePageParams приводит параметры пагинации к допустимым значениям:
// page минимум 1, perPage по умолчанию 10 и не больше maxPerPage
func NormalizePageParams(page, perPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = domain.DefaultPageSize
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// TotalPages считает количество страниц для total элементов
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// PageSlice возвращает элементы запрошенной страницы
// Для страницы за пределами выборки возвращает пустой срез
func PageSlice[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
