package models

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модели

// ListConflictsRequest запрос на получение зафиксированных конфликтов
type ListConflictsRequest struct {
	RoomID   *string `json:"roomId,omitempty"`   // Фильтр по комнате (опционально)
	Day      *string `json:"day,omitempty"`      // Фильтр по дню недели (опционально)
	Severity *string `json:"severity,omitempty"` // Фильтр по серьезности (опционально)
}

// Response модели

// ConflictParticipantResponse участник конфликта
type ConflictParticipantResponse struct {
	ScheduleID int64  `json:"scheduleId"`
	Course     string `json:"course"`
	Department string `json:"department"`
	Lecturer   string `json:"lecturer"`
	TimeSlot   string `json:"timeSlot"` // "10:00-12:00"
}

// ConflictResponse ответ с данными зафиксированного конфликта
type ConflictResponse struct {
	ID             int64                       `json:"id"`
	RoomID         string                      `json:"roomId"`
	Day            string                      `json:"day"`
	Type           string                      `json:"type"`
	Severity       string                      `json:"severity"`
	First          ConflictParticipantResponse `json:"first"`
	Second         ConflictParticipantResponse `json:"second"`
	OverlapPeriod  string                      `json:"overlapPeriod"` // "11:00-12:00"
	OverlapMinutes int                         `json:"overlapMinutes"`
	Notified       bool                        `json:"notified"`
	DetectedAt     time.Time                   `json:"detectedAt"`
	LastDetectedAt time.Time                   `json:"lastDetectedAt"`
}

// ConflictListResponse ответ со списком конфликтов
type ConflictListResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
	Total     int                `json:"total"`
}

// Методы конвертации

// FromDomainConflict конвертирует domain модель в DTO
func FromDomainConflict(d *domain.DetectedConflict) *ConflictResponse {
	if d == nil {
		return nil
	}

	return &ConflictResponse{
		ID:             d.ID,
		RoomID:         d.Conflict.RoomID,
		Day:            string(d.Conflict.Day),
		Type:           string(d.Conflict.Type),
		Severity:       string(d.Conflict.Severity),
		First:          fromScheduleRef(d.Conflict.First),
		Second:         fromScheduleRef(d.Conflict.Second),
		OverlapPeriod:  d.Conflict.OverlapPeriod(),
		OverlapMinutes: d.Conflict.OverlapMinutes,
		Notified:       d.Notified,
		DetectedAt:     d.DetectedAt,
		LastDetectedAt: d.LastDetectedAt,
	}
}

// FromDomainConflictList конвертирует список domain моделей в DTO
func FromDomainConflictList(conflicts []*domain.DetectedConflict) *ConflictListResponse {
	resp := &ConflictListResponse{
		Conflicts: make([]ConflictResponse, 0, len(conflicts)),
	}

	for _, c := range conflicts {
		if item := FromDomainConflict(c); item != nil {
			resp.Conflicts = append(resp.Conflicts, *item)
		}
	}

	resp.Total = len(resp.Conflicts)
	return resp
}

func fromScheduleRef(r domain.ScheduleRef) ConflictParticipantResponse {
	return ConflictParticipantResponse{
		ScheduleID: r.ID,
		Course:     r.Course,
		Department: r.Department,
		Lecturer:   r.Lecturer,
		TimeSlot:   r.TimeSlot(),
	}
}
