package inject_schedule

import (
	"time"

	injectSchedule "github.com/m04kA/EDU-SchedulingService/internal/usecase/inject_schedule"
)

// InjectScheduleRequest HTTP request model
type InjectScheduleRequest struct {
	RoomID     string  `json:"roomId"`
	Day        string  `json:"day,omitempty"`
	Date       *string `json:"date,omitempty"` // "2026-09-01"
	Start      string  `json:"start"`          // "10:00"
	End        string  `json:"end"`            // "12:00"
	Course     string  `json:"course,omitempty"`
	Department string  `json:"department,omitempty"`
	Lecturer   string  `json:"lecturer,omitempty"`
	Year       string  `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// InjectScheduleResponse HTTP response model при успешном создании
type InjectScheduleResponse struct {
	Schedule ScheduleInfo   `json:"schedule"`
	Warnings []ConflictInfo `json:"warnings,omitempty"`
}

// ConflictResponse HTTP response model при блокирующем конфликте
type ConflictResponse struct {
	Message   string         `json:"message"`
	Conflicts []ConflictInfo `json:"conflicts"`
}

// ScheduleInfo созданная запись расписания
type ScheduleInfo struct {
	ID         int64     `json:"id"`
	RoomID     string    `json:"roomId"`
	Day        string    `json:"day"`
	Date       *string   `json:"date,omitempty"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TimeSlot   string    `json:"timeSlot"`
	Course     string    `json:"course,omitempty"`
	Department string    `json:"department,omitempty"`
	Lecturer   string    `json:"lecturer,omitempty"`
	Year       string    `json:"year,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ConflictInfo описание конфликта в HTTP ответе
type ConflictInfo struct {
	Type            string `json:"type"`
	Severity        string `json:"severity"`
	FirstCourse     string `json:"firstCourse"`
	FirstSlot       string `json:"firstSlot"`
	SecondCourse    string `json:"secondCourse"`
	SecondSlot      string `json:"secondSlot"`
	OverlapPeriod   string `json:"overlapPeriod"`
	OverlapMinutes  int    `json:"overlapMinutes"`
	OverlapDuration string `json:"overlapDuration"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InjectScheduleRequest) ToUseCaseRequest() *injectSchedule.Request {
	return &injectSchedule.Request{
		RoomID:     r.RoomID,
		Day:        r.Day,
		Date:       r.Date,
		Start:      r.Start,
		End:        r.End,
		Course:     r.Course,
		Department: r.Department,
		Lecturer:   r.Lecturer,
		Year:       r.Year,
		Status:     r.Status,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *injectSchedule.Response) *InjectScheduleResponse {
	return &InjectScheduleResponse{
		Schedule: scheduleInfo(resp.Schedule),
		Warnings: conflictInfos(resp.Warnings),
	}
}

func scheduleInfo(s injectSchedule.ScheduleInfo) ScheduleInfo {
	return ScheduleInfo{
		ID:         s.ID,
		RoomID:     s.RoomID,
		Day:        s.Day,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		TimeSlot:   s.TimeSlot,
		Course:     s.Course,
		Department: s.Department,
		Lecturer:   s.Lecturer,
		Year:       s.Year,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func conflictInfos(conflicts []injectSchedule.ConflictInfo) []ConflictInfo {
	if len(conflicts) == 0 {
		return nil
	}
	result := make([]ConflictInfo, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, ConflictInfo{
			Type:            c.Type,
			Severity:        c.Severity,
			FirstCourse:     c.FirstCourse,
			FirstSlot:       c.FirstSlot,
			SecondCourse:    c.SecondCourse,
			SecondSlot:      c.SecondSlot,
			OverlapPeriod:   c.OverlapPeriod,
			OverlapMinutes:  c.OverlapMinutes,
			OverlapDuration: c.OverlapDuration,
		})
	}
	return result
}
