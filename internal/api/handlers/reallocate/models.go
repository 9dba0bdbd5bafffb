package reallocate

import (
	"time"

	reallocateUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/reallocate"
)

// ReallocateRequest HTTP request model
// Цель задается либо id, либо критериями match
type ReallocateRequest struct {
	ID      *int64      `json:"id,omitempty"`
	Match   *MatchInfo  `json:"match,omitempty"`
	Changes ChangesInfo `json:"changes"`
}

// MatchInfo критерии идентификации переносимой записи
type MatchInfo struct {
	RoomID *string `json:"roomId,omitempty"`
	Day    *string `json:"day,omitempty"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	Course *string `json:"course,omitempty"`
	Text   *string `json:"text,omitempty"`
}

// ChangesInfo изменяемые поля записи
type ChangesInfo struct {
	RoomID     *string `json:"roomId,omitempty"`
	Day        *string `json:"day,omitempty"`
	Date       *string `json:"date,omitempty"`
	Start      *string `json:"start,omitempty"`
	End        *string `json:"end,omitempty"`
	Course     *string `json:"course,omitempty"`
	Department *string `json:"department,omitempty"`
	Lecturer   *string `json:"lecturer,omitempty"`
	Year       *string `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// ReallocateResponse HTTP response model при успешном переносе
type ReallocateResponse struct {
	Schedule ScheduleInfo `json:"schedule"`
}

// AmbiguousResponse HTTP response model при неоднозначном совпадении
type AmbiguousResponse struct {
	Message    string         `json:"message"`
	Candidates []ScheduleInfo `json:"candidates"`
}

// ConflictResponse HTTP response model при конфликте целевого интервала
type ConflictResponse struct {
	Message   string         `json:"message"`
	Conflicts []ConflictInfo `json:"conflicts"`
}

// ScheduleInfo запись расписания в HTTP ответе
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
func (r *ReallocateRequest) ToUseCaseRequest() *reallocateUC.Request {
	req := &reallocateUC.Request{
		ID: r.ID,
		Patch: reallocateUC.Patch{
			RoomID:     r.Changes.RoomID,
			Day:        r.Changes.Day,
			Date:       r.Changes.Date,
			Start:      r.Changes.Start,
			End:        r.Changes.End,
			Course:     r.Changes.Course,
			Department: r.Changes.Department,
			Lecturer:   r.Changes.Lecturer,
			Year:       r.Changes.Year,
			Status:     r.Changes.Status,
		},
	}

	if r.Match != nil {
		req.Criteria = &reallocateUC.Criteria{
			RoomID: r.Match.RoomID,
			Day:    r.Match.Day,
			Start:  r.Match.Start,
			End:    r.Match.End,
			Course: r.Match.Course,
			Text:   r.Match.Text,
		}
	}

	return req
}

func scheduleInfo(s reallocateUC.ScheduleInfo) ScheduleInfo {
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

func scheduleInfos(schedules []reallocateUC.ScheduleInfo) []ScheduleInfo {
	result := make([]ScheduleInfo, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, scheduleInfo(s))
	}
	return result
}

func conflictInfos(conflicts []reallocateUC.ConflictInfo) []ConflictInfo {
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
