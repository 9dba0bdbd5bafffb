package inject_schedule

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модель запроса на создание записи расписания
type Request struct {
	RoomID     string  // ID комнаты
	Day        string  // День недели; может быть пустым, если указана дата
	Date       *string // Дата "YYYY-MM-DD" (опционально)
	Start      string  // Начало занятия "HH:MM"
	End        string  // Конец занятия "HH:MM"
	Course     string  // Курс (опционально)
	Department string  // Факультет (опционально)
	Lecturer   string  // Преподаватель (опционально)
	Year       string  // Год/уровень обучения (опционально)
	Status     *string // Статус; по умолчанию "Booked"
}

// Response модель ответа
// При ErrConflict поле Conflicts заполнено списком блокирующих конфликтов,
// а Schedule пуст. При успехе Warnings содержит неблокирующие пересечения
type Response struct {
	Schedule  ScheduleInfo   // Созданная запись (при успехе)
	Warnings  []ConflictInfo // Пересечения ниже порога блокировки
	Conflicts []ConflictInfo // Блокирующие конфликты (при ErrConflict)
}

// ScheduleInfo созданная запись расписания
type ScheduleInfo struct {
	ID         int64
	RoomID     string
	Day        string
	Date       *string // "2026-09-01"
	StartTime  string
	EndTime    string
	TimeSlot   string // "10:00-12:00"
	Course     string
	Department string
	Lecturer   string
	Year       string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ConflictInfo описание одного конфликта
type ConflictInfo struct {
	Type            string // exact_duplicate | partial_overlap
	Severity        string // Critical | High | Medium | Low
	FirstCourse     string
	FirstSlot       string
	SecondCourse    string
	SecondSlot      string
	OverlapPeriod   string
	OverlapMinutes  int
	OverlapDuration string
}

// fromDomainSchedule конвертирует созданную запись в DTO
func fromDomainSchedule(s *domain.Schedule) ScheduleInfo {
	info := ScheduleInfo{
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
		info.Date = &dateStr
	}

	return info
}

// fromDomainConflicts конвертирует список domain конфликтов в DTO
func fromDomainConflicts(conflicts []domain.Conflict) []ConflictInfo {
	result := make([]ConflictInfo, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, ConflictInfo{
			Type:            string(c.Type),
			Severity:        string(c.Severity),
			FirstCourse:     c.First.Course,
			FirstSlot:       c.First.TimeSlot(),
			SecondCourse:    c.Second.Course,
			SecondSlot:      c.Second.TimeSlot(),
			OverlapPeriod:   c.OverlapPeriod(),
			OverlapMinutes:  c.OverlapMinutes,
			OverlapDuration: c.OverlapDuration(),
		})
	}
	return result
}
