package reallocate

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модель запроса на перенос записи расписания
// Цель идентифицируется первичным ключом (ID), а при его отсутствии -
// частичными критериями, зафиксированными при выборе записи
type Request struct {
	ID       *int64    // Первичный ключ цели, если известен
	Criteria *Criteria // Критерии поиска цели (когда ID недоступен)
	Patch    Patch     // Изменяемые поля; минимум одно обязательно
}

// Criteria частичные критерии идентификации цели
// Заполненные поля должны совпасть все сразу; пустые трактуются как wildcard
type Criteria struct {
	RoomID *string // Точное совпадение комнаты
	Day    *string // Точное совпадение дня недели
	Start  *string // Точное совпадение времени начала "HH:MM"
	End    *string // Точное совпадение времени конца "HH:MM"
	Course *string // Точное совпадение курса
	Text   *string // Подстрока в room/course/department/lecturer
}

// IsEmpty проверяет, что ни один критерий не задан
func (c *Criteria) IsEmpty() bool {
	if c == nil {
		return true
	}
	return isBlank(c.RoomID) && isBlank(c.Day) && isBlank(c.Start) &&
		isBlank(c.End) && isBlank(c.Course) && isBlank(c.Text)
}

// Patch частичное обновление: применяются только заполненные поля
type Patch struct {
	RoomID     *string
	Day        *string
	Date       *string // "YYYY-MM-DD"
	Start      *string // "HH:MM"
	End        *string // "HH:MM"
	Course     *string
	Department *string
	Lecturer   *string
	Year       *string
	Status     *string
}

// IsEmpty проверяет, что патч не меняет ничего
func (p *Patch) IsEmpty() bool {
	return p.RoomID == nil && p.Day == nil && p.Date == nil &&
		p.Start == nil && p.End == nil && p.Course == nil &&
		p.Department == nil && p.Lecturer == nil && p.Year == nil && p.Status == nil
}

// Response модель ответа
// При ErrAmbiguousMatch заполнены Candidates, при ErrNewConflict - Conflicts,
// при успехе - Schedule
type Response struct {
	Schedule   ScheduleInfo   // Обновленная запись (при успехе)
	Candidates []ScheduleInfo // Кандидаты при неоднозначном совпадении
	Conflicts  []ConflictInfo // Конфликты целевого интервала
}

// ScheduleInfo запись расписания
type ScheduleInfo struct {
	ID         int64
	RoomID     string
	Day        string
	Date       *string
	StartTime  string
	EndTime    string
	TimeSlot   string
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
	Type            string
	Severity        string
	FirstCourse     string
	FirstSlot       string
	SecondCourse    string
	SecondSlot      string
	OverlapPeriod   string
	OverlapMinutes  int
	OverlapDuration string
}

// fromDomainSchedule конвертирует запись расписания в DTO
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

// fromDomainSchedules конвертирует список записей в DTO
func fromDomainSchedules(schedules []*domain.Schedule) []ScheduleInfo {
	result := make([]ScheduleInfo, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, fromDomainSchedule(s))
	}
	return result
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

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
