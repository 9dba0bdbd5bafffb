package domain

import (
	"strings"
	"time"

	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// Schedule represents a single room booking in the weekly timetable
type Schedule struct {
	ID        int64
	RoomID    string
	Day       Weekday
	Date      *time.Time // Опциональная календарная дата (fallback к Day)
	StartTime types.TimeString
	EndTime   types.TimeString

	Course     string
	Department string
	Lecturer   string
	Year       string
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Span returns the booking interval in minutes since midnight.
func (s *Schedule) Span() (types.TimeSpan, error) {
	return types.NewTimeSpan(s.StartTime, s.EndTime)
}

// DurationMinutes returns the booking length in minutes (0 for invalid times).
func (s *Schedule) DurationMinutes() int {
	d := s.EndTime.Minutes() - s.StartTime.Minutes()
	if d < 0 {
		return 0
	}
	return d
}

// TimeSlot returns the "HH:MM-HH:MM" representation of the booking.
func (s *Schedule) TimeSlot() string {
	return string(s.StartTime) + "-" + string(s.EndTime)
}

// SameIdentity сравнивает записи по составному ключу (room, day, start, end, course)
// Используется для исключения перемещаемой записи из проверки конфликтов,
// когда первичный ключ недоступен
func (s *Schedule) SameIdentity(other *Schedule) bool {
	return s.RoomID == other.RoomID &&
		s.Day == other.Day &&
		s.StartTime == other.StartTime &&
		s.EndTime == other.EndTime &&
		s.Course == other.Course
}

// MatchesText проверяет вхождение подстроки (без учета регистра)
// в room_id, course, department или lecturer
func (s *Schedule) MatchesText(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.RoomID), q) ||
		strings.Contains(strings.ToLower(s.Course), q) ||
		strings.Contains(strings.ToLower(s.Department), q) ||
		strings.Contains(strings.ToLower(s.Lecturer), q)
}

// RoomDay пара (комната, день недели) - единица сканирования конфликтов
type RoomDay struct {
	RoomID string
	Day    Weekday
}

// ScheduleFilter частичные критерии поиска расписаний
// Незаполненные поля трактуются как wildcard
type ScheduleFilter struct {
	RoomID *string  // Точное совпадение room_id
	Day    *Weekday // Точное совпадение дня недели
	Course *string  // Точное совпадение курса
	Text   *string  // Подстрока в room_id/course/department/lecturer (без учета регистра)
}

// Matches проверяет запись по всем заполненным критериям фильтра
func (f ScheduleFilter) Matches(s *Schedule) bool {
	if f.RoomID != nil && *f.RoomID != "" && s.RoomID != *f.RoomID {
		return false
	}
	if f.Day != nil && *f.Day != "" && s.Day != *f.Day {
		return false
	}
	if f.Course != nil && *f.Course != "" && s.Course != *f.Course {
		return false
	}
	if f.Text != nil && *f.Text != "" && !s.MatchesText(*f.Text) {
		return false
	}
	return true
}

// IsEmpty reports whether no criteria are set (match-all filter).
func (f ScheduleFilter) IsEmpty() bool {
	return (f.RoomID == nil || *f.RoomID == "") &&
		(f.Day == nil || *f.Day == "") &&
		(f.Course == nil || *f.Course == "") &&
		(f.Text == nil || *f.Text == "")
}

// SchedulePatch частичное обновление записи расписания
// Применяются только заполненные поля, остальные сохраняют прежние значения
type SchedulePatch struct {
	RoomID     *string
	Day        *Weekday
	Date       *time.Time
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	Course     *string
	Department *string
	Lecturer   *string
	Year       *string
	Status     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p SchedulePatch) IsEmpty() bool {
	return p.RoomID == nil && p.Day == nil && p.Date == nil &&
		p.StartTime == nil && p.EndTime == nil && p.Course == nil &&
		p.Department == nil && p.Lecturer == nil && p.Year == nil && p.Status == nil
}

// ApplyTo возвращает копию записи с примененным патчем
// Исходная запись не изменяется
func (p SchedulePatch) ApplyTo(s *Schedule) Schedule {
	out := *s
	if p.RoomID != nil {
		out.RoomID = *p.RoomID
	}
	if p.Day != nil {
		out.Day = *p.Day
	}
	if p.Date != nil {
		out.Date = p.Date
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		out.EndTime = *p.EndTime
	}
	if p.Course != nil {
		out.Course = *p.Course
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	if p.Lecturer != nil {
		out.Lecturer = *p.Lecturer
	}
	if p.Year != nil {
		out.Year = *p.Year
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out
}
