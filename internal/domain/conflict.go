package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// ConflictSeverity qualitative ranking of how serious a detected overlap is
type ConflictSeverity string

const (
	SeverityCritical ConflictSeverity = "Critical" // Точный дубль: идентичный интервал и курс
	SeverityHigh     ConflictSeverity = "High"     // Пересечение >= 50% более короткого занятия
	SeverityMedium   ConflictSeverity = "Medium"   // Пересечение >= 15 минут
	SeverityLow      ConflictSeverity = "Low"      // Пересечение < 15 минут
)

// ParseSeverity парсит уровень серьезности без учета регистра
func ParseSeverity(s string) (ConflictSeverity, error) {
	for _, v := range []ConflictSeverity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow} {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid severity %q", s)
}

// Rank returns a numeric order for comparisons (Low=1 .. Critical=4, unknown=0).
func (s ConflictSeverity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as other or more.
func (s ConflictSeverity) AtLeast(other ConflictSeverity) bool {
	return s.Rank() >= other.Rank()
}

// ConflictType вид конфликта
type ConflictType string

const (
	ConflictExactDuplicate ConflictType = "exact_duplicate"
	ConflictPartialOverlap ConflictType = "partial_overlap"
)

// ScheduleRef краткое описание участника конфликта
type ScheduleRef struct {
	ID         int64
	Course     string
	Department string
	Lecturer   string
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// TimeSlot returns the "HH:MM-HH:MM" representation.
func (r ScheduleRef) TimeSlot() string {
	return string(r.StartTime) + "-" + string(r.EndTime)
}

// NewScheduleRef создает ScheduleRef из записи расписания
func NewScheduleRef(s *Schedule) ScheduleRef {
	return ScheduleRef{
		ID:         s.ID,
		Course:     s.Course,
		Department: s.Department,
		Lecturer:   s.Lecturer,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

// Conflict is a derived, ephemeral record of two overlapping bookings.
// Produced only as a query result, never persisted directly (see DetectedConflict).
type Conflict struct {
	RoomID         string
	Day            Weekday
	Type           ConflictType
	Severity       ConflictSeverity
	First          ScheduleRef
	Second         ScheduleRef
	OverlapStart   types.TimeString
	OverlapEnd     types.TimeString
	OverlapMinutes int
}

// OverlapPeriod returns the "HH:MM-HH:MM" representation of the overlap.
func (c Conflict) OverlapPeriod() string {
	return string(c.OverlapStart) + "-" + string(c.OverlapEnd)
}

// OverlapDuration returns the formatted overlap length ("1h 30m").
func (c Conflict) OverlapDuration() string {
	return types.FormatDuration(c.OverlapMinutes)
}

// Hash возвращает стабильный идентификатор конфликта, не зависящий от порядка
// участников. Используется сканером для дедупликации уведомлений.
func (c Conflict) Hash() string {
	courses := []string{c.First.Course, c.Second.Course}
	sort.Strings(courses)
	slots := []string{c.First.TimeSlot(), c.Second.TimeSlot()}
	sort.Strings(slots)

	raw := fmt.Sprintf("%s_%s_%s_%s_%s_%s", c.RoomID, c.Day, courses[0], courses[1], slots[0], slots[1])
	raw = strings.ReplaceAll(raw, " ", "_")
	return strings.ReplaceAll(raw, ":", "")
}

// ClassifySeverity применяет политику классификации конфликтов:
// Critical - идентичный интервал и идентичный курс (точный дубль брони);
// High - пересечение покрывает больше половины более короткого занятия;
// Medium - пересечение не менее 15 минут, но ниже порога High;
// Low - пересечение короче 15 минут.
func ClassifySeverity(overlapMinutes, shorterMinutes int, sameSpan, sameCourse bool) ConflictSeverity {
	if sameSpan && sameCourse {
		return SeverityCritical
	}
	if shorterMinutes > 0 && overlapMinutes*100 > shorterMinutes*HighOverlapRatioPercent {
		return SeverityHigh
	}
	if overlapMinutes >= MediumOverlapMinutes {
		return SeverityMedium
	}
	return SeverityLow
}

// DetectedConflict конфликт, зафиксированный фоновым сканером
type DetectedConflict struct {
	ID             int64
	Hash           string
	Conflict       Conflict
	DetectedAt     time.Time
	LastDetectedAt time.Time
	Notified       bool
}

// ConflictFilter фильтр выборки зафиксированных конфликтов
type ConflictFilter struct {
	RoomID   *string
	Day      *Weekday
	Severity *ConflictSeverity
}
