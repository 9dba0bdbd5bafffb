package check_overlap

import (
	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модель запроса на проверку пересечений
type Request struct {
	RoomID string  // ID комнаты
	Day    string  // День недели; может быть пустым, если указана дата
	Date   *string // Дата "YYYY-MM-DD" (опционально, для вывода дня недели)
	Start  *string // Начало проверяемого интервала "HH:MM" (опционально)
	End    *string // Конец проверяемого интервала "HH:MM" (опционально)
}

// HasCandidate проверяет, что в запросе задан интервал-кандидат
func (r *Request) HasCandidate() bool {
	return r.Start != nil && r.End != nil
}

// Response модель ответа с результатами анализа
type Response struct {
	RoomID             string         // Комната
	Day                string         // День недели (возможно, выведенный из даты)
	TotalSchedules     int            // Количество занятий комнаты в этот день
	Conflicts          []ConflictInfo // Попарные конфликты существующих занятий
	CandidateConflicts []ConflictInfo // Конфликты интервала-кандидата (если задан)
	FreeSlots          []SlotInfo     // Свободные окна в рамках рабочих часов
	TotalFreeMinutes   int            // Суммарное свободное время
	UtilizationPercent float64        // Занятость комнаты в процентах от рабочих часов
}

// ConflictInfo описание одного конфликта
type ConflictInfo struct {
	Type            string // exact_duplicate | partial_overlap
	Severity        string // Critical | High | Medium | Low
	FirstCourse     string
	FirstSlot       string // "09:00-10:30"
	SecondCourse    string
	SecondSlot      string
	OverlapPeriod   string // "10:00-10:30"
	OverlapMinutes  int
	OverlapDuration string // "30m"
}

// SlotInfo описание свободного окна
type SlotInfo struct {
	Start           string // "10:30"
	End             string // "14:00"
	DurationMinutes int
	Duration        string // "3h 30m"
}

// fromDomainConflict конвертирует domain конфликт в DTO
func fromDomainConflict(c domain.Conflict) ConflictInfo {
	return ConflictInfo{
		Type:            string(c.Type),
		Severity:        string(c.Severity),
		FirstCourse:     c.First.Course,
		FirstSlot:       c.First.TimeSlot(),
		SecondCourse:    c.Second.Course,
		SecondSlot:      c.Second.TimeSlot(),
		OverlapPeriod:   c.OverlapPeriod(),
		OverlapMinutes:  c.OverlapMinutes,
		OverlapDuration: c.OverlapDuration(),
	}
}

// fromDomainConflicts конвертирует список domain конфликтов в DTO
func fromDomainConflicts(conflicts []domain.Conflict) []ConflictInfo {
	result := make([]ConflictInfo, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, fromDomainConflict(c))
	}
	return result
}

// fromDomainFreeSlots конвертирует список свободных окон в DTO
func fromDomainFreeSlots(slots []domain.FreeSlot) []SlotInfo {
	result := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotInfo{
			Start:           s.Start.String(),
			End:             s.End.String(),
			DurationMinutes: s.DurationMinutes,
			Duration:        s.Duration(),
		})
	}
	return result
}
