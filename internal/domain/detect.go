package domain

import (
	"sort"

	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// BuildConflict строит конфликт двух занятий одной комнаты и дня.
// Второе значение false, если интервалы не пересекаются (стык "конец==начало"
// пересечением не считается) или времена некорректны
func BuildConflict(a, b *Schedule) (Conflict, bool) {
	spanA, err := a.Span()
	if err != nil {
		return Conflict{}, false
	}
	spanB, err := b.Span()
	if err != nil {
		return Conflict{}, false
	}

	overlap, ok := spanA.Intersect(spanB)
	if !ok {
		return Conflict{}, false
	}

	sameSpan := spanA.Equal(spanB)
	sameCourse := a.Course == b.Course

	shorter := spanA.DurationMinutes()
	if spanB.DurationMinutes() < shorter {
		shorter = spanB.DurationMinutes()
	}

	severity := ClassifySeverity(overlap.DurationMinutes(), shorter, sameSpan, sameCourse)

	conflictType := ConflictPartialOverlap
	if severity == SeverityCritical {
		conflictType = ConflictExactDuplicate
	}

	return Conflict{
		RoomID:         a.RoomID,
		Day:            a.Day,
		Type:           conflictType,
		Severity:       severity,
		First:          NewScheduleRef(a),
		Second:         NewScheduleRef(b),
		OverlapStart:   overlap.StartTime(),
		OverlapEnd:     overlap.EndTime(),
		OverlapMinutes: overlap.DurationMinutes(),
	}, true
}

// DetectConflicts попарно проверяет занятия одной комнаты и дня.
// Отсутствие конфликтов - нормальный результат (пустой срез, не ошибка)
func DetectConflicts(schedules []*Schedule) []Conflict {
	conflicts := make([]Conflict, 0)

	for i := 0; i < len(schedules); i++ {
		for j := i + 1; j < len(schedules); j++ {
			if c, ok := BuildConflict(schedules[i], schedules[j]); ok {
				conflicts = append(conflicts, c)
			}
		}
	}

	return conflicts
}

// DetectCandidateConflicts проверяет кандидата на вставку против существующих
// занятий, исключая запись с excludeID (перемещаемую при переносе; 0 - ничего
// не исключать). Кандидат всегда First в результирующих конфликтах
func DetectCandidateConflicts(candidate *Schedule, existing []*Schedule, excludeID int64) []Conflict {
	conflicts := make([]Conflict, 0)

	for _, s := range existing {
		if excludeID != 0 && s.ID == excludeID {
			continue
		}
		if c, ok := BuildConflict(candidate, s); ok {
			conflicts = append(conflicts, c)
		}
	}

	return conflicts
}

// MaxSeverity возвращает наивысшую серьезность в списке конфликтов
// Второе значение false для пустого списка
func MaxSeverity(conflicts []Conflict) (ConflictSeverity, bool) {
	if len(conflicts) == 0 {
		return "", false
	}

	max := conflicts[0].Severity
	for _, c := range conflicts[1:] {
		if c.Severity.Rank() > max.Rank() {
			max = c.Severity
		}
	}
	return max, true
}

// SplitBySeverity делит конфликты на блокирующие (серьезность >= threshold)
// и предупреждения
func SplitBySeverity(conflicts []Conflict, threshold ConflictSeverity) (blocking, warnings []Conflict) {
	blocking = make([]Conflict, 0)
	warnings = make([]Conflict, 0)

	for _, c := range conflicts {
		if c.Severity.AtLeast(threshold) {
			blocking = append(blocking, c)
		} else {
			warnings = append(warnings, c)
		}
	}
	return blocking, warnings
}

// ComputeFreeSlots дополняет занятия комнаты до окна рабочих часов.
// Занятия обрезаются границами окна, целиком вне окна - отбрасываются.
// Алгоритм с курсором устойчив к пересекающимся и дублирующимся занятиям:
// слоты нулевой или отрицательной длины не порождаются
func ComputeFreeSlots(schedules []*Schedule, window types.TimeSpan) []FreeSlot {
	busy := make([]types.TimeSpan, 0, len(schedules))
	for _, s := range schedules {
		span, err := s.Span()
		if err != nil {
			continue
		}
		clipped, ok := span.ClipTo(window)
		if !ok {
			continue
		}
		busy = append(busy, clipped)
	}

	sortSpansByStart(busy)

	slots := make([]FreeSlot, 0)
	cursor := window.Start

	for _, b := range busy {
		if b.Start > cursor {
			slots = append(slots, newFreeSlot(cursor, b.Start))
		}
		if b.End > cursor {
			cursor = b.End
		}
	}

	if cursor < window.End {
		slots = append(slots, newFreeSlot(cursor, window.End))
	}

	return slots
}

// TotalFreeMinutes суммирует длительности свободных слотов
func TotalFreeMinutes(slots []FreeSlot) int {
	total := 0
	for _, s := range slots {
		total += s.DurationMinutes
	}
	return total
}

// HasAccommodatingSlot проверяет, что хотя бы один свободный слот целиком
// вмещает запрошенный интервал
func HasAccommodatingSlot(slots []FreeSlot, request types.TimeSpan) bool {
	for _, s := range slots {
		span := types.TimeSpan{Start: s.Start.Minutes(), End: s.End.Minutes()}
		if span.Contains(request) {
			return true
		}
	}
	return false
}

func newFreeSlot(start, end int) FreeSlot {
	span := types.TimeSpan{Start: start, End: end}
	return FreeSlot{
		Start:           span.StartTime(),
		End:             span.EndTime(),
		DurationMinutes: span.DurationMinutes(),
	}
}

func sortSpansByStart(spans []types.TimeSpan) {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
}
