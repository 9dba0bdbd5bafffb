package suggest_rooms

import (
	"strings"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// evaluateRoom оценивает одну комнату против запрошенного интервала.
// Комната подходит, если хотя бы один свободный слот целиком вмещает интервал.
// Для неподходящей комнаты фиксируется первое занятие, пересекающееся с запросом
func evaluateRoom(roomID string, schedules []*domain.Schedule, window, request types.TimeSpan) domain.RoomSuggestion {
	freeSlots := domain.ComputeFreeSlots(schedules, window)

	suggestion := domain.RoomSuggestion{
		RoomID:           roomID,
		Department:       roomDepartment(schedules),
		FreeSlots:        freeSlots,
		TotalFreeMinutes: domain.TotalFreeMinutes(freeSlots),
		TotalSchedules:   len(schedules),
	}

	if domain.HasAccommodatingSlot(freeSlots, request) {
		suggestion.Status = domain.RoomAvailable
		return suggestion
	}

	suggestion.Status = domain.RoomConflicted
	if blocker := findBlockingSchedule(schedules, request); blocker != nil {
		suggestion.Conflict = &domain.ConflictingSchedule{
			Course:     blocker.Course,
			Department: blocker.Department,
			StartTime:  blocker.StartTime,
			EndTime:    blocker.EndTime,
		}
	}

	return suggestion
}

// findBlockingSchedule возвращает первое занятие, пересекающееся с запросом
func findBlockingSchedule(schedules []*domain.Schedule, request types.TimeSpan) *domain.Schedule {
	for _, s := range schedules {
		span, err := s.Span()
		if err != nil {
			continue
		}
		if span.Overlaps(request) {
			return s
		}
	}
	return nil
}

// roomDepartment возвращает факультет комнаты по её занятиям
// У комнаты без занятий факультет не определен
func roomDepartment(schedules []*domain.Schedule) string {
	for _, s := range schedules {
		if s.Department != "" {
			return s.Department
		}
	}
	return ""
}

// matchesDepartment проверяет фильтр по факультету (без учета регистра)
// Комнаты без определенного факультета проходят любой фильтр: их занятия
// не раскрывают принадлежность, и исключать их из подбора нельзя
func matchesDepartment(suggestion domain.RoomSuggestion, department string) bool {
	if department == "" || suggestion.Department == "" {
		return true
	}
	return strings.EqualFold(suggestion.Department, department)
}
