package reallocate

import (
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// buildFilter строит фильтр репозитория из критериев идентификации
// Время начала/конца сверяется отдельно (narrowByTime), так как фильтр
// хранилища работает по room/day/course/text
func buildFilter(c *Criteria) (domain.ScheduleFilter, error) {
	filter := domain.ScheduleFilter{
		RoomID: c.RoomID,
		Course: c.Course,
		Text:   c.Text,
	}

	if !isBlank(c.Day) {
		day, err := domain.ParseWeekday(*c.Day)
		if err != nil {
			return domain.ScheduleFilter{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Day = &day
	}

	return filter, nil
}

// narrowByTime сужает список совпадений по точному времени начала и конца,
// если они заданы в критериях
func narrowByTime(matches []*domain.Schedule, c *Criteria) []*domain.Schedule {
	if isBlank(c.Start) && isBlank(c.End) {
		return matches
	}

	narrowed := make([]*domain.Schedule, 0, len(matches))
	for _, s := range matches {
		if !isBlank(c.Start) && !timeEquals(s.StartTime, *c.Start) {
			continue
		}
		if !isBlank(c.End) && !timeEquals(s.EndTime, *c.End) {
			continue
		}
		narrowed = append(narrowed, s)
	}
	return narrowed
}

// timeEquals сравнивает хранимое время с критерием, приводя критерий
// к каноническому HH:MM ("9:00" совпадает с "09:00")
func timeEquals(stored types.TimeString, raw string) bool {
	normalized, err := types.NormalizeTimeString(raw)
	if err != nil {
		return stored.String() == raw
	}
	return stored == normalized
}
