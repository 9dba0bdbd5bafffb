package inject_schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Day == "" && req.Date == nil {
		return fmt.Errorf("%w: either day or date is required", ErrInvalidInput)
	}

	if req.Start == "" || req.End == "" {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	return nil
}

// resolveDayAndDate определяет день недели и опциональную дату
// День, не указанный явно, выводится из даты
func resolveDayAndDate(req *Request) (domain.Weekday, *time.Time, error) {
	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := types.ParseDate(*req.Date)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		date = &parsed
	}

	if req.Day != "" {
		day, err := domain.ParseWeekday(req.Day)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return day, date, nil
	}

	if date == nil {
		return "", nil, fmt.Errorf("%w: either day or date is required", ErrInvalidInput)
	}
	return domain.WeekdayFromDate(*date), date, nil
}

// parseSpan парсит интервал занятия
// Время принимается в ослабленных формах ("830", "8.30"), как в исходных
// выгрузках расписаний
func parseSpan(req *Request) (types.TimeSpan, error) {
	span, err := types.NewTimeSpanFromLenientStrings(req.Start, req.End)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRange) {
			return types.TimeSpan{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return types.TimeSpan{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return span, nil
}
