package suggest_rooms

import (
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Day == "" && req.Date == nil {
		return fmt.Errorf("%w: either day or date is required", ErrInvalidInput)
	}

	if req.Start == "" || req.End == "" {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	return nil
}

// resolveDay определяет день недели: из поля day, либо из даты
func resolveDay(req *Request) (domain.Weekday, error) {
	if req.Day != "" {
		day, err := domain.ParseWeekday(req.Day)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return day, nil
	}

	date, err := types.ParseDate(*req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return domain.WeekdayFromDate(date), nil
}

// parseRequestSpan парсит запрошенный интервал и проверяет, что он
// целиком лежит в рамках рабочих часов
func parseRequestSpan(req *Request, window types.TimeSpan) (types.TimeSpan, error) {
	span, err := types.NewTimeSpanFromLenientStrings(req.Start, req.End)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRange) {
			return types.TimeSpan{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return types.TimeSpan{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	if !window.Contains(span) {
		return types.TimeSpan{}, fmt.Errorf("%w: requested span %s is outside operating hours %s",
			ErrInvalidRange, span, window)
	}

	return span, nil
}
