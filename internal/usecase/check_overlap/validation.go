package check_overlap

import (
	"errors"
	"fmt"

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

	// Интервал-кандидат задается целиком или не задается вовсе
	if (req.Start == nil) != (req.End == nil) {
		return fmt.Errorf("%w: start and end must be provided together", ErrInvalidInput)
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

// parseCandidateSpan парсит интервал-кандидат из запроса
// Время принимается в ослабленных формах ("830", "8.30")
func parseCandidateSpan(req *Request) (types.TimeSpan, error) {
	span, err := types.NewTimeSpanFromLenientStrings(*req.Start, *req.End)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRange) {
			return types.TimeSpan{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return types.TimeSpan{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return span, nil
}
