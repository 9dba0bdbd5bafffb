package reallocate

import (
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID == nil && req.Criteria.IsEmpty() {
		return fmt.Errorf("%w: target id or criteria are required", ErrInvalidInput)
	}

	if req.Patch.IsEmpty() {
		return fmt.Errorf("%w: at least one patch field is required", ErrInvalidInput)
	}

	return nil
}

// buildDomainPatch конвертирует патч запроса в domain.SchedulePatch
// Строковые поля времени, даты и дня недели парсятся и валидируются
func buildDomainPatch(p *Patch) (domain.SchedulePatch, error) {
	patch := domain.SchedulePatch{
		RoomID:     p.RoomID,
		Course:     p.Course,
		Department: p.Department,
		Lecturer:   p.Lecturer,
		Year:       p.Year,
		Status:     p.Status,
	}

	if p.Day != nil {
		day, err := domain.ParseWeekday(*p.Day)
		if err != nil {
			return domain.SchedulePatch{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		patch.Day = &day
	}

	if p.Date != nil {
		date, err := types.ParseDate(*p.Date)
		if err != nil {
			return domain.SchedulePatch{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		patch.Date = &date
	}

	if p.Start != nil {
		start, err := types.NormalizeTimeString(*p.Start)
		if err != nil {
			return domain.SchedulePatch{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		patch.StartTime = &start
	}

	if p.End != nil {
		end, err := types.NormalizeTimeString(*p.End)
		if err != nil {
			return domain.SchedulePatch{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		patch.EndTime = &end
	}

	return patch, nil
}

// validateUpdatedSpan проверяет, что интервал записи после патча корректен
func validateUpdatedSpan(updated *domain.Schedule) error {
	if _, err := updated.Span(); err != nil {
		if errors.Is(err, types.ErrInvalidRange) {
			return fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return nil
}
