package check_overlap

import (
	"context"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// UseCase use case для анализа пересечений расписания комнаты
type UseCase struct {
	scheduleRepo ScheduleRepository
	window       types.TimeSpan
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, window types.TimeSpan, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		window:       window,
		logger:       logger,
	}
}

// Execute выполняет анализ пересечений для комнаты и дня недели
// Возвращает попарные конфликты существующих занятий, конфликты
// интервала-кандидата (если задан), свободные окна и занятость комнаты.
// Пустой список конфликтов - нормальный успешный результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOverlap: room=%s, day=%s", req.RoomID, req.Day)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckOverlap: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем день недели (из поля day или из даты)
	day, err := resolveDay(req)
	if err != nil {
		uc.logger.Warn("CheckOverlap: failed to resolve day: %v", err)
		return nil, err
	}

	// 3. Парсим интервал-кандидат, если задан
	var candidate *types.TimeSpan
	if req.HasCandidate() {
		span, err := parseCandidateSpan(req)
		if err != nil {
			uc.logger.Warn("CheckOverlap: invalid candidate span: %v", err)
			return nil, err
		}
		candidate = &span
	}

	// 4. Получаем занятия комнаты на день
	schedules, err := uc.scheduleRepo.GetByRoomAndDay(ctx, req.RoomID, day)
	if err != nil {
		uc.logger.Error("CheckOverlap: failed to get schedules for room=%s day=%s: %v", req.RoomID, day, err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 5. Попарные конфликты существующих занятий
	conflicts := domain.DetectConflicts(schedules)

	// 6. Конфликты интервала-кандидата
	candidateConflicts := make([]domain.Conflict, 0)
	if candidate != nil {
		probe := &domain.Schedule{
			RoomID:    req.RoomID,
			Day:       day,
			StartTime: candidate.StartTime(),
			EndTime:   candidate.EndTime(),
		}
		candidateConflicts = domain.DetectCandidateConflicts(probe, schedules, 0)
	}

	// 7. Свободные окна и занятость в рамках рабочих часов
	freeSlots := domain.ComputeFreeSlots(schedules, uc.window)
	totalFree := domain.TotalFreeMinutes(freeSlots)

	windowMinutes := uc.window.DurationMinutes()
	utilization := 0.0
	if windowMinutes > 0 {
		utilization = float64(windowMinutes-totalFree) / float64(windowMinutes) * 100
	}

	uc.logger.Info("CheckOverlap: room=%s day=%s: %d schedules, %d conflicts, %d free slots",
		req.RoomID, day, len(schedules), len(conflicts), len(freeSlots))

	return &Response{
		RoomID:             req.RoomID,
		Day:                string(day),
		TotalSchedules:     len(schedules),
		Conflicts:          fromDomainConflicts(conflicts),
		CandidateConflicts: fromDomainConflicts(candidateConflicts),
		FreeSlots:          fromDomainFreeSlots(freeSlots),
		TotalFreeMinutes:   totalFree,
		UtilizationPercent: utilization,
	}, nil
}
