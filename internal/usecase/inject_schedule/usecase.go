package inject_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// UseCase use case для создания записи расписания с проверкой конфликтов
type UseCase struct {
	scheduleRepo  ScheduleRepository
	txManager     TransactionManager
	blockSeverity domain.ConflictSeverity
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	blockSeverity domain.ConflictSeverity,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		txManager:     txManager,
		blockSeverity: blockSeverity,
		logger:        logger,
	}
}

// Execute выполняет use case создания записи расписания
// Конфликты серьезности >= порога блокировки отклоняют запись (ErrConflict,
// список в Response.Conflicts); пересечения ниже порога возвращаются как
// предупреждения при успешном создании.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции
// для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InjectSchedule: room=%s, day=%s, span=%s-%s, course=%s",
		req.RoomID, req.Day, req.Start, req.End, req.Course)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InjectSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем день недели и опциональную дату
	day, date, err := resolveDayAndDate(req)
	if err != nil {
		uc.logger.Warn("InjectSchedule: failed to resolve day: %v", err)
		return nil, err
	}

	// 3. Парсим интервал занятия
	span, err := parseSpan(req)
	if err != nil {
		uc.logger.Warn("InjectSchedule: invalid span: %v", err)
		return nil, err
	}

	status := domain.DefaultStatus
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	candidate := &domain.Schedule{
		RoomID:     req.RoomID,
		Day:        day,
		Date:       date,
		StartTime:  span.StartTime(),
		EndTime:    span.EndTime(),
		Course:     req.Course,
		Department: req.Department,
		Lecturer:   req.Lecturer,
		Year:       req.Year,
		Status:     status,
	}

	var result *domain.Schedule
	var warnings []domain.Conflict
	var blocking []domain.Conflict

	// 4. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем занятия комнаты на день с блокировкой (FOR UPDATE)
		existing, err := uc.scheduleRepo.GetByRoomAndDay(txCtx, req.RoomID, day)
		if err != nil {
			uc.logger.Error("InjectSchedule: failed to get schedules for room=%s day=%s: %v", req.RoomID, day, err)
			return fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}

		// 4.2. Проверяем кандидата против существующих занятий
		conflicts := domain.DetectCandidateConflicts(candidate, existing, 0)
		blocking, warnings = domain.SplitBySeverity(conflicts, uc.blockSeverity)

		if len(blocking) > 0 {
			uc.logger.Warn("InjectSchedule: room=%s day=%s span=%s blocked by %d conflicts",
				req.RoomID, day, span, len(blocking))
			return ErrConflict
		}

		// 4.3. Создаем запись
		created, err := uc.scheduleRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("InjectSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// При блокирующих конфликтах возвращаем их список рядом с ошибкой
		if len(blocking) > 0 {
			return &Response{Conflicts: fromDomainConflicts(blocking)}, err
		}
		return nil, err
	}

	if len(warnings) > 0 {
		uc.logger.Warn("InjectSchedule: created schedule id=%d with %d low-severity warnings", result.ID, len(warnings))
	} else {
		uc.logger.Info("InjectSchedule: successfully created schedule id=%d", result.ID)
	}

	return &Response{
		Schedule: fromDomainSchedule(result),
		Warnings: fromDomainConflicts(warnings),
	}, nil
}
