package reallocate

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/schedule"
)

// UseCase use case переноса записи расписания с разрешением неоднозначности
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

// Execute выполняет перенос записи расписания
// Цель должна разрешиться ровно в одну запись: ноль - ErrScheduleNotFound,
// больше одной - ErrAmbiguousMatch со списком кандидатов (движок никогда не
// выбирает сам). Патч применяется только к заполненным полям. Перед записью
// целевой интервал проверяется против остальных занятий комнаты/дня (без
// перемещаемой записи); при конфликте патч отклоняется целиком, исходная
// запись не изменяется. Вся операция идет в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Reallocate: id=%v", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Reallocate: validation failed: %v", err)
		return nil, err
	}

	// 2. Конвертируем патч (парсинг времени/даты/дня)
	patch, err := buildDomainPatch(&req.Patch)
	if err != nil {
		uc.logger.Warn("Reallocate: invalid patch: %v", err)
		return nil, err
	}

	var result *domain.Schedule
	var candidates []*domain.Schedule
	var conflicts []domain.Conflict

	// 3. Разрешение цели, проверка конфликтов и запись - в одной
	// сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Разрешаем цель в единственную запись
		target, err := uc.resolveTarget(txCtx, req, &candidates)
		if err != nil {
			return err
		}

		// 3.2. Применяем патч к копии записи
		updated := patch.ApplyTo(target)
		if err := validateUpdatedSpan(&updated); err != nil {
			uc.logger.Warn("Reallocate: invalid updated span for id=%d: %v", target.ID, err)
			return err
		}

		// 3.3. Проверяем целевой интервал против остальных занятий
		// комнаты/дня назначения, исключая перемещаемую запись
		neighbors, err := uc.scheduleRepo.GetByRoomAndDay(txCtx, updated.RoomID, updated.Day)
		if err != nil {
			uc.logger.Error("Reallocate: failed to get schedules for room=%s day=%s: %v",
				updated.RoomID, updated.Day, err)
			return fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}

		found := domain.DetectCandidateConflicts(&updated, neighbors, target.ID)
		blocking, _ := domain.SplitBySeverity(found, uc.blockSeverity)
		if len(blocking) > 0 {
			uc.logger.Warn("Reallocate: id=%d blocked by %d conflicts at destination %s %s",
				target.ID, len(blocking), updated.RoomID, updated.Day)
			conflicts = blocking
			return ErrNewConflict
		}

		// 3.4. Сохраняем обновленную запись
		saved, err := uc.scheduleRepo.Update(txCtx, target.ID, &updated)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrScheduleNotFound
			}
			uc.logger.Error("Reallocate: failed to update schedule id=%d: %v", target.ID, err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrAmbiguousMatch):
			return &Response{Candidates: fromDomainSchedules(candidates)}, err
		case errors.Is(err, ErrNewConflict):
			return &Response{Conflicts: fromDomainConflicts(conflicts)}, err
		default:
			return nil, err
		}
	}

	uc.logger.Info("Reallocate: successfully updated schedule id=%d", result.ID)
	return &Response{Schedule: fromDomainSchedule(result)}, nil
}

// resolveTarget разрешает цель переноса в единственную запись
// По ID - прямой запрос; по критериям - поиск с сужением по времени.
// Кандидаты при неоднозначном совпадении записываются в *candidates
func (uc *UseCase) resolveTarget(ctx context.Context, req *Request, candidates *[]*domain.Schedule) (*domain.Schedule, error) {
	if req.ID != nil {
		target, err := uc.scheduleRepo.GetByID(ctx, *req.ID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("Reallocate: schedule id=%d not found", *req.ID)
				return nil, ErrScheduleNotFound
			}
			uc.logger.Error("Reallocate: failed to get schedule id=%d: %v", *req.ID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		return target, nil
	}

	filter, err := buildFilter(req.Criteria)
	if err != nil {
		uc.logger.Warn("Reallocate: invalid criteria: %v", err)
		return nil, err
	}

	matches, err := uc.scheduleRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Error("Reallocate: failed to search schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to search schedules: %v", ErrInternal, err)
	}

	matches = narrowByTime(matches, req.Criteria)

	switch len(matches) {
	case 0:
		uc.logger.Warn("Reallocate: no schedules match the criteria")
		return nil, ErrScheduleNotFound
	case 1:
		return matches[0], nil
	default:
		uc.logger.Warn("Reallocate: criteria match %d schedules, refusing to guess", len(matches))
		*candidates = matches
		return nil, ErrAmbiguousMatch
	}
}
