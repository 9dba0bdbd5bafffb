package conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/service/conflicts/models"
)

// Service сервис для чтения зафиксированных конфликтов
type Service struct {
	conflictRepo ConflictRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфликтов
func NewService(conflictRepo ConflictRepository, logger Logger) *Service {
	return &Service{
		conflictRepo: conflictRepo,
		logger:       logger,
	}
}

// List получает зафиксированные конфликты с фильтрацией по комнате,
// дню недели и серьезности
func (s *Service) List(ctx context.Context, req *models.ListConflictsRequest) (*models.ConflictListResponse, error) {
	s.logger.Info("List: fetching detected conflicts")

	filter := domain.ConflictFilter{
		RoomID: req.RoomID,
	}

	if req.Day != nil && *req.Day != "" {
		day, err := domain.ParseWeekday(*req.Day)
		if err != nil {
			s.logger.Warn("List: invalid day=%s", *req.Day)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Day = &day
	}

	if req.Severity != nil && *req.Severity != "" {
		severity, err := domain.ParseSeverity(*req.Severity)
		if err != nil {
			s.logger.Warn("List: invalid severity=%s", *req.Severity)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Severity = &severity
	}

	conflicts, err := s.conflictRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d conflicts", len(conflicts))
	return models.FromDomainConflictList(conflicts), nil
}
