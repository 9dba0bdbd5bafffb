package schedules

import (
	"context"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/service/schedules/models"
)

// Service сервис для чтения расписаний
type Service struct {
	scheduleRepo ScheduleRepository
	maxPageSize  int
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, maxPageSize int, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		maxPageSize:  maxPageSize,
		logger:       logger,
	}
}

// Search выполняет поиск записей расписания с фильтрацией и пагинацией
// Все критерии фильтра опциональны, пустой фильтр возвращает все записи
func (s *Service) Search(ctx context.Context, req *models.SearchSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("Search: fetching schedules, page=%d, perPage=%d", req.Page, req.PerPage)

	filter := domain.ScheduleFilter{
		RoomID: req.RoomID,
		Course: req.Course,
		Text:   req.Text,
	}

	if req.Day != nil && *req.Day != "" {
		day, err := domain.ParseWeekday(*req.Day)
		if err != nil {
			s.logger.Warn("Search: invalid day=%s", *req.Day)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDay, err)
		}
		filter.Day = &day
	}

	schedules, err := s.scheduleRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	page, perPage := models.NormalizePageParams(req.Page, req.PerPage, s.maxPageSize)

	s.logger.Info("Search: found %d schedules, returning page=%d", len(schedules), page)
	return models.FromDomainScheduleList(schedules, page, perPage), nil
}

// GetRoomSchedules получает расписание одной комнаты, опционально по дню недели
func (s *Service) GetRoomSchedules(ctx context.Context, req *models.GetRoomSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("GetRoomSchedules: fetching schedules for room=%s", req.RoomID)

	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	var schedules []*domain.Schedule
	var err error

	if req.Day != nil && *req.Day != "" {
		day, parseErr := domain.ParseWeekday(*req.Day)
		if parseErr != nil {
			s.logger.Warn("GetRoomSchedules: invalid day=%s for room=%s", *req.Day, req.RoomID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDay, parseErr)
		}
		schedules, err = s.scheduleRepo.GetByRoomAndDay(ctx, req.RoomID, day)
	} else {
		schedules, err = s.scheduleRepo.Search(ctx, domain.ScheduleFilter{RoomID: &req.RoomID})
	}

	if err != nil {
		s.logger.Error("GetRoomSchedules: repository error for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedules - repository error: %v", ErrInternal, err)
	}

	page, perPage := models.NormalizePageParams(req.Page, req.PerPage, s.maxPageSize)

	s.logger.Info("GetRoomSchedules: found %d schedules for room=%s", len(schedules), req.RoomID)
	return models.FromDomainScheduleList(schedules, page, perPage), nil
}
