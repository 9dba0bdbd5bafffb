package suggest_rooms

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// UseCase use case подбора комнат под запрошенный интервал
type UseCase struct {
	scheduleRepo ScheduleRepository
	window       types.TimeSpan
	maxPageSize  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, window types.TimeSpan, maxPageSize int, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		window:       window,
		maxPageSize:  maxPageSize,
		logger:       logger,
	}
}

// Execute выполняет подбор комнат
// Комната подходит, если хотя бы один свободный слот целиком вмещает
// запрошенный интервал. Подходящие комнаты ранжируются по суммарному
// свободному времени (по убыванию, при равенстве - по room_id), неподходящие
// возвращаются отдельным списком с мешающим занятием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestRooms: day=%s, span=%s-%s", req.Day, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем день недели
	day, err := resolveDay(req)
	if err != nil {
		uc.logger.Warn("SuggestRooms: failed to resolve day: %v", err)
		return nil, err
	}

	// 3. Парсим запрошенный интервал, проверяем рабочие часы
	request, err := parseRequestSpan(req, uc.window)
	if err != nil {
		uc.logger.Warn("SuggestRooms: invalid request span: %v", err)
		return nil, err
	}

	// 4. Определяем набор комнат
	rooms, err := uc.resolveRooms(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Оцениваем каждую комнату
	available := make([]domain.RoomSuggestion, 0, len(rooms))
	conflicted := make([]domain.RoomSuggestion, 0)

	for _, roomID := range rooms {
		schedules, err := uc.scheduleRepo.GetByRoomAndDay(ctx, roomID, day)
		if err != nil {
			uc.logger.Error("SuggestRooms: failed to get schedules for room=%s day=%s: %v", roomID, day, err)
			return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}

		suggestion := evaluateRoom(roomID, schedules, uc.window, request)

		if req.Department != nil && !matchesDepartment(suggestion, *req.Department) {
			continue
		}

		if suggestion.Status == domain.RoomAvailable {
			available = append(available, suggestion)
		} else {
			conflicted = append(conflicted, suggestion)
		}
	}

	// 6. Ранжируем и пагинируем подходящие комнаты
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultPageSize
	}
	if perPage > uc.maxPageSize {
		perPage = uc.maxPageSize
	}

	rs := NewResultSet(available, perPage)
	if req.Page > 1 {
		rs.SetPage(req.Page)
	}

	sort.Slice(conflicted, func(i, j int) bool {
		return conflicted[i].RoomID < conflicted[j].RoomID
	})

	uc.logger.Info("SuggestRooms: day=%s: %d available rooms, %d conflicted", day, len(available), len(conflicted))

	return uc.buildResponse(day, req, rs, conflicted), nil
}

// resolveRooms определяет набор комнат для оценки:
// одна комната из фильтра или все известные
func (uc *UseCase) resolveRooms(ctx context.Context, req *Request) ([]string, error) {
	if req.RoomID != nil && *req.RoomID != "" {
		return []string{*req.RoomID}, nil
	}

	rooms, err := uc.scheduleRepo.ListRooms(ctx)
	if err != nil {
		uc.logger.Error("SuggestRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}
	return rooms, nil
}

func (uc *UseCase) buildResponse(day domain.Weekday, req *Request, rs *ResultSet, conflicted []domain.RoomSuggestion) *Response {
	pageItems := rs.Page()

	resp := &Response{
		Day:             string(day),
		Start:           req.Start,
		End:             req.End,
		Suggestions:     make([]SuggestionInfo, 0, len(pageItems)),
		ConflictedRooms: make([]ConflictedRoomInfo, 0, len(conflicted)),
		Page:            rs.PageNumber(),
		PerPage:         rs.perPage,
		TotalItems:      rs.TotalItems(),
		TotalPages:      rs.TotalPages(),
	}

	for _, s := range pageItems {
		resp.Suggestions = append(resp.Suggestions, fromDomainSuggestion(s))
	}
	for _, s := range conflicted {
		resp.ConflictedRooms = append(resp.ConflictedRooms, fromDomainConflicted(s))
	}

	return resp
}
