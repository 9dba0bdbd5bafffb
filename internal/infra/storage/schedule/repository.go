package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"room_id",
	"day",
	"date",
	"start_time",
	"end_time",
	"course",
	"department",
	"lecturer",
	"year",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись расписания
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Когда использовать транзакцию:
// - При создании записи с предварительной проверкой конфликтов (для предотвращения race condition)
// - При пакетном импорте расписания
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"room_id",
			"day",
			"date",
			"start_time",
			"end_time",
			"course",
			"department",
			"lecturer",
			"year",
			"status",
		).
		Values(
			s.RoomID,
			s.Day,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.Course,
			s.Department,
			s.Lecturer,
			s.Year,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает запись расписания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByRoomAndDay получает все занятия комнаты в указанный день недели,
// отсортированные по времени начала
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания/переноса брони
// блокирует занятия комнаты на время проверки конфликтов
func (r *Repository) GetByRoomAndDay(ctx context.Context, roomID string, day domain.Weekday) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"day": day}).
		OrderBy("start_time ASC, end_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// Search получает записи расписания с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Комнате (RoomID) - опционально
// - Дню недели (Day) - опционально
// - Курсу (Course) - опционально
// - Подстроке в room_id/course/department/lecturer (Text) - опционально, без учета регистра
func (r *Repository) Search(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		OrderBy("day ASC, room_id ASC, start_time ASC, id ASC")

	if filter.RoomID != nil && *filter.RoomID != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.Day != nil && *filter.Day != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day": *filter.Day})
	}
	if filter.Course != nil && *filter.Course != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"course": *filter.Course})
	}
	if filter.Text != nil && *filter.Text != "" {
		pattern := "%" + *filter.Text + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"room_id": pattern},
			squirrel.ILike{"course": pattern},
			squirrel.ILike{"department": pattern},
			squirrel.ILike{"lecturer": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// ListRooms получает список всех известных комнат
func (r *Repository) ListRooms(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT room_id").
		From("schedules").
		OrderBy("room_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]string, 0)
	for rows.Next() {
		var roomID string
		if err := rows.Scan(&roomID); err != nil {
			return nil, fmt.Errorf("%w: ListRooms - scan room_id: %v", ErrScanRow, err)
		}
		rooms = append(rooms, roomID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// ListRoomDayPairs получает все комбинации (комната, день), в которых есть
// минимум два занятия. Используется фоновым сканером конфликтов: комбинации
// с одним занятием пересечений дать не могут
func (r *Repository) ListRoomDayPairs(ctx context.Context) ([]domain.RoomDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("room_id", "day").
		From("schedules").
		GroupBy("room_id", "day").
		Having("COUNT(*) >= 2").
		OrderBy("room_id ASC, day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRoomDayPairs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoomDayPairs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pairs := make([]domain.RoomDay, 0)
	for rows.Next() {
		var p domain.RoomDay
		if err := rows.Scan(&p.RoomID, &p.Day); err != nil {
			return nil, fmt.Errorf("%w: ListRoomDayPairs - scan pair: %v", ErrScanRow, err)
		}
		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRoomDayPairs - rows error: %v", ErrScanRow, err)
	}

	return pairs, nil
}

// Update полностью перезаписывает изменяемые поля записи расписания
func (r *Repository) Update(ctx context.Context, id int64, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("room_id", s.RoomID).
		Set("day", s.Day).
		Set("date", s.Date).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("course", s.Course).
		Set("department", s.Department).
		Set("lecturer", s.Lecturer).
		Set("year", s.Year).
		Set("status", s.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.ID = id
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSchedule сканирует одну запись расписания
func (r *Repository) scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var date, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.RoomID,
		&s.Day,
		&date,
		&s.StartTime,
		&s.EndTime,
		&s.Course,
		&s.Department,
		&s.Lecturer,
		&s.Year,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		d := date.Time
		s.Date = &d
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSchedules сканирует результаты запроса в слайс записей расписания
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
