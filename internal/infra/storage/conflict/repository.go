package conflict

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/psqlbuilder"
)

var conflictColumns = []string{
	"id",
	"hash",
	"room_id",
	"day",
	"conflict_type",
	"severity",
	"first_schedule_id",
	"first_course",
	"first_department",
	"first_lecturer",
	"first_start_time",
	"first_end_time",
	"second_schedule_id",
	"second_course",
	"second_department",
	"second_lecturer",
	"second_start_time",
	"second_end_time",
	"overlap_start",
	"overlap_end",
	"overlap_minutes",
	"notified",
	"detected_at",
	"last_detected_at",
}

// Repository репозиторий для работы с зафиксированными конфликтами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфликтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByHash фиксирует конфликт по его стабильному хешу.
// Для нового хеша создается запись с notified=false, для уже известного
// обновляются серьезность и время последнего обнаружения.
// Флаг notified при повторном обнаружении сохраняется - уведомление
// по одному и тому же конфликту отправляется один раз
func (r *Repository) UpsertByHash(ctx context.Context, c *domain.Conflict) (*domain.DetectedConflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("detected_conflicts").
		Columns(
			"hash",
			"room_id",
			"day",
			"conflict_type",
			"severity",
			"first_schedule_id",
			"first_course",
			"first_department",
			"first_lecturer",
			"first_start_time",
			"first_end_time",
			"second_schedule_id",
			"second_course",
			"second_department",
			"second_lecturer",
			"second_start_time",
			"second_end_time",
			"overlap_start",
			"overlap_end",
			"overlap_minutes",
		).
		Values(
			c.Hash(),
			c.RoomID,
			c.Day,
			c.Type,
			c.Severity,
			c.First.ID,
			c.First.Course,
			c.First.Department,
			c.First.Lecturer,
			c.First.StartTime,
			c.First.EndTime,
			c.Second.ID,
			c.Second.Course,
			c.Second.Department,
			c.Second.Lecturer,
			c.Second.StartTime,
			c.Second.EndTime,
			c.OverlapStart,
			c.OverlapEnd,
			c.OverlapMinutes,
		).
		Suffix(`ON CONFLICT (hash) DO UPDATE SET
			severity = EXCLUDED.severity,
			conflict_type = EXCLUDED.conflict_type,
			overlap_minutes = EXCLUDED.overlap_minutes,
			last_detected_at = NOW()
			RETURNING id, notified, detected_at, last_detected_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByHash - build insert query: %v", ErrBuildQuery, err)
	}

	detected := &domain.DetectedConflict{
		Hash:     c.Hash(),
		Conflict: *c,
	}

	var detectedAt, lastDetectedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&detected.ID,
		&detected.Notified,
		&detectedAt,
		&lastDetectedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByHash - execute insert: %v", ErrExecQuery, err)
	}

	detected.DetectedAt = detectedAt.Time
	detected.LastDetectedAt = lastDetectedAt.Time

	return detected, nil
}

// List получает зафиксированные конфликты с фильтрацией по комнате,
// дню недели и серьезности. Сортировка: серьезные первыми, внутри
// уровня - по времени последнего обнаружения (сначала свежие)
func (r *Repository) List(ctx context.Context, filter domain.ConflictFilter) ([]*domain.DetectedConflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(conflictColumns...).
		From("detected_conflicts").
		OrderBy(`CASE severity
			WHEN 'Critical' THEN 4
			WHEN 'High' THEN 3
			WHEN 'Medium' THEN 2
			ELSE 1
		END DESC, last_detected_at DESC, id ASC`)

	if filter.RoomID != nil && *filter.RoomID != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.Day != nil && *filter.Day != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day": *filter.Day})
	}
	if filter.Severity != nil && *filter.Severity != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"severity": *filter.Severity})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	conflicts := make([]*domain.DetectedConflict, 0)
	for rows.Next() {
		c, err := r.scanConflict(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return conflicts, nil
}

// MarkNotified помечает конфликт как отправленный в уведомлении
func (r *Repository) MarkNotified(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("detected_conflicts").
		Set("notified", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkNotified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkNotified - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkNotified - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConflictNotFound
	}

	return nil
}

// DeleteStale удаляет конфликты, не подтвержденные последними проходами
// сканера. Вызывается после полного прохода: все еще существующие конфликты
// только что получили свежий last_detected_at
func (r *Repository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("detected_conflicts").
		Where(squirrel.Lt{"last_detected_at": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanConflict сканирует одну запись конфликта
func (r *Repository) scanConflict(rows *sql.Rows) (*domain.DetectedConflict, error) {
	var d domain.DetectedConflict
	var detectedAt, lastDetectedAt sql.NullTime

	err := rows.Scan(
		&d.ID,
		&d.Hash,
		&d.Conflict.RoomID,
		&d.Conflict.Day,
		&d.Conflict.Type,
		&d.Conflict.Severity,
		&d.Conflict.First.ID,
		&d.Conflict.First.Course,
		&d.Conflict.First.Department,
		&d.Conflict.First.Lecturer,
		&d.Conflict.First.StartTime,
		&d.Conflict.First.EndTime,
		&d.Conflict.Second.ID,
		&d.Conflict.Second.Course,
		&d.Conflict.Second.Department,
		&d.Conflict.Second.Lecturer,
		&d.Conflict.Second.StartTime,
		&d.Conflict.Second.EndTime,
		&d.Conflict.OverlapStart,
		&d.Conflict.OverlapEnd,
		&d.Conflict.OverlapMinutes,
		&d.Notified,
		&detectedAt,
		&lastDetectedAt,
	)
	if err != nil {
		return nil, err
	}

	d.DetectedAt = detectedAt.Time
	d.LastDetectedAt = lastDetectedAt.Time

	return &d, nil
}
