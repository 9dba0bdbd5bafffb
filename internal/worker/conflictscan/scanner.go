package conflictscan

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notifyservice"
)

// Scanner фоновый сканер конфликтов расписания
// Периодически обходит все комбинации (комната, день) с двумя и более
// занятиями, классифицирует пересечения и фиксирует их по стабильному хешу.
// По новым конфликтам отправляется уведомление; повторные обнаружения
// только обновляют время последней фиксации
type Scanner struct {
	scheduleRepo ScheduleRepository
	conflictRepo ConflictRepository
	notifier     Notifier
	recipientID  string
	interval     time.Duration
	logger       Logger
}

// NewScanner создает новый экземпляр сканера
func NewScanner(
	scheduleRepo ScheduleRepository,
	conflictRepo ConflictRepository,
	notifier Notifier,
	recipientID string,
	interval time.Duration,
	logger Logger,
) *Scanner {
	return &Scanner{
		scheduleRepo: scheduleRepo,
		conflictRepo: conflictRepo,
		notifier:     notifier,
		recipientID:  recipientID,
		interval:     interval,
		logger:       logger,
	}
}

// Run запускает цикл сканирования до отмены контекста
// Первый проход выполняется сразу, далее по тикеру
func (s *Scanner) Run(ctx context.Context) {
	s.logger.Info("ConflictScan: starting, interval=%s", s.interval)

	s.scanOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("ConflictScan: stopping: %v", ctx.Err())
			return
		case <-ticker.C:
			s.scanOnce(ctx)
		}
	}
}

// scanOnce выполняет один полный проход по всем комбинациям (комната, день)
// Ошибки отдельных комбинаций логируются, проход продолжается
func (s *Scanner) scanOnce(ctx context.Context) {
	started := time.Now()

	pairs, err := s.scheduleRepo.ListRoomDayPairs(ctx)
	if err != nil {
		s.logger.Error("ConflictScan: failed to list room/day pairs: %v", err)
		return
	}

	total := 0
	fresh := 0
	failed := 0

	for _, pair := range pairs {
		if ctx.Err() != nil {
			return
		}

		detected, newCount, err := s.scanPair(ctx, pair)
		if err != nil {
			s.logger.Error("ConflictScan: room=%s day=%s: %v", pair.RoomID, pair.Day, err)
			failed++
			continue
		}
		total += detected
		fresh += newCount
	}

	// Разрешенные конфликты перестают подтверждаться и вычищаются.
	// После сбойного прохода чистка пропускается: неподтвержденность
	// может означать ошибку чтения, а не разрешение конфликта
	if failed == 0 {
		removed, err := s.conflictRepo.DeleteStale(ctx, started)
		if err != nil {
			s.logger.Error("ConflictScan: failed to delete stale conflicts: %v", err)
		} else if removed > 0 {
			s.logger.Info("ConflictScan: removed %d resolved conflicts", removed)
		}
	}

	s.logger.Info("ConflictScan: pass complete in %s: %d pairs, %d conflicts (%d new)",
		time.Since(started).Round(time.Millisecond), len(pairs), total, fresh)
}

// scanPair сканирует одну комбинацию (комната, день)
func (s *Scanner) scanPair(ctx context.Context, pair domain.RoomDay) (detected, fresh int, err error) {
	schedules, err := s.scheduleRepo.GetByRoomAndDay(ctx, pair.RoomID, pair.Day)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get schedules: %w", err)
	}

	conflicts := domain.DetectConflicts(schedules)

	for i := range conflicts {
		record, err := s.conflictRepo.UpsertByHash(ctx, &conflicts[i])
		if err != nil {
			s.logger.Error("ConflictScan: failed to upsert conflict hash=%s: %v", conflicts[i].Hash(), err)
			continue
		}
		detected++

		if record.Notified {
			continue
		}
		fresh++

		s.notify(ctx, record)
	}

	return detected, fresh, nil
}

// notify отправляет уведомление о новом конфликте и помечает его отправленным
// При недоступности сервиса уведомлений конфликт остается непомеченным
// и уведомление уйдет при следующем проходе
func (s *Scanner) notify(ctx context.Context, record *domain.DetectedConflict) {
	c := record.Conflict

	notification := &notifyservice.ConflictNotification{
		RecipientID:   s.recipientID,
		RoomID:        c.RoomID,
		Day:           string(c.Day),
		Severity:      string(c.Severity),
		FirstCourse:   c.First.Course,
		FirstSlot:     c.First.TimeSlot(),
		SecondCourse:  c.Second.Course,
		SecondSlot:    c.Second.TimeSlot(),
		OverlapPeriod: c.OverlapPeriod(),
		Message: fmt.Sprintf("%s conflict in room %s on %s: %s (%s) overlaps %s (%s) by %s",
			c.Severity, c.RoomID, c.Day,
			c.First.Course, c.First.TimeSlot(),
			c.Second.Course, c.Second.TimeSlot(),
			c.OverlapDuration()),
	}

	if err := s.notifier.SendWithGracefulDegradation(ctx, notification); err != nil {
		s.logger.Warn("ConflictScan: notification deferred for hash=%s: %v", record.Hash, err)
		return
	}

	if err := s.conflictRepo.MarkNotified(ctx, record.ID); err != nil {
		s.logger.Error("ConflictScan: failed to mark conflict id=%d as notified: %v", record.ID, err)
	}
}
