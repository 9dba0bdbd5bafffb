package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkOverlapHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/check_overlap"
	getRoomSchedulesHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/get_room_schedules"
	injectScheduleHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/inject_schedule"
	listConflictsHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/list_conflicts"
	reallocateHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/reallocate"
	searchSchedulesHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/search_schedules"
	suggestRoomsHandler "github.com/m04kA/EDU-SchedulingService/internal/api/handlers/suggest_rooms"
	"github.com/m04kA/EDU-SchedulingService/internal/api/middleware"
	"github.com/m04kA/EDU-SchedulingService/internal/config"
	conflictRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/conflict"
	scheduleRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/schedule"
	notifyServiceClient "github.com/m04kA/EDU-SchedulingService/internal/integrations/notifyservice"
	conflictsService "github.com/m04kA/EDU-SchedulingService/internal/service/conflicts"
	schedulesService "github.com/m04kA/EDU-SchedulingService/internal/service/schedules"
	checkOverlapUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/check_overlap"
	injectScheduleUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/inject_schedule"
	reallocateUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/reallocate"
	suggestRoomsUC "github.com/m04kA/EDU-SchedulingService/internal/usecase/suggest_rooms"
	"github.com/m04kA/EDU-SchedulingService/internal/worker/conflictscan"
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/logger"
	"github.com/m04kA/EDU-SchedulingService/pkg/metrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/EDU-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EDU-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Политики движка расписаний (уже проверены при загрузке конфига)
	operatingWindow, err := cfg.Scheduling.OperatingWindow()
	if err != nil {
		log.Fatal("Invalid operating hours: %v", err)
	}
	blockSeverity, err := cfg.Scheduling.BlockSeverityLevel()
	if err != nil {
		log.Fatal("Invalid block severity: %v", err)
	}
	log.Info("Scheduling policies: operating hours %s, block severity >= %s",
		operatingWindow.String(), blockSeverity)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (NotifyService=%s timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository *scheduleRepo.Repository
		conflictRepository *conflictRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		conflictRepository = conflictRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		conflictRepository = conflictRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	schedulesSvc := schedulesService.NewService(
		scheduleRepository,
		cfg.Scheduling.MaxPageSize,
		log,
	)
	conflictsSvc := conflictsService.NewService(
		conflictRepository,
		log,
	)

	// Инициализируем use cases
	checkOverlapUseCase := checkOverlapUC.NewUseCase(
		scheduleRepository,
		operatingWindow,
		log,
	)
	suggestRoomsUseCase := suggestRoomsUC.NewUseCase(
		scheduleRepository,
		operatingWindow,
		cfg.Scheduling.MaxPageSize,
		log,
	)
	injectScheduleUseCase := injectScheduleUC.NewUseCase(
		scheduleRepository,
		txMgr,
		blockSeverity,
		log,
	)
	reallocateUseCase := reallocateUC.NewUseCase(
		scheduleRepository,
		txMgr,
		blockSeverity,
		log,
	)

	// Инициализируем handlers
	checkOverlap := checkOverlapHandler.NewHandler(checkOverlapUseCase, log)
	suggestRooms := suggestRoomsHandler.NewHandler(suggestRoomsUseCase, log)
	injectSchedule := injectScheduleHandler.NewHandler(injectScheduleUseCase, log)
	reallocate := reallocateHandler.NewHandler(reallocateUseCase, log)
	searchSchedules := searchSchedulesHandler.NewHandler(schedulesSvc, log)
	getRoomSchedules := getRoomSchedulesHandler.NewHandler(schedulesSvc, log)
	listConflicts := listConflictsHandler.NewHandler(conflictsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка пересечений и свободных окон комнаты
	api.HandleFunc("/rooms/{roomId}/days/{day}/overlap-check",
		checkOverlap.Handle).Methods(http.MethodPost)

	// Подбор комнат под запрошенный интервал
	api.HandleFunc("/rooms/suggestions", suggestRooms.Handle).Methods(http.MethodGet)

	// Поиск по записям расписания
	api.HandleFunc("/schedules/search", searchSchedules.Handle).Methods(http.MethodGet)

	// Расписание одной комнаты
	api.HandleFunc("/rooms/{roomId}/schedules", getRoomSchedules.Handle).Methods(http.MethodGet)

	// Зафиксированные конфликты
	api.HandleFunc("/conflicts", listConflicts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи расписания с проверкой конфликтов
	protected.HandleFunc("/schedules", injectSchedule.Handle).Methods(http.MethodPost)

	// Перенос записи расписания
	protected.HandleFunc("/schedules", reallocate.Handle).Methods(http.MethodPatch)

	// Фоновый сканер конфликтов (если включен)
	scannerCtx, stopScanner := context.WithCancel(context.Background())
	defer stopScanner()

	if cfg.Scanner.Enabled {
		scanner := conflictscan.NewScanner(
			scheduleRepository,
			conflictRepository,
			notifyClient,
			cfg.Scanner.AdminID,
			time.Duration(cfg.Scanner.IntervalSeconds)*time.Second,
			log,
		)
		go scanner.Run(scannerCtx)
		log.Info("Conflict scanner started (interval=%ds, recipient=%s)",
			cfg.Scanner.IntervalSeconds, cfg.Scanner.AdminID)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновый сканер
	stopScanner()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
