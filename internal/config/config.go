package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Scheduling    SchedulingConfig    `toml:"scheduling"`
	Scanner       ScannerConfig       `toml:"scanner"`
	NotifyService NotifyServiceConfig `toml:"notify_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения из частей конфигурации
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig политики движка расписаний
type SchedulingConfig struct {
	// OperatingStart/OperatingEnd окно рабочих часов, в котором считаются свободные слоты
	OperatingStart string `toml:"operating_start"`
	OperatingEnd   string `toml:"operating_end"`
	// BlockSeverity минимальный уровень конфликта, блокирующий создание/перенос брони
	// Конфликты ниже порога возвращаются как предупреждения
	BlockSeverity string `toml:"block_severity"`
	// MaxPageSize верхняя граница per_page в постраничных выборках
	MaxPageSize int `toml:"max_page_size"`
}

// OperatingWindow возвращает окно рабочих часов как TimeSpan
func (c SchedulingConfig) OperatingWindow() (types.TimeSpan, error) {
	return types.NewTimeSpanFromStrings(c.OperatingStart, c.OperatingEnd)
}

// BlockSeverityLevel возвращает распарсенный порог блокировки
func (c SchedulingConfig) BlockSeverityLevel() (domain.ConflictSeverity, error) {
	return domain.ParseSeverity(c.BlockSeverity)
}

// ScannerConfig настройки фонового сканера конфликтов
type ScannerConfig struct {
	Enabled         bool   `toml:"enabled"`
	IntervalSeconds int    `toml:"interval_seconds"`
	AdminID         string `toml:"admin_id"` // Получатель уведомлений по умолчанию
}

// NotifyServiceConfig настройки клиента внешнего сервиса уведомлений
type NotifyServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "edu-scheduling-service",
		},
		Scheduling: SchedulingConfig{
			OperatingStart: domain.DefaultOperatingStart,
			OperatingEnd:   domain.DefaultOperatingEnd,
			BlockSeverity:  string(domain.SeverityMedium),
			MaxPageSize:    domain.MaxPageSize,
		},
		Scanner: ScannerConfig{
			Enabled:         false,
			IntervalSeconds: 3600,
			AdminID:         "system_admin",
		},
		NotifyService: NotifyServiceConfig{
			Timeout: 5,
		},
	}
}

func (c *Config) validate() error {
	if _, err := c.Scheduling.OperatingWindow(); err != nil {
		return fmt.Errorf("config: invalid operating hours %s-%s: %w",
			c.Scheduling.OperatingStart, c.Scheduling.OperatingEnd, err)
	}
	if _, err := c.Scheduling.BlockSeverityLevel(); err != nil {
		return fmt.Errorf("config: invalid block_severity: %w", err)
	}
	if c.Scheduling.MaxPageSize <= 0 {
		return fmt.Errorf("config: max_page_size must be positive")
	}
	if c.Scanner.Enabled && c.Scanner.IntervalSeconds <= 0 {
		return fmt.Errorf("config: scanner interval_seconds must be positive")
	}
	return nil
}
