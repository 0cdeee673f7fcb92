package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

const (
	SubmissionModeSimulated = "simulated"
	SubmissionModeHTTP      = "http"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Wizard     WizardConfig     `toml:"wizard"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Submission SubmissionConfig `toml:"submission"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required,startswith=/"`
	ServiceName string `toml:"service_name" validate:"required"`
}

// WizardConfig параметры хранения сессий мастера
type WizardConfig struct {
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`     // секунды
	CleanupInterval int `toml:"cleanup_interval" validate:"min=1"` // секунды
	MaxSessions     int `toml:"max_sessions" validate:"min=0"`     // 0 - без ограничения
}

type CalendarConfig struct {
	Timezone  string `toml:"timezone" validate:"required"`
	ClosedDay string `toml:"closed_day" validate:"required"`
}

type CatalogConfig struct {
	Services  []ServiceConfig `toml:"services" validate:"dive"`
	TimeSlots []string        `toml:"time_slots"`
}

type ServiceConfig struct {
	ID              string  `toml:"id" validate:"required"`
	Name            string  `toml:"name" validate:"required"`
	DurationMinutes int     `toml:"duration_minutes" validate:"min=1"`
	Price           float64 `toml:"price" validate:"min=0"`
}

// SubmissionConfig куда отправляется подтверждённое бронирование
type SubmissionConfig struct {
	Mode    string `toml:"mode" validate:"oneof=simulated http"`
	DelayMs int    `toml:"delay_ms" validate:"min=0"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout" validate:"min=1"` // секунды
}

var validate = validator.New()

// Load читает конфигурацию из TOML файла, проставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "booking-wizard",
		},
		Wizard: WizardConfig{
			IdleTimeout:     1800,
			CleanupInterval: 60,
			MaxSessions:     10000,
		},
		Calendar: CalendarConfig{
			Timezone:  "UTC",
			ClosedDay: "sunday",
		},
		Submission: SubmissionConfig{
			Mode:    SubmissionModeSimulated,
			DelayMs: 1500,
			Timeout: 10,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Submission.Mode == SubmissionModeHTTP {
		if err := validate.Var(c.Submission.URL, "required,url"); err != nil {
			return fmt.Errorf("%w: submission.url: %v", ErrInvalidConfig, err)
		}
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Calendar.Weekday(); err != nil {
		return fmt.Errorf("%w: calendar.closed_day: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Catalog.Slots(); err != nil {
		return fmt.Errorf("%w: catalog.time_slots: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Location возвращает часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Weekday парсит выходной день ("sunday", "monday", ...)
func (c CalendarConfig) Weekday() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.ClosedDay))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", c.ClosedDay)
}

// DomainServices конвертирует услуги каталога, пустой список - значения по умолчанию
func (c CatalogConfig) DomainServices() []domain.Service {
	if len(c.Services) == 0 {
		return nil
	}

	services := make([]domain.Service, 0, len(c.Services))
	for _, s := range c.Services {
		services = append(services, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	return services
}

// Slots парсит временные слоты каталога
func (c CatalogConfig) Slots() ([]types.TimeString, error) {
	if len(c.TimeSlots) == 0 {
		return nil, nil
	}

	slots := make([]types.TimeString, 0, len(c.TimeSlots))
	for _, raw := range c.TimeSlots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Delay задержка имитации отправки
func (c SubmissionConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}
