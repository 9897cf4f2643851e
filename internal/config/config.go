package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Parking  ParkingConfig  `toml:"parking"`
	Sweep    SweepConfig    `toml:"sweep"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к postgres
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

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
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

// ParkingConfig статическая конфигурация парковки.
// Слоты провижинятся при старте до приёма трафика и дальше не меняются.
type ParkingConfig struct {
	SlotCount   int    `toml:"slot_count"`
	LabelPrefix string `toml:"label_prefix"`
	Timezone    string `toml:"timezone"` // фиксированная таймзона парковки
}

// Location парсит таймзону парковки
func (p *ParkingConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: parking.timezone: %v", ErrInvalidConfig, err)
	}
	return loc, nil
}

// SweepConfig настройки фонового перевода истёкших бронирований в completed
type SweepConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron-выражение robfig/cron
}

// Load читает конфигурацию из toml файла и применяет env-переопределения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// Пароль БД не хранится в репозитории, переопределяется из окружения
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
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
			ServiceName: "smc-parking-service",
		},
		Parking: ParkingConfig{
			SlotCount:   48,
			LabelPrefix: "A",
		},
		Sweep: SweepConfig{
			Enabled:  true,
			Schedule: "* * * * *",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in (0, 65535]", ErrInvalidConfig)
	}
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.user and database.dbname are required", ErrInvalidConfig)
	}
	if c.Parking.SlotCount <= 0 {
		return fmt.Errorf("%w: parking.slot_count must be positive", ErrInvalidConfig)
	}
	if c.Parking.LabelPrefix == "" {
		return fmt.Errorf("%w: parking.label_prefix is required", ErrInvalidConfig)
	}
	if _, err := c.Parking.Location(); err != nil {
		return err
	}
	if c.Sweep.Enabled && c.Sweep.Schedule == "" {
		return fmt.Errorf("%w: sweep.schedule is required when sweep is enabled", ErrInvalidConfig)
	}
	return nil
}
