package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Переменные окружения с секретами. Значения из окружения имеют приоритет над config.toml
const (
	EnvWebhookSecret = "WOMPI_EVENTS_SECRET"
	EnvDBPassword    = "DB_PASSWORD"
	EnvRedisPassword = "REDIS_PASSWORD"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig   `toml:"server"`
	Logs       LogsConfig     `toml:"logs"`
	Metrics    MetricsConfig  `toml:"metrics"`
	Database   DatabaseConfig `toml:"database"`
	Redis      RedisConfig    `toml:"redis"`
	AgendaAPI  ClientConfig   `toml:"agenda_api"`
	BillingAPI ClientConfig   `toml:"billing_api"`
	Webhook    WebhookConfig  `toml:"webhook"`
	Calendar   CalendarConfig `toml:"calendar"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ClientConfig настройки HTTP клиента внешнего сервиса
type ClientConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=0"` // секунды
}

type WebhookConfig struct {
	Secret         string        `toml:"secret" validate:"required"`
	Headers        HeadersConfig `toml:"headers"`
	RateLimitRPS   float64       `toml:"rate_limit_rps" validate:"min=0"` // 0 = без ограничения
	RateLimitBurst int           `toml:"rate_limit_burst" validate:"min=0"`
	Dedup          DedupConfig   `toml:"dedup"`
}

// HeadersConfig имена заголовков вебхука платежного провайдера
type HeadersConfig struct {
	Timestamp      string `toml:"timestamp"`
	Nonce          string `toml:"nonce"`
	TransmissionID string `toml:"transmission_id"`
	Signature      string `toml:"signature"`
}

// DedupConfig защита от повторной доставки вебхука. По умолчанию выключена
type DedupConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds" validate:"min=0"`
}

// TTL время хранения ключа дедупликации
func (d DedupConfig) TTL() time.Duration {
	return time.Duration(d.TTLSeconds) * time.Second
}

type CalendarConfig struct {
	SlotDurationMinutes int    `toml:"slot_duration_minutes" validate:"min=5,max=480"`
	Timezone            string `toml:"timezone" validate:"required"` // IANA, часовой пояс филиалов
}

// Location часовой пояс, в котором заданы слоты расписания
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SlotDuration длительность слота сетки
func (c CalendarConfig) SlotDuration() time.Duration {
	return time.Duration(c.SlotDurationMinutes) * time.Minute
}

// Default значения по умолчанию, поверх которых накладывается config.toml
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_salon_booking",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		AgendaAPI:  ClientConfig{Timeout: 5},
		BillingAPI: ClientConfig{Timeout: 5},
		Webhook: WebhookConfig{
			Headers: HeadersConfig{
				Timestamp:      "X-Event-Timestamp",
				Nonce:          "X-Event-Nonce",
				TransmissionID: "X-Event-Transmission-Id",
				Signature:      "X-Event-Signature",
			},
			Dedup: DedupConfig{TTLSeconds: 72 * 3600},
		},
		Calendar: CalendarConfig{SlotDurationMinutes: 30, Timezone: "UTC"},
	}
}

// Load читает config.toml, подгружает .env (если есть) и накладывает секреты из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvWebhookSecret); v != "" {
		cfg.Webhook.Secret = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

// Validate проверяет обязательные поля конфигурации
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Webhook.Dedup.Enabled && cfg.Redis.Addr == "" {
		return errors.New("invalid config: redis.addr is required when webhook.dedup.enabled")
	}
	if _, err := cfg.Calendar.Location(); err != nil {
		return fmt.Errorf("invalid config: calendar.timezone: %w", err)
	}
	return nil
}
