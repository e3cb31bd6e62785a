package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Storage   StorageConfig   `json:"storage"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	Form      FormConfig      `json:"form"`
	Rules     RulesConfig     `json:"rules"`
	Geocoder  GeocoderConfig  `json:"geocoder"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type StorageConfig struct {
	Backend string `json:"backend"`
	Dir     string `json:"dir"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr      string `json:"addr"`
	Password  string `json:"password,omitempty"`
	DB        int    `json:"db"`
	KeyPrefix string `json:"key_prefix"`
}

type FormConfig struct {
	MaxHistory       int           `json:"max_history"`
	AutosaveInterval time.Duration `json:"autosave_interval"`
	SaveOnUpdate     bool          `json:"save_on_update"`
}

type RulesConfig struct {
	MinPatients        int `json:"min_patients"`
	MinVehicles        int `json:"min_vehicles"`
	MinFireUnits       int `json:"min_fire_units"`
	MinVolunteers      int `json:"min_volunteers"`
	MaxResponseMinutes int `json:"max_response_minutes"`
}

type GeocoderConfig struct {
	URL       string        `json:"url"`
	UserAgent string        `json:"user_agent"`
	RPS       float64       `json:"rps"`
	Timeout   time.Duration `json:"timeout"`
}

type RateLimitConfig struct {
	RPS   int           `json:"rps"`
	Burst int           `json:"burst"`
	TTL   time.Duration `json:"ttl"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendFile),
			Dir:     getEnv("STORAGE_DIR", "./data"),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "parte_emergencia"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        4,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "parte:"),
		},
		Form: FormConfig{
			MaxHistory:       getEnvInt("FORM_MAX_HISTORY", 50),
			AutosaveInterval: getEnvDuration("FORM_AUTOSAVE_INTERVAL", 30*time.Second),
			SaveOnUpdate:     getEnvBool("FORM_SAVE_ON_UPDATE", true),
		},
		Rules: RulesConfig{
			MinPatients:        getEnvInt("RULES_MIN_PATIENTS", 0),
			MinVehicles:        getEnvInt("RULES_MIN_VEHICLES", 0),
			MinFireUnits:       getEnvInt("RULES_MIN_FIRE_UNITS", 1),
			MinVolunteers:      getEnvInt("RULES_MIN_VOLUNTEERS", 1),
			MaxResponseMinutes: getEnvInt("RULES_MAX_RESPONSE_MINUTES", 30),
		},
		Geocoder: GeocoderConfig{
			URL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODER_USER_AGENT", "parte-emergencia/1.0"),
			RPS:       getEnvFloat("GEOCODER_RPS", 1),
			Timeout:   getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvInt("RATE_LIMIT_RPS", 2),
			Burst: getEnvInt("RATE_LIMIT_BURST", 5),
			TTL:   getEnvDuration("RATE_LIMIT_TTL", 5*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.Int("max_history", cfg.Form.MaxHistory),
		slog.Duration("autosave_interval", cfg.Form.AutosaveInterval),
		slog.String("geocoder_url", cfg.Geocoder.URL))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Storage.Dir == "" {
			return errors.New("STORAGE_DIR required for file backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR required for redis backend")
		}
	case BackendPostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required for postgres backend")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of memory, file, redis, postgres")
	}

	if c.Form.MaxHistory < 1 {
		return errors.New("FORM_MAX_HISTORY must be positive")
	}
	if c.Form.AutosaveInterval < time.Second {
		return errors.New("FORM_AUTOSAVE_INTERVAL must be at least 1s")
	}
	if c.Rules.MaxResponseMinutes < 0 || c.Rules.MinFireUnits < 0 || c.Rules.MinVolunteers < 0 ||
		c.Rules.MinPatients < 0 || c.Rules.MinVehicles < 0 {
		return errors.New("RULES_* values must not be negative")
	}
	if c.Geocoder.RPS <= 0 {
		return errors.New("GEOCODER_RPS must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
