package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort            = 8000
	defaultLogLevel        = "info"
	defaultUpstreamBaseURL = "https://photon.komoot.io"
	defaultUpstreamTimeout = 10 * time.Second
	defaultUserAgent       = "geocoding-gateway/1.0.0"
	defaultCacheTTL        = 300 * time.Second
	defaultCORSOrigins     = "*"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

// UpstreamConfig - параметры подключения к геокодеру (Photon API)
type UpstreamConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// LogConfig - уровень и формат логов. Format: json или console,
// по умолчанию console только для debug.
type LogConfig struct {
	Level  string
	Format string
}

// Load читает конфигурацию из необязательного .env и переменных окружения.
// Переменные окружения приоритетнее значений из .env.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путем к .env. Отсутствие файла не ошибка.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Upstream: UpstreamConfig{
			BaseURL:   strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
			Timeout:   time.Duration(v.GetInt("UPSTREAM_TIMEOUT")) * time.Second,
			UserAgent: v.GetString("UPSTREAM_USER_AGENT"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("CACHE_ENABLED"),
			TTL:     time.Duration(v.GetInt("CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.CORSOrigins == "" {
		cfg.Server.CORSOrigins = defaultCORSOrigins
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = defaultUpstreamBaseURL
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = defaultUpstreamTimeout
	}
	if cfg.Upstream.UserAgent == "" {
		cfg.Upstream.UserAgent = defaultUserAgent
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.Log.Level == "debug" {
			cfg.Log.Format = "console"
		}
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Addr - адрес Redis в формате host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
