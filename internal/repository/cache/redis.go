package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/geocoding-gateway/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	connectTimeout = 5 * time.Second

	// Кеш не должен тормозить ответ: медленный Redis считаем промахом
	commandTimeout = 500 * time.Millisecond
)

// Redis - подключение к Redis, которое используют кеш ответов и health check
type Redis struct {
	client *redis.Client
	addr   string
	logger *zap.Logger
}

// NewRedis подключается к Redis и проверяет соединение через PING.
// При недоступном сервере возвращает ошибку, клиент закрывается.
func NewRedis(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	addr := cfg.Addr()
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  connectTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logger.Info("Redis connected", zap.String("addr", addr), zap.Int("db", cfg.DB))

	return &Redis{
		client: client,
		addr:   addr,
		logger: logger,
	}, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection", zap.String("addr", r.addr))
	return r.client.Close()
}

// Health реализует проверку зависимости для /health
func (r *Redis) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", r.addr, err)
	}
	return nil
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
