package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-showtime/internal/data/entity"
	"cinema-showtime/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisIface is the subset of the go-redis client used by RedisStorage.
type RedisIface interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// InitRedis connects to the server described by config and pings it.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}

// RedisStorage keeps the state document under a single key with no expiry.
type RedisStorage struct {
	client RedisIface
	key    string
	log    *zap.Logger
}

func NewRedisStorage(client RedisIface, key string, log *zap.Logger) *RedisStorage {
	return &RedisStorage{
		client: client,
		key:    key,
		log:    log.With(zap.String("storage", "redis"), zap.String("key", key)),
	}
}

func (s *RedisStorage) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		s.log.Info("No stored state, starting empty")
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		s.log.Error("Failed to read state key", zap.Error(err))
		return entity.NewSnapshot(), &PersistenceError{Op: OpRead, Location: s.key, Err: err}
	}

	snapshot, err := decodeSnapshot(s.key, data)
	if err != nil {
		s.log.Error("Failed to decode state key", zap.Error(err))
		return entity.NewSnapshot(), err
	}

	return snapshot, nil
}

func (s *RedisStorage) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return &PersistenceError{Op: OpEncode, Location: s.key, Err: err}
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		s.log.Error("Failed to write state key", zap.Error(err))
		return &PersistenceError{Op: OpWrite, Location: s.key, Err: err}
	}

	s.log.Info("State saved", zap.Int("bytes", len(data)))
	return nil
}

func (s *RedisStorage) Close() {
	if err := s.client.Close(); err != nil {
		s.log.Warn("Failed to close redis client", zap.Error(err))
	}
}
