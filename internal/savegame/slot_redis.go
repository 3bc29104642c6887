package savegame

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key used when none is configured.
const DefaultRedisKey = "ladders:savegame"

// RedisSlot keeps the save under a single Redis key.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot creates a slot using an existing client.
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSlot{client: client, key: key}
}

// DialRedisSlot connects to addr and checks the server answers.
func DialRedisSlot(ctx context.Context, addr, key string) (*RedisSlot, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("savegame: cannot reach redis at %s: %w", addr, err)
	}
	return NewRedisSlot(client, key), nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("savegame: cannot write redis key %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("savegame: cannot read redis key %s: %w", s.key, err)
	}
	return data, nil
}

func (s *RedisSlot) Exists(ctx context.Context) (bool, error) {
	n, err := s.client.Exists(ctx, s.key).Result()
	if err != nil {
		return false, fmt.Errorf("savegame: cannot check redis key %s: %w", s.key, err)
	}
	return n > 0, nil
}

func (s *RedisSlot) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("savegame: cannot delete redis key %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisSlot) Location() string {
	return "redis:" + s.key
}

// Close releases the client connection.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
