package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

const redisNamespace = "bankmitra"

// RedisStore keeps each snapshot section under a namespaced key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Close() {
	s.client.Close()
}

func (s *RedisStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	sections := map[string][]byte{}
	for _, key := range allKeys {
		data, err := s.client.Get(ctx, redisNamespace+":"+key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot read failed for %s: %w", key, err)
		}
		sections[key] = data
	}
	if len(sections) == 0 {
		return nil, ErrNoSnapshot
	}
	return decodeSections(sections)
}

func (s *RedisStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	sections, err := encodeSections(snap)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	for key, data := range sections {
		pipe.Set(ctx, redisNamespace+":"+key, data, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("snapshot write failed: %w", err)
	}
	return nil
}
