package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "comments-"

// RedisStore keeps each discussion as a redis set of serialized records.
// SADD is atomic, so concurrent submissions never clobber one another.
type RedisStore struct {
	client *redis.Client
}

func OpenRedis(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) key(discussionID string) string {
	return redisKeyPrefix + discussionID
}

func (s *RedisStore) Add(ctx context.Context, discussionID, record string) error {
	if err := s.client.SAdd(ctx, s.key(discussionID), record).Err(); err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, discussionID string) ([]string, error) {
	records, err := s.client.SMembers(ctx, s.key(discussionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
