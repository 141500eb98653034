package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "scorekit:report:"

// defaultTTL bounds how long a report link stays live in redis.
const defaultTTL = 90 * 24 * time.Hour

// RedisStore persists reports as JSON blobs in redis with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the given address. The connection is lazy;
// errors surface on first use.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    defaultTTL,
	}
}

func redisKey(token string) string {
	return redisKeyPrefix + token
}

// CreateReport stores the record under its token key.
func (s *RedisStore) CreateReport(ctx context.Context, input CreateReportInput) (string, error) {
	record := newRecord(input)

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(record.Token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store report: %w", err)
	}

	return record.Token, nil
}

// GetReport looks a record up by token.
func (s *RedisStore) GetReport(ctx context.Context, token string) (*ReportRecord, error) {
	data, err := s.client.Get(ctx, redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch report: %w", err)
	}

	var record ReportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", token, err)
	}
	return &record, nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
