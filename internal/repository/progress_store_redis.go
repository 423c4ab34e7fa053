package repository

import (
	"courseflow_backend/internal/model"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisProgressStore 每个用户一个键，值为整份进度集合的 JSON
type RedisProgressStore struct {
	rdb *redis.Client
}

func NewRedisProgressStore(rdb *redis.Client) *RedisProgressStore {
	return &RedisProgressStore{rdb: rdb}
}

func (s *RedisProgressStore) key(userID uint) string {
	return fmt.Sprintf("courseflow:user_progress:%d", userID)
}

func (s *RedisProgressStore) ReadAll(ctx context.Context, userID uint) ([]model.ProgressRecord, error) {
	data, err := s.rdb.Get(ctx, s.key(userID)).Bytes()
	if err == redis.Nil {
		return []model.ProgressRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []model.ProgressRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *RedisProgressStore) WriteAll(ctx context.Context, userID uint, records []model.ProgressRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(userID), data, 0).Err()
}
