package repository

import (
	"context"
	"encoding/json"
	"quiz_backend/internal/model"
	"quiz_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const subjectCacheKey = "quiz:subjects:all"

// SubjectCache 学科为只读参考数据，整表缓存在 Redis
type SubjectCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewSubjectCache(rdb *redis.Client, ttl time.Duration) *SubjectCache {
	return &SubjectCache{Redis: rdb, TTL: ttl}
}

// GetSubjects 缓存未命中或 Redis 出错时返回 false，由调用方回源数据库
func (c *SubjectCache) GetSubjects(ctx context.Context) ([]model.Subject, bool) {
	val, err := c.Redis.Get(ctx, subjectCacheKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Log.Warn("subject cache read failed", zap.Error(err))
		return nil, false
	}

	var subjects []model.Subject
	if err := json.Unmarshal([]byte(val), &subjects); err != nil {
		logger.Log.Warn("subject cache decode failed", zap.Error(err))
		return nil, false
	}
	return subjects, true
}

func (c *SubjectCache) SetSubjects(ctx context.Context, subjects []model.Subject) {
	data, err := json.Marshal(subjects)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, subjectCacheKey, data, c.TTL).Err(); err != nil {
		logger.Log.Warn("subject cache write failed", zap.Error(err))
	}
}
