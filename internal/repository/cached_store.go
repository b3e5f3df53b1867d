package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

// SnapshotCache 快照缓存（由 pkg/redis.Client 实现）
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

const snapshotKeyPrefix = "analytics:snapshot:"

// cachedStudentStore 在底层数据源前加一层 TTL 缓存
// 缓存读写失败时降级直连底层数据源，不影响请求结果
type cachedStudentStore struct {
	next   StudentDataStore
	cache  SnapshotCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedStudentStore 创建带缓存的数据源；cache 为 nil 或 ttl<=0 时直接返回 next
func NewCachedStudentStore(next StudentDataStore, cache SnapshotCache, ttl time.Duration, logger *zap.Logger) StudentDataStore {
	if cache == nil || ttl <= 0 {
		return next
	}
	return &cachedStudentStore{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (s *cachedStudentStore) Fetch(ctx context.Context, userID string) (*model.StudentData, error) {
	key := snapshotKeyPrefix + userID

	var cached model.StudentData
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("读取学业数据缓存失败，降级直连数据源", zap.String("user_id", userID), zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	data, err := s.next.Fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("写入学业数据缓存失败", zap.String("user_id", userID), zap.Error(err))
	}

	return data, nil
}
