package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
	pkgerrors "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/errors"
)

// ── Mock SnapshotCache ──

type mockSnapshotCache struct {
	items  map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMockSnapshotCache() *mockSnapshotCache {
	return &mockSnapshotCache{items: make(map[string][]byte)}
}

func (m *mockSnapshotCache) GetJSON(_ context.Context, key string, dst interface{}) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *mockSnapshotCache) SetJSON(_ context.Context, key string, v interface{}, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.items[key] = raw
	m.sets++
	return nil
}

// ── 计数数据源 ──

type countingStore struct {
	next  StudentDataStore
	calls int
	err   error
}

func (c *countingStore) Fetch(ctx context.Context, userID string) (*model.StudentData, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.next.Fetch(ctx, userID)
}

func newCountingMockStore() *countingStore {
	return &countingStore{next: NewMockStudentStore(clock.NewFixed(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))}
}

func TestCachedStudentStore_HitAfterMiss(t *testing.T) {
	backend := newCountingMockStore()
	cache := newMockSnapshotCache()
	store := NewCachedStudentStore(backend, cache, time.Minute, zap.NewNop())

	first, err := store.Fetch(context.Background(), "student123")
	if err != nil {
		t.Fatalf("首次 Fetch 应成功: %v", err)
	}
	second, err := store.Fetch(context.Background(), "student123")
	if err != nil {
		t.Fatalf("二次 Fetch 应成功: %v", err)
	}

	if backend.calls != 1 {
		t.Errorf("期望底层数据源只调用 1 次，实际 %d", backend.calls)
	}
	if len(second.Events) != len(first.Events) {
		t.Fatalf("缓存快照事件数不一致: %d vs %d", len(second.Events), len(first.Events))
	}
	for i := range first.Events {
		if !first.Events[i].DueDate.Equal(second.Events[i].DueDate) {
			t.Errorf("缓存快照截止时间不一致（索引 %d）", i)
		}
	}
	if second.Courses[0].GradeWeight.Data()["exams"] != first.Courses[0].GradeWeight.Data()["exams"] {
		t.Error("缓存快照 grade_weight 不一致")
	}
}

func TestCachedStudentStore_DegradesOnCacheError(t *testing.T) {
	backend := newCountingMockStore()
	cache := newMockSnapshotCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	store := NewCachedStudentStore(backend, cache, time.Minute, zap.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := store.Fetch(context.Background(), "student123"); err != nil {
			t.Fatalf("缓存故障时应降级成功: %v", err)
		}
	}
	if backend.calls != 2 {
		t.Errorf("期望每次直连数据源，实际调用 %d 次", backend.calls)
	}
}

func TestCachedStudentStore_PropagatesStoreError(t *testing.T) {
	backend := newCountingMockStore()
	backend.err = pkgerrors.ErrStoreUnavailable
	cache := newMockSnapshotCache()
	store := NewCachedStudentStore(backend, cache, time.Minute, zap.NewNop())

	_, err := store.Fetch(context.Background(), "student123")
	if !errors.Is(err, pkgerrors.ErrStoreUnavailable) {
		t.Errorf("期望原样传播 ErrStoreUnavailable，实际: %v", err)
	}
	if cache.sets != 0 {
		t.Error("失败结果不应写入缓存")
	}
}

func TestNewCachedStudentStore_Disabled(t *testing.T) {
	backend := newCountingMockStore()
	if got := NewCachedStudentStore(backend, newMockSnapshotCache(), 0, zap.NewNop()); got != StudentDataStore(backend) {
		t.Error("ttl=0 时应直接返回底层数据源")
	}
	if got := NewCachedStudentStore(backend, nil, time.Minute, zap.NewNop()); got != StudentDataStore(backend) {
		t.Error("cache=nil 时应直接返回底层数据源")
	}
}
