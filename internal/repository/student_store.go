package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
	pkgerrors "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/errors"
)

// StudentDataStore 学业数据源
//
// 返回某个学生的课程与事件快照，事件顺序必须稳定（决定同分时的选择结果）。
// 截止时间不合法须在此边界报 ErrMalformedEvent；数据源自身故障以 ErrStoreUnavailable 包装返回。
type StudentDataStore interface {
	Fetch(ctx context.Context, userID string) (*model.StudentData, error)
}

// dbStudentStore 基于 PostgreSQL 的学业数据源
type dbStudentStore struct {
	repo *Repository
}

// NewDBStudentStore 创建基于 Repository 的数据源
func NewDBStudentStore(repo *Repository) StudentDataStore {
	return &dbStudentStore{repo: repo}
}

func (s *dbStudentStore) Fetch(ctx context.Context, userID string) (*model.StudentData, error) {
	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 查询课程失败: %w", pkgerrors.ErrStoreUnavailable, err)
	}
	events, err := s.repo.Event.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 查询学业事件失败: %w", pkgerrors.ErrStoreUnavailable, err)
	}

	// last_updated 取所有记录中最近的更新时间
	var lastUpdated time.Time
	for i := range courses {
		if courses[i].UpdatedAt.After(lastUpdated) {
			lastUpdated = courses[i].UpdatedAt
		}
	}
	for i := range events {
		if events[i].UpdatedAt.After(lastUpdated) {
			lastUpdated = events[i].UpdatedAt
		}
	}

	return &model.StudentData{
		UserID:      userID,
		Courses:     courses,
		Events:      events,
		LastUpdated: lastUpdated,
	}, nil
}
