package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

// AcademicEventRepository 学业事件数据访问接口
type AcademicEventRepository interface {
	// ListByUser 按截止时间升序返回用户全部事件，顺序稳定（同一截止时间按 event_id）
	ListByUser(ctx context.Context, userID string) ([]model.AcademicEvent, error)
	BatchCreate(ctx context.Context, events []model.AcademicEvent) error
}

type academicEventRepo struct {
	db *gorm.DB
}

// NewAcademicEventRepo 创建 AcademicEventRepository 实例
func NewAcademicEventRepo(db *gorm.DB) AcademicEventRepository {
	return &academicEventRepo{db: db}
}

func (r *academicEventRepo) ListByUser(ctx context.Context, userID string) ([]model.AcademicEvent, error) {
	var events []model.AcademicEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC, event_id ASC").
		Find(&events).Error
	return events, err
}

func (r *academicEventRepo) BatchCreate(ctx context.Context, events []model.AcademicEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}
