package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Course, error)
	BatchCreate(ctx context.Context, courses []model.Course) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) ListByUser(ctx context.Context, userID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("code ASC, course_id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) BatchCreate(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&courses).Error
}
