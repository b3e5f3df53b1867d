package model

import "gorm.io/datatypes"

// Course 课程表 — 对应 courses
type Course struct {
	CourseID     string                                 `gorm:"type:varchar(64);primaryKey"     json:"id"`
	UserID       string                                 `gorm:"type:varchar(64);not null;index" json:"-"`
	Name         string                                 `gorm:"type:varchar(150);not null"      json:"name"`
	Code         string                                 `gorm:"type:varchar(32);not null"       json:"code"`
	Credits      int                                    `gorm:"type:smallint;not null"          json:"credits"`
	Instructor   string                                 `gorm:"type:varchar(100)"               json:"instructor"`
	Color        string                                 `gorm:"type:varchar(16)"                json:"color"`
	Semester     string                                 `gorm:"type:varchar(20)"                json:"semester"` // Fall | Spring | Summer
	Year         int                                    `gorm:"type:smallint"                   json:"year"`
	GradeWeight  datatypes.JSONType[map[string]float64] `gorm:"type:jsonb;not null"             json:"grade_weight"` // 分类 → 占比，约定总和为 1
	CurrentGrade float64                                `gorm:"type:numeric(4,3)"               json:"current_grade"`
	TargetGrade  float64                                `gorm:"type:numeric(4,3)"               json:"target_grade"`
	SoftDeleteModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
