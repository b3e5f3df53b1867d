package model

import "time"

// 学业事件类型
const (
	EventTypeExam       = "exam"
	EventTypeProject    = "project"
	EventTypeAssignment = "assignment"
	EventTypeQuiz       = "quiz"
	EventTypeHomework   = "homework"
)

// 学业事件状态，仅 pending 参与优先级分析
const (
	EventStatusPending    = "pending"
	EventStatusInProgress = "in_progress"
	EventStatusCompleted  = "completed"
	EventStatusOverdue    = "overdue"
)

// AcademicEvent 学业事件表 — 对应 academic_events
//
// Priority 为作者标注的优先级标签，与分析计算出的 priority_score / urgency_level 相互独立，
// 不参与评分。
type AcademicEvent struct {
	EventID        string    `gorm:"type:varchar(64);primaryKey"            json:"id"`
	UserID         string    `gorm:"type:varchar(64);not null;index"        json:"-"`
	Title          string    `gorm:"type:varchar(200);not null"             json:"title"`
	Description    string    `gorm:"type:text"                              json:"description"`
	CourseID       string    `gorm:"type:varchar(64);not null"              json:"course_id"`
	CourseName     string    `gorm:"type:varchar(150)"                      json:"course_name"` // 冗余课程名
	Type           string    `gorm:"type:varchar(20);not null"              json:"type"`        // exam | project | assignment | quiz | homework
	DueDate        time.Time `gorm:"not null"                               json:"due_date"`
	Weight         float64   `gorm:"type:numeric(5,4);not null"             json:"weight"` // 占总成绩比例 0-1
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Priority       string    `gorm:"type:varchar(20)"                       json:"priority"` // low | medium | high | critical
	EstimatedHours float64   `gorm:"type:numeric(6,2)"                      json:"estimated_hours"`
	SoftDeleteModel
}

// TableName 指定表名
func (AcademicEvent) TableName() string { return "academic_events" }

// IsPending 是否处于待完成状态
func (e *AcademicEvent) IsPending() bool {
	return e.Status == EventStatusPending
}
