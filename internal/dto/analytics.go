package dto

// ── 优先级分析模块 DTO ──

// AnalysisResult 最高优先级待办事件分析结果
// 无待办事件与正常分析两种情况共用同一结构，前者 Data.Event 为 null
type AnalysisResult struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Data      AnalysisData `json:"data"`
	Timestamp string       `json:"timestamp"`
	UserID    string       `json:"user_id"`
}

// AnalysisData 分析结果主体
type AnalysisData struct {
	Event           *PrioritizedEventResponse `json:"event"`
	Analysis        AnalysisSummary           `json:"analysis"`
	Recommendations []string                  `json:"recommendations"`
}

// AnalysisSummary 待办事件聚合统计
type AnalysisSummary struct {
	TotalPendingEvents int     `json:"total_pending_events"`
	AverageWeight      float64 `json:"average_weight"`
	DaysToDue          int     `json:"days_to_due"`
	UrgencyLevel       string  `json:"urgency_level"` // critical | high | moderate | low
	ImpactScore        float64 `json:"impact_score"`
	CourseLoad         string  `json:"course_load"` // Heavy | Moderate | Light
}

// EventResponse 学业事件信息
type EventResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	CourseID       string  `json:"course_id"`
	CourseName     string  `json:"course_name"`
	Type           string  `json:"type"`
	DueDate        string  `json:"due_date"`
	Weight         float64 `json:"weight"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// PrioritizedEventResponse 附带派生字段的学业事件（仅本次请求有效，不回写数据源）
type PrioritizedEventResponse struct {
	EventResponse
	PriorityScore float64 `json:"priority_score"`
	DaysUntilDue  int     `json:"days_until_due"`
}

// RankingResponse 全部待办事件按优先级排序
type RankingResponse struct {
	UserID    string                     `json:"user_id"`
	Timestamp string                     `json:"timestamp"`
	Total     int                        `json:"total"`
	List      []PrioritizedEventResponse `json:"list"`
}

// RankingPageResponse 排行分页结果，Total 为全部待办事件数
type RankingPageResponse struct {
	UserID    string                     `json:"user_id"`
	Timestamp string                     `json:"timestamp"`
	Total     int                        `json:"total"`
	Page      int                        `json:"page"`
	PageSize  int                        `json:"page_size"`
	List      []PrioritizedEventResponse `json:"list"`
}

// ── 原始数据透传 ──

// CourseResponse 课程信息
type CourseResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Code         string             `json:"code"`
	Credits      int                `json:"credits"`
	Instructor   string             `json:"instructor"`
	Color        string             `json:"color"`
	Semester     string             `json:"semester"`
	Year         int                `json:"year"`
	GradeWeight  map[string]float64 `json:"grade_weight"`
	CurrentGrade float64            `json:"current_grade"`
	TargetGrade  float64            `json:"target_grade"`
}

// StudentDataResponse 学生学业数据快照
type StudentDataResponse struct {
	UserID      string           `json:"user_id"`
	Courses     []CourseResponse `json:"courses"`
	Events      []EventResponse  `json:"events"`
	LastUpdated string           `json:"last_updated"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// NotFoundResponse 未知端点响应
type NotFoundResponse struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}
