package service

// 紧迫程度
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyModerate = "moderate"
	UrgencyLow      = "low"
)

// 课业负荷
const (
	CourseLoadHeavy    = "Heavy"
	CourseLoadModerate = "Moderate"
	CourseLoadLight    = "Light"
)

// heavyWorkloadThreshold 待办数达到该值即视为繁重，同时触发负荷类建议
const heavyWorkloadThreshold = 8

type dayThreshold struct {
	maxDays int
	level   string
}

// urgencyThresholds 按顺序匹配，首个满足 days <= maxDays 的生效
var urgencyThresholds = []dayThreshold{
	{maxDays: 1, level: UrgencyCritical},
	{maxDays: 3, level: UrgencyHigh},
	{maxDays: 7, level: UrgencyModerate},
}

// ClassifyUrgency 将剩余天数映射为紧迫程度；负数（已逾期）归为 critical
func ClassifyUrgency(daysUntilDue int) string {
	for _, t := range urgencyThresholds {
		if daysUntilDue <= t.maxDays {
			return t.level
		}
	}
	return UrgencyLow
}

type countThreshold struct {
	minCount int
	load     string
}

var courseLoadThresholds = []countThreshold{
	{minCount: heavyWorkloadThreshold, load: CourseLoadHeavy},
	{minCount: 5, load: CourseLoadModerate},
}

// ClassifyCourseLoad 按待办事件数量划分课业负荷
func ClassifyCourseLoad(pendingCount int) string {
	for _, t := range courseLoadThresholds {
		if pendingCount >= t.minCount {
			return t.load
		}
	}
	return CourseLoadLight
}
