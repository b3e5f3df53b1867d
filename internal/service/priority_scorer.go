package service

import (
	"math"
	"time"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

// ── 优先级评分 ──
//
// score = (weight*100 + max(0, 14-days)*5) * typeFactor + statusPenalty，保留两位小数
//   - days 为距截止的整天数（向零截断，已逾期为负数，逾期越久紧迫度越高）
//   - 非 pending 事件扣 50 分，使函数对任意状态的事件都可安全调用

const (
	urgencyHorizonDays    = 14
	urgencyPointsPerDay   = 5.0
	nonPendingPenalty     = -50.0
	defaultTypeMultiplier = 1.0
	weightToPercentFactor = 100.0
)

// typeMultipliers 事件类型系数，未知类型按 1.0
var typeMultipliers = map[string]float64{
	model.EventTypeExam:       1.2,
	model.EventTypeProject:    1.1,
	model.EventTypeAssignment: 1.0,
	model.EventTypeQuiz:       0.9,
	model.EventTypeHomework:   0.8,
}

// TypeMultiplier 返回事件类型系数
func TypeMultiplier(eventType string) float64 {
	if m, ok := typeMultipliers[eventType]; ok {
		return m
	}
	return defaultTypeMultiplier
}

// DaysUntilDue 距截止的整天数，向零截断而非四舍五入
func DaysUntilDue(due, now time.Time) int {
	return int(due.Sub(now) / (24 * time.Hour))
}

// ScoreEvent 计算单个事件的优先级分数
// weight 超出 [0,1] 时不做截断
func ScoreEvent(event *model.AcademicEvent, now time.Time) float64 {
	days := DaysUntilDue(event.DueDate, now)

	weightFactor := event.Weight * weightToPercentFactor
	urgencyFactor := math.Max(0, float64(urgencyHorizonDays-days)) * urgencyPointsPerDay

	penalty := 0.0
	if !event.IsPending() {
		penalty = nonPendingPenalty
	}

	return roundTo((weightFactor+urgencyFactor)*TypeMultiplier(event.Type)+penalty, 2)
}

// roundTo 保留 places 位小数，恰好居中时取偶数（银行家舍入）
func roundTo(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.RoundToEven(x*p) / p
}
