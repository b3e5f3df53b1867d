package service

import (
	"fmt"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

// ── 建议生成 ──
//
// 依次追加四组建议：时间 → 权重 → 负荷 → 类型。组内互斥，组间独立，输出顺序固定。

const (
	highImpactWeight     = 0.30
	moderateImpactWeight = 0.15
)

// noPendingRecommendations 无待办事件时的固定建议
var noPendingRecommendations = []string{
	"Consider planning ahead for upcoming assignments",
	"Review your course syllabi for future deadlines",
	"Use this free time to get ahead on reading or projects",
}

// Recommend 为选中的事件生成建议列表，每次调用返回新的切片
func Recommend(event *model.AcademicEvent, totalPending, daysUntilDue int) []string {
	recs := make([]string, 0, 8)
	recs = append(recs, timeRecommendations(event.Type, daysUntilDue)...)
	recs = append(recs, weightRecommendations(event.Weight)...)
	recs = append(recs, workloadRecommendations(totalPending)...)
	recs = append(recs, typeRecommendations(event.Type)...)
	return recs
}

func timeRecommendations(eventType string, days int) []string {
	switch {
	case days <= 1:
		return []string{
			fmt.Sprintf("🚨 URGENT: This %s is due within 24 hours!", eventType),
			"Focus solely on this task and complete it as soon as possible",
		}
	case days <= 3:
		return []string{
			fmt.Sprintf("⚠️ Priority: This %s is due very soon", eventType),
			"Allocate significant time today to work on this",
		}
	case days <= 7:
		return []string{
			fmt.Sprintf("📅 Plan ahead: Start working on this %s soon", eventType),
		}
	}
	return nil
}

func weightRecommendations(weight float64) []string {
	percent := int(weight * 100)
	switch {
	case weight >= highImpactWeight:
		return []string{
			fmt.Sprintf("💎 High Impact: This task represents %d%% of your grade", percent),
			"Consider dedicating extra study time given its importance",
		}
	case weight >= moderateImpactWeight:
		return []string{
			fmt.Sprintf("📊 Moderate Impact: Worth %d%% of your final grade", percent),
		}
	}
	return nil
}

func workloadRecommendations(totalPending int) []string {
	if totalPending < heavyWorkloadThreshold {
		return nil
	}
	return []string{
		"📚 Heavy workload detected - prioritize by due date and weight",
		"Break down large tasks into smaller, manageable chunks",
	}
}

func typeRecommendations(eventType string) []string {
	switch eventType {
	case model.EventTypeExam:
		return []string{
			"📖 Create a study schedule leading up to the exam",
			"Review past materials and practice problems",
		}
	case model.EventTypeProject:
		return []string{
			"🛠️ Break this project into phases with mini-deadlines",
			"Start with research and planning phases",
		}
	case model.EventTypeAssignment:
		return []string{
			"✍️ Begin with an outline or initial draft",
		}
	}
	return nil
}
