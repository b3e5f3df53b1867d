package service

import (
	"testing"
	"time"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func pendingEvent(id, eventType string, weight float64, due time.Time) model.AcademicEvent {
	return model.AcademicEvent{
		EventID: id,
		Title:   "event " + id,
		Type:    eventType,
		DueDate: due,
		Weight:  weight,
		Status:  model.EventStatusPending,
	}
}

func TestScoreEvent_ExamDueInTwoDays(t *testing.T) {
	e := pendingEvent("e1", model.EventTypeExam, 0.30, testNow.AddDate(0, 0, 2))

	if days := DaysUntilDue(e.DueDate, testNow); days != 2 {
		t.Fatalf("期望 days=2，实际=%d", days)
	}
	if score := ScoreEvent(&e, testNow); score != 108.00 {
		t.Errorf("期望 score=108.00，实际=%v", score)
	}
	if level := ClassifyUrgency(2); level != UrgencyHigh {
		t.Errorf("期望 urgency=high，实际=%s", level)
	}
}

func TestScoreEvent_TypeMultipliers(t *testing.T) {
	// weight 0.2 + 距截止 4 天 → (20 + 50) * factor
	due := testNow.AddDate(0, 0, 4)
	cases := map[string]float64{
		model.EventTypeExam:       84.0,
		model.EventTypeProject:    77.0,
		model.EventTypeAssignment: 70.0,
		model.EventTypeQuiz:       63.0,
		model.EventTypeHomework:   56.0,
		"presentation":            70.0,
		"":                        70.0,
	}
	for eventType, want := range cases {
		e := pendingEvent("e", eventType, 0.2, due)
		if got := ScoreEvent(&e, testNow); got != want {
			t.Errorf("type=%q 期望 %v，实际 %v", eventType, want, got)
		}
	}
}

func TestScoreEvent_NonPendingPenalty(t *testing.T) {
	due := testNow.AddDate(0, 0, 4)
	for _, status := range []string{model.EventStatusInProgress, model.EventStatusCompleted, model.EventStatusOverdue, ""} {
		e := pendingEvent("e", model.EventTypeAssignment, 0.2, due)
		e.Status = status
		if got := ScoreEvent(&e, testNow); got != 20.0 {
			t.Errorf("status=%q 期望 70-50=20，实际 %v", status, got)
		}
	}
}

func TestScoreEvent_FarDeadlineHasNoUrgency(t *testing.T) {
	for _, d := range []int{14, 15, 60} {
		e := pendingEvent("e", model.EventTypeAssignment, 0.25, testNow.AddDate(0, 0, d))
		if got := ScoreEvent(&e, testNow); got != 25.0 {
			t.Errorf("days=%d 期望仅权重分 25，实际 %v", d, got)
		}
	}
}

func TestScoreEvent_MonotonicInDays(t *testing.T) {
	prev := -1.0
	// 从 14 天倒数到已逾期 5 天，分数不减
	for d := 14; d >= -5; d-- {
		e := pendingEvent("e", model.EventTypeQuiz, 0.1, testNow.AddDate(0, 0, d))
		got := ScoreEvent(&e, testNow)
		if prev >= 0 && got < prev {
			t.Fatalf("days=%d 分数 %v 小于更远截止的 %v", d, got, prev)
		}
		prev = got
	}
}

func TestScoreEvent_MonotonicInWeight(t *testing.T) {
	due := testNow.AddDate(0, 0, 3)
	prev := -1.0
	for w := 0.0; w <= 1.0; w += 0.05 {
		e := pendingEvent("e", model.EventTypeProject, w, due)
		got := ScoreEvent(&e, testNow)
		if got < prev {
			t.Fatalf("weight=%.2f 分数 %v 小于更小权重的 %v", w, got, prev)
		}
		prev = got
	}
}

func TestScoreEvent_OverdueKeepsGrowing(t *testing.T) {
	dueToday := pendingEvent("a", model.EventTypeHomework, 0.05, testNow)
	overdue := pendingEvent("b", model.EventTypeHomework, 0.05, testNow.AddDate(0, 0, -3))

	if ScoreEvent(&overdue, testNow) <= ScoreEvent(&dueToday, testNow) {
		t.Error("逾期仍为 pending 的事件分数应高于今天截止的事件")
	}
}

func TestScoreEvent_OutOfRangeWeightNotClamped(t *testing.T) {
	due := testNow.AddDate(0, 0, 20)
	heavy := pendingEvent("a", model.EventTypeAssignment, 1.5, due)
	negative := pendingEvent("b", model.EventTypeAssignment, -0.2, due)

	if got := ScoreEvent(&heavy, testNow); got != 150.0 {
		t.Errorf("weight=1.5 期望 150（不截断），实际 %v", got)
	}
	if got := ScoreEvent(&negative, testNow); got != -20.0 {
		t.Errorf("weight=-0.2 期望 -20（不截断），实际 %v", got)
	}
}

func TestScoreEvent_RoundsToTwoDecimals(t *testing.T) {
	e := pendingEvent("e", model.EventTypeQuiz, 0.123, testNow.AddDate(0, 0, 20))
	// 12.3 * 0.9 = 11.07
	if got := ScoreEvent(&e, testNow); got != 11.07 {
		t.Errorf("期望 11.07，实际 %v", got)
	}
}

func TestScoreEvent_HalfwayRoundsToEven(t *testing.T) {
	e := pendingEvent("e", model.EventTypeAssignment, 0.03125, testNow.AddDate(0, 0, 20))
	// 3.125 恰好居中，取偶数 3.12
	if got := ScoreEvent(&e, testNow); got != 3.12 {
		t.Errorf("期望 3.12，实际 %v", got)
	}
}

func TestDaysUntilDue_TruncatesTowardZero(t *testing.T) {
	cases := []struct {
		offset time.Duration
		want   int
	}{
		{47 * time.Hour, 1},
		{48 * time.Hour, 2},
		{23 * time.Hour, 0},
		{0, 0},
		{-12 * time.Hour, 0},
		{-24 * time.Hour, -1},
		{-36 * time.Hour, -1},
	}
	for _, tc := range cases {
		if got := DaysUntilDue(testNow.Add(tc.offset), testNow); got != tc.want {
			t.Errorf("offset=%s 期望 %d，实际 %d", tc.offset, tc.want, got)
		}
	}
}

func TestDaysUntilDue_MixedTimezones(t *testing.T) {
	tz := time.FixedZone("UTC-5", -5*3600)
	due := time.Date(2025, 3, 3, 4, 0, 0, 0, tz) // = 2025-03-03T09:00Z
	if got := DaysUntilDue(due, testNow); got != 2 {
		t.Errorf("跨时区期望 2 天，实际 %d", got)
	}
}
