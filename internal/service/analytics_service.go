package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/dto"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/repository"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
	pkgerrors "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/errors"
)

const (
	msgAnalysisSuccess = "Successfully identified highest priority pending academic event"
	msgNoPendingEvents = "No pending academic events found. Great job staying on top of your work!"
)

// AnalyticsService 学业优先级分析业务接口
//
// 每次调用从数据源取一次快照、从时钟取一次 now，计算过程无共享可变状态，可并发调用。
type AnalyticsService interface {
	// AnalyzeHighestPriority 找出当前优先级最高的待办事件并给出建议
	AnalyzeHighestPriority(ctx context.Context, userID string) (*dto.AnalysisResult, error)
	// RankPendingEvents 返回全部待办事件，按优先级分数降序（同分保持数据源顺序）
	RankPendingEvents(ctx context.Context, userID string) (*dto.RankingResponse, error)
	// GetStudentData 原样返回学业数据快照
	GetStudentData(ctx context.Context, userID string) (*dto.StudentDataResponse, error)
}

type analyticsService struct {
	store  repository.StudentDataStore
	clock  clock.Clock
	logger *zap.Logger
}

// NewAnalyticsService 创建 AnalyticsService 实例
func NewAnalyticsService(store repository.StudentDataStore, c clock.Clock, logger *zap.Logger) AnalyticsService {
	return &analyticsService{store: store, clock: c, logger: logger}
}

// scoredEvent 事件工作副本及其派生字段
type scoredEvent struct {
	event *model.AcademicEvent
	score float64
	days  int
}

// ────────────────────── AnalyzeHighestPriority ──────────────────────

func (s *analyticsService) AnalyzeHighestPriority(ctx context.Context, userID string) (*dto.AnalysisResult, error) {
	now := s.clock.Now()

	scored, err := s.loadScoredPending(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if len(scored) == 0 {
		return noPendingResult(userID, now), nil
	}

	// 取最高分，同分时保留先出现的事件
	best := 0
	totalWeight := 0.0
	for i := range scored {
		if scored[i].score > scored[best].score {
			best = i
		}
		totalWeight += scored[i].event.Weight
	}
	winner := scored[best]
	pending := len(scored)

	winnerResp := toPrioritizedEventResponse(&winner)

	s.logger.Debug("优先级分析完成",
		zap.String("user_id", userID),
		zap.Int("pending", pending),
		zap.String("event_id", winner.event.EventID),
		zap.Float64("priority_score", winner.score),
	)

	return &dto.AnalysisResult{
		Success: true,
		Message: msgAnalysisSuccess,
		Data: dto.AnalysisData{
			Event: &winnerResp,
			Analysis: dto.AnalysisSummary{
				TotalPendingEvents: pending,
				AverageWeight:      roundTo(totalWeight/float64(pending), 3),
				DaysToDue:          winner.days,
				UrgencyLevel:       ClassifyUrgency(winner.days),
				ImpactScore:        winner.score,
				CourseLoad:         ClassifyCourseLoad(pending),
			},
			Recommendations: Recommend(winner.event, pending, winner.days),
		},
		Timestamp: formatTimestamp(now),
		UserID:    userID,
	}, nil
}

// ────────────────────── RankPendingEvents ──────────────────────

func (s *analyticsService) RankPendingEvents(ctx context.Context, userID string) (*dto.RankingResponse, error) {
	now := s.clock.Now()

	scored, err := s.loadScoredPending(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	list := make([]dto.PrioritizedEventResponse, 0, len(scored))
	for i := range scored {
		list = append(list, toPrioritizedEventResponse(&scored[i]))
	}

	return &dto.RankingResponse{
		UserID:    userID,
		Timestamp: formatTimestamp(now),
		Total:     len(list),
		List:      list,
	}, nil
}

// ────────────────────── GetStudentData ──────────────────────

func (s *analyticsService) GetStudentData(ctx context.Context, userID string) (*dto.StudentDataResponse, error) {
	data, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses := make([]dto.CourseResponse, 0, len(data.Courses))
	for i := range data.Courses {
		courses = append(courses, toCourseResponse(&data.Courses[i]))
	}
	events := make([]dto.EventResponse, 0, len(data.Events))
	for i := range data.Events {
		events = append(events, toEventResponse(&data.Events[i]))
	}

	lastUpdated := data.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = s.clock.Now()
	}

	return &dto.StudentDataResponse{
		UserID:      userID,
		Courses:     courses,
		Events:      events,
		LastUpdated: formatTimestamp(lastUpdated),
	}, nil
}

// ── 内部辅助方法 ──

func (s *analyticsService) fetch(ctx context.Context, userID string) (*model.StudentData, error) {
	data, err := s.store.Fetch(ctx, userID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrMalformedEvent) {
			s.logger.Warn("学业数据不合法", zap.String("user_id", userID), zap.Error(err))
		} else {
			s.logger.Error("获取学业数据失败", zap.String("user_id", userID), zap.Error(err))
		}
		return nil, err
	}
	return data, nil
}

// loadScoredPending 过滤 pending 事件、校验并计算派生字段
// 任一 pending 事件不合法则整体失败，不静默丢弃
func (s *analyticsService) loadScoredPending(ctx context.Context, userID string, now time.Time) ([]scoredEvent, error) {
	data, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredEvent, 0, len(data.Events))
	for i := range data.Events {
		event := data.Events[i]
		if !event.IsPending() {
			continue
		}
		if err := validatePendingEvent(&event); err != nil {
			s.logger.Warn("待办事件不合法", zap.String("user_id", userID), zap.Error(err))
			return nil, err
		}
		scored = append(scored, scoredEvent{
			event: &event,
			score: ScoreEvent(&event, now),
			days:  DaysUntilDue(event.DueDate, now),
		})
	}
	return scored, nil
}

func validatePendingEvent(event *model.AcademicEvent) error {
	if event.EventID == "" {
		return fmt.Errorf("%w: 事件缺少 id（标题 %q）", pkgerrors.ErrMalformedEvent, event.Title)
	}
	if event.DueDate.IsZero() {
		return fmt.Errorf("%w: 事件 %q 缺少截止时间", pkgerrors.ErrMalformedEvent, event.EventID)
	}
	return nil
}

func noPendingResult(userID string, now time.Time) *dto.AnalysisResult {
	recs := make([]string, len(noPendingRecommendations))
	copy(recs, noPendingRecommendations)

	return &dto.AnalysisResult{
		Success: true,
		Message: msgNoPendingEvents,
		Data: dto.AnalysisData{
			Event: nil,
			Analysis: dto.AnalysisSummary{
				TotalPendingEvents: 0,
				AverageWeight:      0.0,
				DaysToDue:          0,
				UrgencyLevel:       UrgencyLow,
				ImpactScore:        0.0,
				CourseLoad:         CourseLoadLight,
			},
			Recommendations: recs,
		},
		Timestamp: formatTimestamp(now),
		UserID:    userID,
	}
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func toEventResponse(e *model.AcademicEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:             e.EventID,
		Title:          e.Title,
		Description:    e.Description,
		CourseID:       e.CourseID,
		CourseName:     e.CourseName,
		Type:           e.Type,
		DueDate:        formatTimestamp(e.DueDate),
		Weight:         e.Weight,
		Status:         e.Status,
		Priority:       e.Priority,
		EstimatedHours: e.EstimatedHours,
	}
}

func toPrioritizedEventResponse(se *scoredEvent) dto.PrioritizedEventResponse {
	return dto.PrioritizedEventResponse{
		EventResponse: toEventResponse(se.event),
		PriorityScore: se.score,
		DaysUntilDue:  se.days,
	}
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	weights := make(map[string]float64, len(c.GradeWeight.Data()))
	for k, v := range c.GradeWeight.Data() {
		weights[k] = v
	}
	return dto.CourseResponse{
		ID:           c.CourseID,
		Name:         c.Name,
		Code:         c.Code,
		Credits:      c.Credits,
		Instructor:   c.Instructor,
		Color:        c.Color,
		Semester:     c.Semester,
		Year:         c.Year,
		GradeWeight:  weights,
		CurrentGrade: c.CurrentGrade,
		TargetGrade:  c.TargetGrade,
	}
}
