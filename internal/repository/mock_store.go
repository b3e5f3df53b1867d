package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
)

// mockStudentStore 演示用学业数据源
// 三门课程、六个待办事件，截止时间相对时钟当前时刻生成
type mockStudentStore struct {
	clock clock.Clock
}

// NewMockStudentStore 创建演示数据源
func NewMockStudentStore(c clock.Clock) StudentDataStore {
	return &mockStudentStore{clock: c}
}

func (s *mockStudentStore) Fetch(_ context.Context, userID string) (*model.StudentData, error) {
	now := s.clock.Now()
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }

	courses := []model.Course{
		{
			CourseID:   "cs101",
			UserID:     userID,
			Name:       "Introduction to Computer Science",
			Code:       "CS 101",
			Credits:    3,
			Instructor: "Dr. Smith",
			Color:      "#122C4A",
			Semester:   "Fall",
			Year:       2024,
			GradeWeight: datatypes.NewJSONType(map[string]float64{
				"assignments": 0.4, "exams": 0.4, "projects": 0.15, "participation": 0.05,
			}),
			CurrentGrade: 0.85,
			TargetGrade:  0.90,
		},
		{
			CourseID:   "math201",
			UserID:     userID,
			Name:       "Calculus II",
			Code:       "MATH 201",
			Credits:    4,
			Instructor: "Prof. Johnson",
			Color:      "#50E3C2",
			Semester:   "Fall",
			Year:       2024,
			GradeWeight: datatypes.NewJSONType(map[string]float64{
				"assignments": 0.25, "exams": 0.60, "projects": 0.0, "participation": 0.15,
			}),
			CurrentGrade: 0.78,
			TargetGrade:  0.85,
		},
		{
			CourseID:   "phys151",
			UserID:     userID,
			Name:       "Physics I",
			Code:       "PHYS 151",
			Credits:    4,
			Instructor: "Dr. Wilson",
			Color:      "#FF6B6B",
			Semester:   "Fall",
			Year:       2024,
			GradeWeight: datatypes.NewJSONType(map[string]float64{
				"assignments": 0.20, "exams": 0.50, "projects": 0.20, "participation": 0.10,
			}),
			CurrentGrade: 0.82,
			TargetGrade:  0.88,
		},
	}

	events := []model.AcademicEvent{
		{
			EventID: "event1", UserID: userID,
			Title:       "Final Programming Project",
			Description: "Develop a complete web application using React and Node.js",
			CourseID:    "cs101", CourseName: "Introduction to Computer Science",
			Type: model.EventTypeProject, DueDate: days(5), Weight: 0.25,
			Status: model.EventStatusPending, Priority: "high", EstimatedHours: 20,
		},
		{
			EventID: "event2", UserID: userID,
			Title:       "Calculus Midterm Exam",
			Description: "Comprehensive exam covering integration techniques and applications",
			CourseID:    "math201", CourseName: "Calculus II",
			Type: model.EventTypeExam, DueDate: days(2), Weight: 0.30,
			Status: model.EventStatusPending, Priority: "critical", EstimatedHours: 8,
		},
		{
			EventID: "event3", UserID: userID,
			Title:       "Physics Lab Report #3",
			Description: "Analysis of pendulum motion and harmonic oscillation",
			CourseID:    "phys151", CourseName: "Physics I",
			Type: model.EventTypeAssignment, DueDate: days(1), Weight: 0.08,
			Status: model.EventStatusPending, Priority: "medium", EstimatedHours: 4,
		},
		{
			EventID: "event4", UserID: userID,
			Title:       "Homework Assignment 7",
			Description: "Integration by parts and partial fractions",
			CourseID:    "math201", CourseName: "Calculus II",
			Type: model.EventTypeHomework, DueDate: days(7), Weight: 0.05,
			Status: model.EventStatusPending, Priority: "medium", EstimatedHours: 3,
		},
		{
			EventID: "event5", UserID: userID,
			Title:       "Algorithm Analysis Quiz",
			Description: "Big O notation and complexity analysis",
			CourseID:    "cs101", CourseName: "Introduction to Computer Science",
			Type: model.EventTypeQuiz, DueDate: days(10), Weight: 0.08,
			Status: model.EventStatusPending, Priority: "medium", EstimatedHours: 2,
		},
		{
			EventID: "event6", UserID: userID,
			Title:       "Physics Final Exam",
			Description: "Comprehensive final covering all semester material",
			CourseID:    "phys151", CourseName: "Physics I",
			Type: model.EventTypeExam, DueDate: days(12), Weight: 0.35,
			Status: model.EventStatusPending, Priority: "high", EstimatedHours: 12,
		},
	}

	return &model.StudentData{
		UserID:      userID,
		Courses:     courses,
		Events:      events,
		LastUpdated: now,
	}, nil
}
