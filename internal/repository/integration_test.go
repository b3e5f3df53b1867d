//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=aceup password=aceup_password dbname=aceup_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	if err := testDB.AutoMigrate(&model.Course{}, &model.AcademicEvent{}); err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// seedStudent 写入一名学生的课程与事件并返回清理函数
func seedStudent(t *testing.T, repo *repository.Repository) (userID string, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	userID = fmt.Sprintf("it-%d", time.Now().UnixNano())
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	courses := []model.Course{{
		CourseID:    userID + "-cs101",
		UserID:      userID,
		Name:        "Introduction to Computer Science",
		Code:        "CS 101",
		Credits:     3,
		GradeWeight: datatypes.NewJSONType(map[string]float64{"exams": 0.6, "assignments": 0.4}),
	}}
	if err := repo.Course.BatchCreate(ctx, courses); err != nil {
		t.Fatalf("写入课程失败: %v", err)
	}

	events := []model.AcademicEvent{
		{EventID: userID + "-b", UserID: userID, Title: "Quiz", CourseID: courses[0].CourseID, Type: model.EventTypeQuiz, DueDate: base.AddDate(0, 0, 3), Weight: 0.05, Status: model.EventStatusPending},
		{EventID: userID + "-a", UserID: userID, Title: "Exam", CourseID: courses[0].CourseID, Type: model.EventTypeExam, DueDate: base.AddDate(0, 0, 3), Weight: 0.3, Status: model.EventStatusPending},
		{EventID: userID + "-c", UserID: userID, Title: "Lab", CourseID: courses[0].CourseID, Type: model.EventTypeAssignment, DueDate: base.AddDate(0, 0, 1), Weight: 0.1, Status: model.EventStatusCompleted},
	}
	if err := repo.Event.BatchCreate(ctx, events); err != nil {
		t.Fatalf("写入事件失败: %v", err)
	}

	return userID, func() {
		testDB.Unscoped().Where("user_id = ?", userID).Delete(&model.AcademicEvent{})
		testDB.Unscoped().Where("user_id = ?", userID).Delete(&model.Course{})
	}
}

// ═══════════════════════════════════════════════════════════
// DB StudentDataStore
// ═══════════════════════════════════════════════════════════

func TestDBStudentStore_Fetch(t *testing.T) {
	repo := repository.NewRepository(testDB)
	userID, cleanup := seedStudent(t, repo)
	defer cleanup()

	data, err := repository.NewDBStudentStore(repo).Fetch(context.Background(), userID)
	if err != nil {
		t.Fatalf("Fetch 应成功: %v", err)
	}
	if len(data.Courses) != 1 || len(data.Events) != 3 {
		t.Fatalf("期望 1 门课程 3 个事件，实际 %d/%d", len(data.Courses), len(data.Events))
	}
	// 按 due_date ASC, event_id ASC 排序
	wantOrder := []string{userID + "-c", userID + "-a", userID + "-b"}
	for i, id := range wantOrder {
		if data.Events[i].EventID != id {
			t.Errorf("索引 %d 期望 %s，实际 %s", i, id, data.Events[i].EventID)
		}
	}
	if data.Courses[0].GradeWeight.Data()["exams"] != 0.6 {
		t.Error("grade_weight JSONB 读取错误")
	}
	if data.LastUpdated.IsZero() {
		t.Error("last_updated 应取记录更新时间")
	}
}

func TestDBStudentStore_Fetch_UnknownUser(t *testing.T) {
	repo := repository.NewRepository(testDB)

	data, err := repository.NewDBStudentStore(repo).Fetch(context.Background(), "no-such-user")
	if err != nil {
		t.Fatalf("未知学生应返回空快照: %v", err)
	}
	if len(data.Events) != 0 || len(data.Courses) != 0 {
		t.Errorf("期望空快照，实际 %+v", data)
	}
}
