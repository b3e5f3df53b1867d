package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/model"
	pkgerrors "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/errors"
)

// fixtureFile 学业数据文件结构（YAML，JSON 亦可）
type fixtureFile struct {
	Students []fixtureStudent `yaml:"students"`
}

type fixtureStudent struct {
	UserID      string          `yaml:"user_id"`
	LastUpdated string          `yaml:"last_updated"`
	Courses     []fixtureCourse `yaml:"courses"`
	Events      []fixtureEvent  `yaml:"events"`
}

type fixtureCourse struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Code         string             `yaml:"code"`
	Credits      int                `yaml:"credits"`
	Instructor   string             `yaml:"instructor"`
	Color        string             `yaml:"color"`
	Semester     string             `yaml:"semester"`
	Year         int                `yaml:"year"`
	GradeWeight  map[string]float64 `yaml:"grade_weight"`
	CurrentGrade float64            `yaml:"current_grade"`
	TargetGrade  float64            `yaml:"target_grade"`
}

type fixtureEvent struct {
	ID             string  `yaml:"id"`
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	CourseID       string  `yaml:"course_id"`
	CourseName     string  `yaml:"course_name"`
	Type           string  `yaml:"type"`
	DueDate        string  `yaml:"due_date"`
	Weight         float64 `yaml:"weight"`
	Status         string  `yaml:"status"`
	Priority       string  `yaml:"priority"`
	EstimatedHours float64 `yaml:"estimated_hours"`
}

// fileStudentStore 从 YAML/JSON 文件读取学业数据
// 每次 Fetch 重新读取文件，得到当时的快照
type fileStudentStore struct {
	path string
	loc  *time.Location
}

// NewFileStudentStore 创建文件数据源，loc 用于解释不带时区的截止时间
func NewFileStudentStore(path string, loc *time.Location) StudentDataStore {
	if loc == nil {
		loc = time.UTC
	}
	return &fileStudentStore{path: path, loc: loc}
}

func (s *fileStudentStore) Fetch(ctx context.Context, userID string) (*model.StudentData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := readFixtureFile(s.path)
	if err != nil {
		return nil, err
	}

	for i := range file.Students {
		if file.Students[i].UserID == userID {
			return toStudentData(&file.Students[i], s.loc)
		}
	}

	// 未登记的学生视为没有任何学业数据
	return &model.StudentData{UserID: userID}, nil
}

// LoadFixtureFile 读取数据文件中的全部学生快照（用于导入数据库）
func LoadFixtureFile(path string, loc *time.Location) ([]*model.StudentData, error) {
	if loc == nil {
		loc = time.UTC
	}
	file, err := readFixtureFile(path)
	if err != nil {
		return nil, err
	}

	out := make([]*model.StudentData, 0, len(file.Students))
	for i := range file.Students {
		data, err := toStudentData(&file.Students[i], loc)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func readFixtureFile(path string) (*fixtureFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取数据文件失败: %w", pkgerrors.ErrStoreUnavailable, err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: 解析数据文件失败: %w", pkgerrors.ErrStoreUnavailable, err)
	}
	return &file, nil
}

func toStudentData(st *fixtureStudent, loc *time.Location) (*model.StudentData, error) {
	data := &model.StudentData{
		UserID:  st.UserID,
		Courses: make([]model.Course, 0, len(st.Courses)),
		Events:  make([]model.AcademicEvent, 0, len(st.Events)),
	}

	if st.LastUpdated != "" {
		t, err := ParseDueDate(st.LastUpdated, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: last_updated 无效: %v", pkgerrors.ErrStoreUnavailable, err)
		}
		data.LastUpdated = t
	}

	for _, c := range st.Courses {
		data.Courses = append(data.Courses, model.Course{
			CourseID:     c.ID,
			UserID:       st.UserID,
			Name:         c.Name,
			Code:         c.Code,
			Credits:      c.Credits,
			Instructor:   c.Instructor,
			Color:        c.Color,
			Semester:     c.Semester,
			Year:         c.Year,
			GradeWeight:  datatypes.NewJSONType(c.GradeWeight),
			CurrentGrade: c.CurrentGrade,
			TargetGrade:  c.TargetGrade,
		})
	}

	for _, e := range st.Events {
		due, err := ParseDueDate(e.DueDate, loc)
		if err != nil {
			return nil, fmt.Errorf("事件 %q: %w", e.ID, err)
		}
		data.Events = append(data.Events, model.AcademicEvent{
			EventID:        e.ID,
			UserID:         st.UserID,
			Title:          e.Title,
			Description:    e.Description,
			CourseID:       e.CourseID,
			CourseName:     e.CourseName,
			Type:           e.Type,
			DueDate:        due,
			Weight:         e.Weight,
			Status:         e.Status,
			Priority:       e.Priority,
			EstimatedHours: e.EstimatedHours,
		})
	}

	return data, nil
}
