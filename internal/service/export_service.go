package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 导出业务接口
//
// 导出内容均来自 AnalyticsService.RankPendingEvents，与接口返回的排序、分数一致。
type ExportService interface {
	// ExportPriorities 导出待办事件优先级排行为 Excel
	ExportPriorities(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	// ExportCalendar 导出待办事件为 iCalendar 订阅内容
	ExportCalendar(ctx context.Context, userID string) ([]byte, string, error)
}

type exportService struct {
	analytics AnalyticsService
	logger    *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(analytics AnalyticsService, logger *zap.Logger) ExportService {
	return &exportService{analytics: analytics, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPriorities — 优先级排行 Excel
// ═══════════════════════════════════════════════════════════
//
// 单个 Sheet "Priorities"：
//   - 第 1 行标题（合并单元格）
//   - 第 2 行表头
//   - 第 3 行起按优先级降序，每个待办事件一行

var priorityHeaders = []string{
	"Rank", "Title", "Course", "Type", "Due Date", "Days Left",
	"Weight", "Priority Score", "Urgency", "Author Priority",
}

func (s *exportService) ExportPriorities(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	ranking, err := s.analytics.RankPendingEvents(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Priorities"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	lastCol, _ := excelize.ColumnNumberToName(len(priorityHeaders))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#122C4A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Pending events for %s (%s)", userID, ranking.Timestamp))
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	for i, h := range priorityHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 2), h)
	}
	f.SetCellStyle(sheetName, "A2", lastCol+"2", headerStyle)

	// 数据行
	for i, e := range ranking.List {
		row := i + 3
		values := []interface{}{
			i + 1, e.Title, e.CourseName, e.Type, e.DueDate, e.DaysUntilDue,
			e.Weight, e.PriorityScore, ClassifyUrgency(e.DaysUntilDue), e.Priority,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheetName, cell(col, row), v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "C", 36)
	f.SetColWidth(sheetName, "D", lastCol, 16)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.String("user_id", userID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("priorities_%s.xlsx", userID)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 待办事件 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个待办事件一个 VEVENT：DTSTART=DTEND=截止时间，CATEGORIES=事件类型，
// PRIORITY 由紧迫程度映射（RFC 5545：1 最高，9 最低）。

var urgencyICSPriority = map[string]int{
	UrgencyCritical: 1,
	UrgencyHigh:     3,
	UrgencyModerate: 5,
	UrgencyLow:      9,
}

func (s *exportService) ExportCalendar(ctx context.Context, userID string) ([]byte, string, error) {
	ranking, err := s.analytics.RankPendingEvents(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	stamp, err := time.Parse(time.RFC3339Nano, ranking.Timestamp)
	if err != nil {
		s.logger.Error("解析分析时间失败", zap.String("timestamp", ranking.Timestamp), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//AceUp//Analytics//EN")
	cal.SetXWRCalName("AceUp pending events")

	for _, e := range ranking.List {
		due, err := time.Parse(time.RFC3339Nano, e.DueDate)
		if err != nil {
			s.logger.Error("解析截止时间失败", zap.String("event_id", e.ID), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}

		vevent := cal.AddEvent(e.ID + "@aceup")
		vevent.SetDtStampTime(stamp)
		vevent.SetStartAt(due)
		vevent.SetEndAt(due)
		vevent.SetSummary(fmt.Sprintf("[%s] %s", strings.ToUpper(e.Type), e.Title))
		vevent.SetDescription(fmt.Sprintf("%s\nCourse: %s\nWeight: %d%%\nPriority score: %.2f",
			e.Description, e.CourseName, int(e.Weight*100), e.PriorityScore))
		vevent.SetProperty(ics.ComponentPropertyCategories, e.Type)
		vevent.SetProperty(ics.ComponentPropertyPriority, strconv.Itoa(urgencyICSPriority[ClassifyUrgency(e.DaysUntilDue)]))
	}

	filename := fmt.Sprintf("aceup_%s.ics", userID)
	return []byte(cal.Serialize()), filename, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
