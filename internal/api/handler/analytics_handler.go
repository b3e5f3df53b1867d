package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/dto"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/service"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
	pkgerrors "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/errors"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/response"
)

const (
	serviceName    = "AceUp Analytics Server"
	serviceVersion = "1.0.0"
)

// AvailableEndpoints 未知路径时返回给调用方的端点列表
var AvailableEndpoints = []string{
	"/api/health",
	"/api/highest-weight-event",
	"/api/student-data",
	"/api/events/ranking",
	"/api/export/priorities",
	"/api/export/calendar.ics",
}

// AnalyticsHandler 优先级分析模块 HTTP 处理器
type AnalyticsHandler struct {
	analyticsSvc  service.AnalyticsService
	clock         clock.Clock
	defaultUserID string
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService, c clock.Clock, defaultUserID string) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc, clock: c, defaultUserID: defaultUserID}
}

// Health 健康检查
// GET /api/health
func (h *AnalyticsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: h.clock.Now().Format(time.RFC3339Nano),
		Version:   serviceVersion,
	})
}

// HighestWeightEvent 当前优先级最高的待办事件及建议
// GET /api/highest-weight-event?user_id=xxx
func (h *AnalyticsHandler) HighestWeightEvent(c *gin.Context) {
	userID, ok := ResolveUserID(c, h.defaultUserID)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.AnalyzeHighestPriority(c.Request.Context(), userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// StudentData 原始学业数据
// GET /api/student-data?user_id=xxx
func (h *AnalyticsHandler) StudentData(c *gin.Context) {
	userID, ok := ResolveUserID(c, h.defaultUserID)
	if !ok {
		return
	}

	data, err := h.analyticsSvc.GetStudentData(c.Request.Context(), userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// Ranking 待办事件优先级排行（分页）
// GET /api/events/ranking?user_id=xxx&page=1&page_size=20
func (h *AnalyticsHandler) Ranking(c *gin.Context) {
	userID, ok := ResolveUserID(c, h.defaultUserID)
	if !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	ranking, err := h.analyticsSvc.RankPendingEvents(c.Request.Context(), userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	start, end := page.Window(len(ranking.List))
	response.OK(c, dto.RankingPageResponse{
		UserID:    ranking.UserID,
		Timestamp: ranking.Timestamp,
		Total:     ranking.Total,
		Page:      page.GetPage(),
		PageSize:  page.GetPageSize(),
		List:      ranking.List[start:end],
	})
}

// NotFound 未知端点
func (h *AnalyticsHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NotFoundResponse{
		Error:              "Endpoint not found",
		AvailableEndpoints: AvailableEndpoints,
	})
}

// handleAnalyticsError 将分析相关错误映射为 HTTP 响应
func handleAnalyticsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrMalformedEvent):
		response.UnprocessableEntity(c, 20002, "学业事件数据不合法", err.Error())
	case errors.Is(err, pkgerrors.ErrStoreUnavailable):
		response.ServiceUnavailable(c, 20003, "学业数据源暂时不可用")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
