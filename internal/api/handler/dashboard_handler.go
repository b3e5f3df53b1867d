package handler

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/dto"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/service"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"percent": func(w float64) int { return int(w * 100) },
			"upper":   strings.ToUpper,
			"inc":     func(i int) int { return i + 1 },
		}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

// DashboardHandler 分析看板页面
type DashboardHandler struct {
	analyticsSvc  service.AnalyticsService
	defaultUserID string
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(analyticsSvc service.AnalyticsService, defaultUserID string) *DashboardHandler {
	return &DashboardHandler{analyticsSvc: analyticsSvc, defaultUserID: defaultUserID}
}

// dashboardView 看板模板数据
type dashboardView struct {
	UserID    string
	Result    *dto.AnalysisResult
	Ranking   *dto.RankingResponse
	Endpoints []string
}

// Show 渲染看板
// GET /?user_id=xxx
func (h *DashboardHandler) Show(c *gin.Context) {
	userID, ok := ResolveUserID(c, h.defaultUserID)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	result, err := h.analyticsSvc.AnalyzeHighestPriority(ctx, userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}
	ranking, err := h.analyticsSvc.RankPendingEvents(ctx, userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.Render(http.StatusOK, render.HTML{
		Template: dashboardTmpl,
		Name:     "dashboard.html",
		Data: dashboardView{
			UserID:    userID,
			Result:    result,
			Ranking:   ranking,
			Endpoints: AvailableEndpoints,
		},
	})
}
