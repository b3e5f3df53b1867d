package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc     service.ExportService
	defaultUserID string
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, defaultUserID string) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, defaultUserID: defaultUserID}
}

// ExportPriorities 导出待办事件优先级排行
// GET /api/export/priorities?user_id=xxx
func (h *ExportHandler) ExportPriorities(c *gin.Context) {
	userID, ok := ResolveUserID(c, h.defaultUserID)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportPriorities(c.Request.Context(), userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportCalendar 导出待办事件日历
// GET /api/export/calendar.ics?user_id=xxx
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	userID, ok := ResolveUserID(c, h.defaultUserID)
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), userID)
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, icsContentType, data)
}

// attachment 设置下载响应头
func attachment(c *gin.Context, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
}
