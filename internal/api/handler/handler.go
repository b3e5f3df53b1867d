package handler

import (
	"github.com/ISIS3510-202520-T24/AceUp-Swift/config"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/service"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Analytics *AnalyticsHandler
	Export    *ExportHandler
	Dashboard *DashboardHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service, c clock.Clock) *Handler {
	defaultUserID := cfg.Analytics.DefaultUserID
	return &Handler{
		Analytics: NewAnalyticsHandler(svc.Analytics, c, defaultUserID),
		Export:    NewExportHandler(svc.Export, defaultUserID),
		Dashboard: NewDashboardHandler(svc.Analytics, defaultUserID),
	}
}
