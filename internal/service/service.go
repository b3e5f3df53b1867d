package service

import (
	"go.uber.org/zap"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/repository"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Analytics AnalyticsService
	Export    ExportService
}

// NewService 创建 Service 聚合
func NewService(store repository.StudentDataStore, c clock.Clock, logger *zap.Logger) *Service {
	analytics := NewAnalyticsService(store, c, logger)
	return &Service{
		Analytics: analytics,
		Export:    NewExportService(analytics, logger),
	}
}
