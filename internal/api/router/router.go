package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/config"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/api/handler"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时不启用限流（Redis 不可用）
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 看板 ──
	r.GET("/", h.Dashboard.Show)

	api := r.Group("/api")
	{
		// 健康检查不限流
		api.GET("/health", h.Analytics.Health)

		limited := api.Group("")
		limited.Use(middleware.RateLimit(limiter, cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window))
		{
			// 优先级分析
			limited.GET("/highest-weight-event", h.Analytics.HighestWeightEvent)
			limited.GET("/student-data", h.Analytics.StudentData)
			limited.GET("/events/ranking", h.Analytics.Ranking)

			// 导出
			export := limited.Group("/export")
			{
				export.GET("/priorities", h.Export.ExportPriorities)
				export.GET("/calendar.ics", h.Export.ExportCalendar)
			}
		}
	}

	r.NoRoute(h.Analytics.NotFound)

	return r
}
