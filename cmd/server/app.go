package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/config"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/api/handler"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/api/middleware"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/api/router"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/repository"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/internal/service"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/clock"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/database"
	applogger "github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/logger"
	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/redis"
)

// app 进程内装配好的依赖
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	clock  clock.Clock
	db     *gorm.DB      // 仅 source=postgres 时非 nil
	rdb    *redis.Client // Redis 不可用时为 nil
	svc    *service.Service
}

// loadBase 加载配置并初始化日志
func loadBase(configPath string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, logger, nil
}

// loadApp 依赖注入: 数据源 → Service
func loadApp(configPath string) (*app, error) {
	cfg, logger, err := loadBase(configPath)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, clock: clock.Real{}}

	store, err := a.buildStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.svc = service.NewService(store, a.clock, logger)
	return a, nil
}

// buildStore 按 analytics.source 选择数据源，cache_ttl>0 且 Redis 可用时加缓存
func (a *app) buildStore() (repository.StudentDataStore, error) {
	cfg := a.cfg
	loc, err := cfg.Analytics.Location()
	if err != nil {
		return nil, err
	}

	var store repository.StudentDataStore
	switch cfg.Analytics.Source {
	case config.SourceFile:
		store = repository.NewFileStudentStore(cfg.Analytics.FixturePath, loc)
	case config.SourcePostgres:
		db, err := database.NewDB(&cfg.Database, cfg.Log.Level, a.logger)
		if err != nil {
			return nil, fmt.Errorf("数据库连接失败: %w", err)
		}
		a.db = db

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
		}
		if err := database.RunMigrations(sqlDB, a.logger); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
		store = repository.NewDBStudentStore(repository.NewRepository(db))
	default:
		store = repository.NewMockStudentStore(a.clock)
	}
	a.logger.Info("学业数据源已就绪", zap.String("source", cfg.Analytics.Source))

	// Redis 可选：连接失败时降级运行（无缓存、无限流）
	rdb, err := redis.NewClient(&cfg.Redis, a.logger)
	if err != nil {
		a.logger.Warn("Redis 连接失败，缓存与限流将不可用", zap.Error(err))
	} else {
		a.rdb = rdb
		store = repository.NewCachedStudentStore(store, rdb, cfg.Analytics.CacheTTL, a.logger)
	}

	return store, nil
}

// limiter 返回限流器；Redis 不可用时返回 nil 接口
func (a *app) limiter() middleware.RateLimiter {
	if a.rdb == nil {
		return nil
	}
	return a.rdb
}

// Close 释放数据库与 Redis 连接
func (a *app) Close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
	a.logger.Sync()
}

// runServe 启动 HTTP 服务器并在收到信号后优雅关闭
func runServe(configPath string) error {
	a, err := loadApp(configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, logger := a.cfg, a.logger
	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("source", cfg.Analytics.Source),
	)

	gin.SetMode(gin.ReleaseMode)
	h := handler.NewHandler(cfg, a.svc, a.clock)
	engine := router.Setup(cfg, h, a.limiter(), logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr), zap.String("base_url", cfg.Server.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP 服务器异常: %w", err)
	case sig := <-quit:
		logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
	return nil
}

// seedDatabase 将数据文件导入 PostgreSQL，返回导入的学生数
func seedDatabase(ctx context.Context, cfg *config.Config, file string, logger *zap.Logger) (int, error) {
	loc, err := cfg.Analytics.Location()
	if err != nil {
		return 0, err
	}
	students, err := repository.LoadFixtureFile(file, loc)
	if err != nil {
		return 0, err
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return 0, fmt.Errorf("数据库连接失败: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		return 0, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 单事务导入，任一学生失败则整体回滚
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repository.NewRepository(tx)
		for _, st := range students {
			if err := repo.Course.BatchCreate(ctx, st.Courses); err != nil {
				return fmt.Errorf("导入学生 %s 的课程失败: %w", st.UserID, err)
			}
			if err := repo.Event.BatchCreate(ctx, st.Events); err != nil {
				return fmt.Errorf("导入学生 %s 的事件失败: %w", st.UserID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(students), nil
}
