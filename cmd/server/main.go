package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ISIS3510-202520-T24/AceUp-Swift/pkg/database"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "aceup-analytics",
		Short:         "AceUp 学业优先级分析服务",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不带子命令时直接启动 HTTP 服务
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径（默认 ./config/config.yaml）")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newAnalyzeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newSeedCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务（JSON API 与看板）",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(*configPath)
		},
	}
}

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var userID string
	var ranking bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "分析一名学生并以 JSON 输出结果",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if userID == "" {
				userID = app.cfg.Analytics.DefaultUserID
			}

			ctx := context.Background()
			var out interface{}
			if ranking {
				out, err = app.svc.Analytics.RankPendingEvents(ctx, userID)
			} else {
				out, err = app.svc.Analytics.AnalyzeHighestPriority(ctx, userID)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "学生标识（默认取 analytics.default_user_id）")
	cmd.Flags().BoolVar(&ranking, "ranking", false, "输出全部待办事件排行")
	return cmd
}

func newMigrateCmd(configPath *string) *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "执行数据库迁移",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := loadBase(*configPath)
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
			}
			defer sqlDB.Close()

			if down > 0 {
				return database.RollbackMigrations(sqlDB, down, logger)
			}
			return database.RunMigrations(sqlDB, logger)
		},
	}
	cmd.Flags().IntVar(&down, "down", 0, "回滚的迁移步数（0 表示升级到最新）")
	return cmd
}

func newSeedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "将数据文件中的学业数据导入 PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadBase(*configPath)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if file == "" {
				file = cfg.Analytics.FixturePath
			}
			if file == "" {
				return fmt.Errorf("未指定数据文件：使用 --file 或配置 analytics.fixture_path")
			}

			n, err := seedDatabase(cmd.Context(), cfg, file, logger)
			if err != nil {
				return err
			}
			logger.Info("学业数据导入完成", zap.String("file", file), zap.Int("students", n))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML/JSON 数据文件（默认取 analytics.fixture_path）")
	return cmd
}
