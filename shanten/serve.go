package main

import (
	"context"
	"fmt"

	"github.com/Apricot-S/shanten-algorithm-collection/common/config"
	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/common/metrics"
	"github.com/Apricot-S/shanten-algorithm-collection/shanten/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			// 只热更新日志级别，其他字段需要重启
			if _, err := config.Watch(configFile, func(next *config.Config) {
				if logLevel == "" {
					log.SetLevel(next.Log.Level)
				}
				log.Info("配置文件已重新加载, log.level=%s", log.Level())
			}); err != nil {
				return err
			}
		}
		if cfg.MetricPort > 0 {
			go func() {
				log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", cfg.MetricPort)
				if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)); err != nil {
					log.Error("监控服务退出: %v", err)
				}
			}()
		}
		return app.Run(context.Background(), cfg)
	},
}
