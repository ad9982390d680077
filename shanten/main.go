package main

import (
	"os"

	"github.com/Apricot-S/shanten-algorithm-collection/common/config"
	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/spf13/cobra"
)

// 加载配置 -> 初始化日志 -> 执行子命令

var (
	configFile string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "shanten",
	Short:         "shanten 向听数算法集",
	Long:          `多种一般型向听数算法的实现、交叉校验、基准与 HTTP 服务`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		log.InitLog(cfg.AppName, cfg.Log.Level)
		log.Debug("配置文件: %+v", *cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "", "override log.level")
	rootCmd.AddCommand(calcCmd, verifyCmd, benchCmd, genCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
