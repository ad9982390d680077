package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/common/cache"
	"github.com/Apricot-S/shanten-algorithm-collection/common/config"
	"github.com/Apricot-S/shanten-algorithm-collection/common/database"
	"github.com/Apricot-S/shanten-algorithm-collection/common/http"
	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/framework/engines/shanten"
	"github.com/Apricot-S/shanten-algorithm-collection/shanten/api"
	"github.com/gin-gonic/gin"
)

// BuildCalculators 创建所有引擎，按配置套上本地缓存和 redis 缓存
// 返回的 cleanup 负责关闭缓存连接
func BuildCalculators(ctx context.Context, cfg *config.Config) ([]shanten.Calculator, func(), error) {
	var tiers []shanten.Store
	var closers []func()

	if cfg.Cache.Enabled {
		local, err := cache.NewGeneralCache(cfg.Cache.MaxCost, cfg.Cache.TTL)
		if err != nil {
			return nil, nil, err
		}
		tiers = append(tiers, local)
		closers = append(closers, local.Close)
	}
	if cfg.Redis.Addr != "" {
		rdb, err := database.NewRedis(ctx, cfg.Redis)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		tiers = append(tiers, database.NewRedisStore(rdb.Cli, cfg.Redis.KeyPrefix, cfg.Redis.TTL))
		closers = append(closers, func() { rdb.Close() })
		log.Info("已连接 redis %s", cfg.Redis.Addr)
	}

	var calcs []shanten.Calculator
	for _, d := range shanten.Descriptors() {
		calc := d.New()
		if len(tiers) > 0 && !d.Reference {
			calc = shanten.NewCached(calc, tiers...)
		}
		calcs = append(calcs, calc)
	}
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return calcs, cleanup, nil
}

// Run 启动 HTTP 服务，直到 ctx 结束或收到退出信号
func Run(ctx context.Context, cfg *config.Config) error {
	calcs, cleanup, err := BuildCalculators(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer logCacheStats(calcs)

	mode := gin.ReleaseMode
	if cfg.Log.Level == "debug" {
		mode = gin.DebugMode
	}
	server := http.NewHttpServer(
		http.WithPort(cfg.HttpPort),
		http.WithMode(mode),
	)

	// 中间处理器注册
	server.Use(
		http.RequestIDMiddleware(),
		http.LoggerMiddleware(),
		http.CorsMiddleware(),
	)
	if cfg.RateLimit.Rate > 0 {
		server.Use(http.RateLimitMiddleware(cfg.RateLimit.Rate, cfg.RateLimit.Burst))
	}

	// 路由注册
	api.RegisterRoutes(server, api.NewService(calcs, shanten.NameDecompFixed))

	errCh := make(chan error, 1)
	go func() {
		log.Info("启动 HTTP 服务器，端口: %d", cfg.HttpPort)
		errCh <- server.Start()
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP 服务器关闭失败: %v", err)
		} else {
			log.Info("HTTP 服务器已优雅关闭")
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	defer signal.Stop(c)
	for {
		select {
		case <-ctx.Done():
			stop()
			return nil
		case err := <-errCh:
			if err != nil {
				log.Error("HTTP 服务器启动失败: %v", err)
			}
			return err
		case s := <-c:
			switch s {
			case syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT:
				stop()
				log.Info("中断信号，服务停止")
				return nil
			case syscall.SIGHUP:
				stop()
				log.Info("挂起信号，服务停止")
				return nil
			default:
				return nil
			}
		}
	}
}

// logCacheStats 退出时输出各引擎的缓存命中情况
func logCacheStats(calcs []shanten.Calculator) {
	for _, calc := range calcs {
		if cs, ok := calc.(api.CacheStats); ok {
			hits, misses := cs.Stats()
			log.Info("引擎 %s 缓存命中 %d，未命中 %d", calc.Name(), hits, misses)
		}
	}
}
