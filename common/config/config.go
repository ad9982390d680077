package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	AppName    string    `mapstructure:"appName"`
	Log        LogConf   `mapstructure:"log"`
	HttpPort   int       `mapstructure:"httpPort"`
	MetricPort int       `mapstructure:"metricPort"`
	Bench      BenchConf `mapstructure:"bench"`
	Gen        GenConf   `mapstructure:"gen"`
	Cache      CacheConf `mapstructure:"cache"`
	Redis      RedisConf `mapstructure:"redis"`
	RateLimit  RateConf  `mapstructure:"rateLimit"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// BenchConf 基准与交叉校验
type BenchConf struct {
	Engines       []string `mapstructure:"engines"`
	CorpusDir     string   `mapstructure:"corpusDir"`
	Workers       int      `mapstructure:"workers"`
	ExpectedLines int      `mapstructure:"expectedLines"`
}

// GenConf 语料生成
type GenConf struct {
	Seed     int64  `mapstructure:"seed"`
	NumCases int    `mapstructure:"numCases"`
	OutDir   string `mapstructure:"outDir"`
}

// CacheConf 本地结果缓存
type CacheConf struct {
	Enabled bool          `mapstructure:"enabled"`
	MaxCost int64         `mapstructure:"maxCost"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConf 共享结果缓存，Addr 为空时不启用
type RedisConf struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	PoolSize     int           `mapstructure:"poolSize"`
	MinIdleConns int           `mapstructure:"minIdleConns"`
	KeyPrefix    string        `mapstructure:"keyPrefix"`
	TTL          time.Duration `mapstructure:"ttl"`
}

// RateConf HTTP 限流，Rate 为 0 时不启用
type RateConf struct {
	Rate  int `mapstructure:"rate"`
	Burst int `mapstructure:"burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "shanten")
	v.SetDefault("log.level", "info")
	v.SetDefault("httpPort", 8080)
	v.SetDefault("metricPort", 0)
	v.SetDefault("bench.engines", []string{})
	v.SetDefault("bench.corpusDir", "resources")
	v.SetDefault("bench.workers", 4)
	v.SetDefault("bench.expectedLines", 10000)
	v.SetDefault("gen.seed", 42)
	v.SetDefault("gen.numCases", 10000)
	v.SetDefault("gen.outDir", "resources")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.maxCost", 1<<20)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.minIdleConns", 2)
	v.SetDefault("redis.keyPrefix", "shanten:")
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("rateLimit.rate", 0)
	v.SetDefault("rateLimit.burst", 100)
}

func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if configFile == "" {
		return v, nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件出错: %w", err)
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件出错: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load 读取配置，configFile 为空时只用默认值和环境变量
func Load(configFile string) (*Config, error) {
	v, err := newViper(configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch 加载并监听配置文件，文件变化且解析成功时回调
func Watch(configFile string, onChange func(*Config)) (*Config, error) {
	v, err := newViper(configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	v.OnConfigChange(func(in fsnotify.Event) {
		next, err := decode(v)
		if err != nil {
			return
		}
		onChange(next)
	})
	v.WatchConfig()
	return cfg, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	if c.HttpPort <= 0 || c.HttpPort > 65535 {
		return fmt.Errorf("%w: httpPort %d", ErrInvalidConfig, c.HttpPort)
	}
	if c.MetricPort < 0 || c.MetricPort > 65535 {
		return fmt.Errorf("%w: metricPort %d", ErrInvalidConfig, c.MetricPort)
	}
	if c.Bench.Workers <= 0 {
		return fmt.Errorf("%w: bench.workers %d", ErrInvalidConfig, c.Bench.Workers)
	}
	if c.Bench.ExpectedLines < 0 {
		return fmt.Errorf("%w: bench.expectedLines %d", ErrInvalidConfig, c.Bench.ExpectedLines)
	}
	if c.Gen.NumCases <= 0 {
		return fmt.Errorf("%w: gen.numCases %d", ErrInvalidConfig, c.Gen.NumCases)
	}
	if c.RateLimit.Rate < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rateLimit %d/%d", ErrInvalidConfig, c.RateLimit.Rate, c.RateLimit.Burst)
	}
	if c.Cache.Enabled && c.Cache.MaxCost <= 0 {
		return fmt.Errorf("%w: cache.maxCost %d", ErrInvalidConfig, c.Cache.MaxCost)
	}
	return nil
}
