package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/common/config"
	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/redis/go-redis/v9"
)

var ErrRedisNotConfigured = errors.New("database: redis addr is empty")

type RedisManager struct {
	Cli *redis.Client
}

// NewRedis 连接并 ping 一次
func NewRedis(ctx context.Context, redisConf config.RedisConf) (*RedisManager, error) {
	if redisConf.Addr == "" {
		return nil, ErrRedisNotConfigured
	}
	cli := redis.NewClient(&redis.Options{
		Addr:         redisConf.Addr,
		Password:     redisConf.Password, // 没有密码时为空串
		PoolSize:     redisConf.PoolSize,
		MinIdleConns: redisConf.MinIdleConns,
		DialTimeout:  2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		cli.Close()
		return nil, fmt.Errorf("redis 连接错误: %w", err)
	}
	return &RedisManager{Cli: cli}, nil
}

func (r *RedisManager) Close() error {
	if r.Cli == nil {
		return nil
	}
	if err := r.Cli.Close(); err != nil {
		log.Error("redis 关闭出错: %v", err)
		return err
	}
	return nil
}

// RedisStore 多实例共享的向听结果缓存
// 读写失败只记日志，按未命中处理
type RedisStore struct {
	cli     redis.Cmdable
	prefix  string
	ttl     time.Duration
	timeout time.Duration
}

func NewRedisStore(cli redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		cli:     cli,
		prefix:  prefix,
		ttl:     ttl,
		timeout: 200 * time.Millisecond,
	}
}

func (s *RedisStore) Load(key string) (int8, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	raw, err := s.cli.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("redis 读取 %s 失败: %v", key, err)
		}
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 8)
	if err != nil {
		log.Warn("redis 缓存值 %s=%q 无法解析", key, raw)
		return 0, false
	}
	return int8(v), true
}

func (s *RedisStore) Store(key string, v int8) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.cli.Set(ctx, s.prefix+key, strconv.Itoa(int(v)), s.ttl).Err(); err != nil {
		log.Warn("redis 写入 %s 失败: %v", key, err)
	}
}
