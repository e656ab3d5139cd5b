package cache

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"image-board/internal/config"

	"github.com/redis/go-redis/v9"
)

// Redis 包装可选的 Redis 连接。未启用或连接失败时 Client 为 nil，调用方降级为内存实现。
type Redis struct {
	Client *redis.Client
	prefix string
}

func NewRedis(cfg *config.Config) *Redis {
	r := &Redis{prefix: cfg.Redis.Prefix}
	if r.prefix == "" {
		r.prefix = "image_board"
	}
	if !cfg.Redis.Enabled {
		return r
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("⚠️ Redis 不可用，降级为内存模式: %v", err)
		return r
	}

	r.Client = client
	log.Printf("✅ Redis 已连接: %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	return r
}

// NewRedisWithClient 使用现成的客户端，便于测试
func NewRedisWithClient(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "image_board"
	}
	return &Redis{Client: client, prefix: prefix}
}

func (r *Redis) Available() bool {
	return r != nil && r.Client != nil
}

// Key 基于配置前缀拼接 Redis 键名
func (r *Redis) Key(parts ...string) string {
	if len(parts) == 0 {
		return r.prefix
	}
	return r.prefix + ":" + strings.Join(parts, ":")
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
