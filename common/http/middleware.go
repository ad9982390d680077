package http

import (
	"net/http"
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/common/log"
	"github.com/Apricot-S/shanten-algorithm-collection/common/utils"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "requestID"
	RequestIDHeader = "X-Request-ID"
)

// CorsMiddleware 跨域
func CorsMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		if c.GetHeader("Origin") != "" {
			c.SetHeader("Access-Control-Allow-Origin", "*")
			c.SetHeader("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.SetHeader("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")
		}
		// 预检请求
		if c.Method() == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
		return nil
	}
}

// LoggerMiddleware 请求完成后记录状态码和耗时
func LoggerMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		start := time.Now()
		c.Next()
		log.Info("HTTP %s %s %d from %s in %v [%s]",
			c.Method(), c.Path(), c.StatusCode(), c.ClientIP(), time.Since(start), c.GetString(RequestIDKey))
		return nil
	}
}

// RequestIDMiddleware 透传或生成请求 ID
func RequestIDMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.SetHeader(RequestIDHeader, requestID)
		return nil
	}
}

// RateLimitMiddleware 全局令牌桶限流，超限返回 429
func RateLimitMiddleware(rate, burst int) MiddlewareFunc {
	limiter := utils.NewRateLimiter(rate, burst)
	return func(c *Context) error {
		if !limiter.Allow() {
			c.TooManyRequests()
			c.Abort()
		}
		return nil
	}
}
