package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger attaches a request-scoped logger and logs each request once it completes.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := base.With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("ip", getClientIP(c)),
		)
		c.Set("logger", logger)

		c.Next()

		logger.Info("request",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
