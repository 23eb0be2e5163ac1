package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"aeobro.backend/pkg/logger"
)

// LoggerMiddleware emits one structured access-log line per request.
// RequestIDMiddleware must run first so the request id lands in the line.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
