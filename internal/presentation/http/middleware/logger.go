package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arjunpx/fuelbill-api/internal/logger"
)

// LoggerMiddleware logs every request with its ID, status, and latency
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID if not present
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		reqLog := logger.WithRequestID(requestID)
		event := reqLog.Info()
		if c.Writer.Status() >= 500 {
			event = reqLog.Error()
		} else if c.Writer.Status() >= 400 {
			event = reqLog.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")

		for _, e := range c.Errors {
			reqLog.Error().Err(e.Err).Msg("handler error")
		}
	}
}
