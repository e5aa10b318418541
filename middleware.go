package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request. Static assets are logged at
// debug level only.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"took", time.Since(start).Round(time.Microsecond),
		}
		if hx := c.GetHeader("HX-Request"); hx != "" {
			fields = append(fields, "htmx", true)
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case strings.HasPrefix(path, "/static/") || path == "/healthz":
			logger.Debug("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
