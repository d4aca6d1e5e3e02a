package server

import (
	"strings"
	"time"

	"eth-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing. Static image
// fetches under /uploads are skipped to keep the logs about the API.
func RequestLoggerMiddleware(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
		c.Next()
		return
	}

	start := time.Now()

	c.Next()

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"client":  c.ClientIP(),
		"latency": time.Since(start).String(),
	})
}
