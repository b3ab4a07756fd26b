package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexvelboy/contact-api/internal/logging"
)

// RequestLogger logs every request with status, latency and the request
// ID set by the RequestID middleware.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)

		logger := logging.GetLogger()
		logger.LogHTTPRequest(
			method,
			path,
			c.ClientIP(),
			c.GetString("RequestID"),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}
