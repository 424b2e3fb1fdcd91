package middleware

import (
	"fmt"
	"time"

	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger emits one access-log line per request through the shared event log,
// tagged with the request id so handler logs correlate.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.LogEvent(GetRequestID(c), "http", c.Request.Method,
			fmt.Sprintf("path=%s status=%d latency_ms=%.3f ip=%s",
				c.Request.URL.Path,
				c.Writer.Status(),
				float64(time.Since(start).Microseconds())/1000.0,
				c.ClientIP(),
			))
	}
}
