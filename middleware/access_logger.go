package middleware

import (
	"time"

	"github.com/ariebrainware/security-event-log/util"
	"github.com/gin-gonic/gin"
)

// AccessLogger logs each HTTP request through the application logger once it
// has been served. Register it after RequestID so the line carries the ID.
func AccessLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		util.LogAccess(util.AccessParams{
			RequestID: GetRequestID(c),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			Duration:  time.Since(start),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
	}
}
