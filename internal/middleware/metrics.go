package middleware

import (
	"strconv"

	"github.com/SscSPs/temple_admin_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be counted
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestMetrics counts handled requests by route template and status.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
