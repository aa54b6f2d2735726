package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TempleIDHeader carries the temple a request is scoped to. The gateway in
// front of this service sets it after checking the caller's membership.
const TempleIDHeader = "X-Temple-ID"

// TempleScope requires the temple header and stores its value in the request context.
func TempleScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		templeID := strings.TrimSpace(c.GetHeader(TempleIDHeader))
		if templeID == "" {
			logger.Warn("Temple header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": TempleIDHeader + " header required"})
			return
		}

		ctx := WithTempleID(c.Request.Context(), templeID)
		ctx = WithLogger(ctx, logger.With(slog.String("temple_id", templeID)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
