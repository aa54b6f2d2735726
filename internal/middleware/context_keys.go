package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// templeIDKey is the key used to store the temple (tenant) the request is scoped to.
const templeIDKey = contextKey("templeID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetTempleIDFromContext retrieves the temple scope set by TempleScope.
func GetTempleIDFromContext(c *gin.Context) (string, bool) {
	return TempleIDFromCtx(c.Request.Context())
}

// TempleIDFromCtx retrieves the temple scope from a standard context.
func TempleIDFromCtx(ctx context.Context) (string, bool) {
	templeID, ok := ctx.Value(templeIDKey).(string)
	if !ok || templeID == "" {
		return "", false
	}
	return templeID, true
}

// WithTempleID returns a copy of ctx scoped to templeID.
func WithTempleID(ctx context.Context, templeID string) context.Context {
	return context.WithValue(ctx, templeIDKey, templeID)
}
