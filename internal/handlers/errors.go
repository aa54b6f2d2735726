package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/dto"
	"github.com/SscSPs/temple_admin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError answers with the status mapped from err. Server side failures
// get the generic message for action instead of the underlying error.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, dto.Fail("Failed to "+action))
		return
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.Fail(message))
}

// requestScope returns the temple and user the request runs for.
func requestScope(c *gin.Context) (templeID string, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return "", "", false
	}
	templeID, ok = middleware.GetTempleIDFromContext(c)
	if !ok {
		logger.Error("Temple ID not found in context")
		c.JSON(http.StatusBadRequest, dto.Fail(middleware.TempleIDHeader+" header required"))
		return "", "", false
	}
	return templeID, userID, true
}
