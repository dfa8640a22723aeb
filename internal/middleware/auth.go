package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens against the session store and attaches the session info to the
// request context.
func AuthMiddleware(sessionSvc portssvc.SessionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		info, err := sessionSvc.Validate(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Session validation failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired session"})
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), authUserKey, info)

		// Enrich the request logger with the authenticated user
		enrichedLogger := logger.With(slog.String("user_id", info.UserID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
