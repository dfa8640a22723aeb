package middleware

import (
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// authUserKey is the key used to store the authenticated session info in the
// request context.
const authUserKey = contextKey("authUser")

// GetAuthUserFromContext retrieves the authenticated session info from the
// request context. It returns the info and a boolean indicating if it was found.
func GetAuthUserFromContext(c *gin.Context) (*domain.SessionInfo, bool) {
	info, ok := c.Request.Context().Value(authUserKey).(*domain.SessionInfo)
	if !ok {
		return nil, false
	}
	return info, true
}

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	info, ok := GetAuthUserFromContext(c)
	if !ok {
		return "", false
	}
	return info.UserID, true
}
