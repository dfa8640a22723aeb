package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService    portssvc.UserSvcFacade
	sessionService portssvc.SessionSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ss portssvc.SessionSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:    us,
		sessionService: ss,
	}
}

// registerAuthRoutes sets up the public and session-protected auth routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Session)

	// 10 requests per minute per IP on the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", limitMiddleware, h.Signup)
		auth.POST("/signin", limitMiddleware, h.Signin)
	}

	protected := r.Group("/auth", middleware.AuthMiddleware(services.Session))
	{
		protected.POST("/logout", h.Logout)
		protected.GET("/user", h.GetCurrentUser)
		protected.PUT("/user", h.UpdateCurrentUser)
		protected.POST("/change-password", h.ChangePassword)
	}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user account and returns the user with a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	token, _, err := h.sessionService.Issue(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue session after signup", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}

	logger.Info("User signed up", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// Signin godoc
// @Summary Sign in with email and password
// @Description Verifies credentials and returns the user with a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body dto.SigninRequest true "Signin credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.userService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Every failure mode gets the same message so responses don't reveal
		// whether the account exists.
		logger.Warn("Sign-in failed", slog.String("email", strings.ToLower(req.Email)))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, _, err := h.sessionService.Issue(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue session after signin", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}

	logger.Info("User signed in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Revokes the session behind the presented token.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rawToken := bearerToken(c)
	if rawToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.sessionService.Revoke(c.Request.Context(), rawToken); err != nil {
		logger.Error("Failed to revoke session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetCurrentUser godoc
// @Summary Get the authenticated user
// @Description Returns the profile of the user behind the session token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/user [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateCurrentUser godoc
// @Summary Update the authenticated user's profile
// @Description Updates the allow-listed profile fields and returns the updated user.
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/user [put]
func (h *AuthHandler) UpdateCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword godoc
// @Summary Change the authenticated user's password
// @Description Verifies the current password, stores a new hash and revokes all sessions.
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	logger.Info("Password changed, all sessions revoked", slog.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully. Please sign in again."})
}

// bearerToken extracts the raw bearer token from the Authorization header.
func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
