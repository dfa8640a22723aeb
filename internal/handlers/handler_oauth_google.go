package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google OAuth sign-in requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	sessionService     portssvc.SessionSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	sessionService portssvc.SessionSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		sessionService:     sessionService,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in route.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Session)
	r.POST("/auth/google/exchange-code", h.ExchangeCodeGoogle)
}

// ExchangeCodeGoogle handles the POST request from the frontend containing
// the authorization code from Google. It exchanges the code for Google
// tokens, validates the ID token, finds or creates the user and returns an
// application session token.
// @Summary Sign in with a Google authorization code
// @Description Exchanges a Google authorization code for an application session.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Failed to exchange google authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Error("Google token response contained no id_token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in with Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Warn("Google ID token failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid Google identity"})
		return
	}

	info := &domain.GoogleUserInfo{
		ID:    payload.Subject,
		Email: stringClaim(payload.Claims, "email"),
		Name:  stringClaim(payload.Claims, "name"),
	}
	info.Picture = stringClaim(payload.Claims, "picture")
	info.VerifiedEmail, _ = payload.Claims["email_verified"].(bool)

	user, err := h.userService.FindOrCreateGoogleUser(ctx, info)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}

	sessionToken, _, err := h.sessionService.Issue(ctx, user)
	if err != nil {
		logger.Error("Failed to issue session after google sign-in", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}

	logger.Info("User signed in with google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: sessionToken,
	})
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}
