package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/dare2earn/d2e_backend/internal/platform/config"
	"github.com/dare2earn/d2e_backend/internal/utils"
	"github.com/google/uuid"
)

// sessionService implements the SessionSvcFacade. Tokens are signed JWTs,
// and every issued token is also recorded as a hashed session row so it can
// be revoked before its signature expires.
type sessionService struct {
	cfg         *config.Config
	sessionRepo portsrepo.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(cfg *config.Config, sessionRepo portsrepo.SessionRepository) portssvc.SessionSvcFacade {
	return &sessionService{
		cfg:         cfg,
		sessionRepo: sessionRepo,
	}
}

// Issue signs a JWT for the user and records its hash as a session row.
func (s *sessionService) Issue(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateJWT(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.SessionExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.SessionExpiryDuration)
	session := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		TokenHash: utils.HashSessionToken(token),
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return token, expiresAt, nil
}

// Validate checks the token signature and then requires a live, unexpired
// session row for its hash. Any failure collapses to ErrInvalidSession.
func (s *sessionService) Validate(ctx context.Context, rawToken string) (*domain.SessionInfo, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := utils.ParseAndValidateJWT(rawToken, s.cfg.JWTSecret); err != nil {
		logger.Debug("session token failed JWT validation", "error", err.Error())
		return nil, apperrors.ErrInvalidSession
	}

	info, err := s.sessionRepo.FindValidSession(ctx, utils.HashSessionToken(rawToken))
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	return info, nil
}

// Revoke deletes the session row for the given token. Unknown tokens are
// treated as already revoked.
func (s *sessionService) Revoke(ctx context.Context, rawToken string) error {
	return s.sessionRepo.DeleteByTokenHash(ctx, utils.HashSessionToken(rawToken))
}

// RevokeAll deletes every session for the user.
func (s *sessionService) RevokeAll(ctx context.Context, userID string) error {
	return s.sessionRepo.DeleteAllForUser(ctx, userID)
}

// SweepExpired removes expired session rows. Expired sessions are already
// rejected on read; this keeps the table from growing unbounded.
func (s *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx)
}
