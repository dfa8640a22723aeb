package services

import (
	"context"
	"time"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// SessionSvcFacade defines the interface for bearer-token session management.
// A token is a signed stateless claim whose SHA-256 hash is additionally
// stored as a server-side session row; validation requires both halves, so
// logout and mass revocation work despite the claim's validity window.
type SessionSvcFacade interface {
	// Issue creates a token for the user and stores its session row. The raw
	// token is returned exactly once and never stored.
	Issue(ctx context.Context, user *domain.User) (string, time.Time, error)

	// Validate verifies the token's claim and looks up its unexpired session
	// row joined to an active user. Any failure yields apperrors.ErrInvalidSession.
	Validate(ctx context.Context, rawToken string) (*domain.SessionInfo, error)

	// Revoke deletes the session matching the raw token. Idempotent.
	Revoke(ctx context.Context, rawToken string) error

	// RevokeAll deletes every session for the user.
	RevokeAll(ctx context.Context, userID string) error

	// SweepExpired bulk-deletes expired session rows. Storage hygiene only;
	// validation never depends on it having run.
	SweepExpired(ctx context.Context) (int64, error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
