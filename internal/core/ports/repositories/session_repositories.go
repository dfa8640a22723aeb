package repositories

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
)

// SessionRepository defines persistence operations over issued sessions.
// A session has exactly two observable states: valid (row exists and
// unexpired) and absent. Expiry is checked lazily at lookup time.
type SessionRepository interface {
	// SaveSession inserts a new session row.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindValidSession looks up an unexpired session by token hash joined to
	// its owning active user. This runs on every protected request, so it is
	// a single indexed point lookup. Returns apperrors.ErrNotFound when no
	// row matches.
	FindValidSession(ctx context.Context, tokenHash string) (*domain.SessionInfo, error)

	// DeleteByTokenHash removes the session matching the hash. Idempotent:
	// deleting an absent session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteAllForUser removes every session row for the user.
	DeleteAllForUser(ctx context.Context, userID string) error

	// DeleteExpired bulk-deletes rows whose expiry has elapsed and returns
	// the number removed. Safe to run concurrently with issuance/validation.
	DeleteExpired(ctx context.Context) (int64, error)
}
