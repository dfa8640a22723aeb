package repositories

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
)

// UserRepository defines persistence operations over user identities.
type UserRepository interface {
	// CreateUser inserts a new user. A unique violation on email or username
	// surfaces as apperrors.ErrDuplicate; the constraint is the source of truth.
	CreateUser(ctx context.Context, user domain.User) error

	// FindUserByID returns the user, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns the user matching the email regardless of the
	// active flag (the caller decides how to treat deactivated accounts),
	// or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails looks a user up by external auth provider identity.
	FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// UpdateUserProfile writes the allow-listed profile columns of the user
	// and refreshes updated_at. Other columns are never touched by this call.
	UpdateUserProfile(ctx context.Context, user domain.User) error

	// UpdatePasswordAndRevokeSessions writes the new password hash and deletes
	// every session row for the user inside one transaction, so a concurrent
	// session validation can never observe a half-updated state.
	UpdatePasswordAndRevokeSessions(ctx context.Context, userID string, newPasswordHash string) error
}
