package services

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/dare2earn/d2e_backend/internal/dto"
)

// UserSvcFacade defines the interface for user identity and credential management.
type UserSvcFacade interface {
	// Register creates a new local user with a bcrypt-hashed password.
	// Duplicate email or username yields apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// VerifyCredentials checks an email/password pair. A missing account, a
	// wrong password and a deactivated account all yield
	// apperrors.ErrInvalidCredentials so the API boundary presents one
	// generic sign-in failure message.
	VerifyCredentials(ctx context.Context, email string, password string) (*domain.User, error)

	// GetUserByID returns the active user, or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile mutates only the allow-listed profile fields and returns
	// the updated user. An update with no fields set yields apperrors.ErrValidation.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword re-verifies the current password, then writes the new
	// hash and revokes every session for the user in one transaction.
	ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error

	// FindOrCreateGoogleUser resolves a Google identity to a local user,
	// linking by provider identity first and email second, creating the
	// account if neither matches.
	FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}
