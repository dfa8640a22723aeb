package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/dare2earn/d2e_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userService implements the UserSvcFacade over the user repository.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Register creates a new local-auth user with a bcrypt password hash.
func (s *userService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Username:      strings.TrimSpace(req.Username),
		PasswordHash:  passwordHash,
		FullName:      req.FullName,
		WalletBalance: decimal.Zero,
		IsActive:      true,
		Role:          domain.RoleUser,
		AuthProvider:  domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials checks an email/password pair against the stored hash.
// Callers should present all failures identically; the distinct errors here
// exist for logging, not for the API response.
func (s *userService) VerifyCredentials(ctx context.Context, email string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user for sign-in: %w", err)
	}

	if !user.IsActive {
		logger.Warn("sign-in attempt for inactive user", "user_id", user.UserID)
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		// Google-only accounts have no local password.
		return nil, apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of the request onto the stored user.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfilePicURL != nil {
		user.ProfilePicURL = *req.ProfilePicURL
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUserProfile(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every session for the user in one transaction.
func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.NewValidationError("current password is incorrect")
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.userRepo.UpdatePasswordAndRevokeSessions(ctx, userID, newHash)
}

// FindOrCreateGoogleUser resolves a verified Google identity to a local
// user, creating one on first sign-in.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	providerUserID := info.ID
	name := info.Name
	picture := info.Picture
	emailVerified := info.VerifiedEmail

	if info.Email == "" {
		return nil, apperrors.NewValidationError("google account has no email")
	}
	email := strings.ToLower(info.Email)

	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// Not linked yet. If an account with this email exists, link it rather
	// than creating a second account.
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		existing.AuthProvider = domain.ProviderGoogle
		existing.ProviderUserID = providerUserID
		existing.EmailVerified = existing.EmailVerified || emailVerified
		existing.UpdatedAt = time.Now()
		if updateErr := s.userRepo.UpdateUserProfile(ctx, *existing); updateErr != nil {
			return nil, fmt.Errorf("failed to link google account: %w", updateErr)
		}
		logger.Info("linked google identity to existing account", "user_id", existing.UserID)
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Email:          email,
		Username:       usernameFromEmail(email),
		FullName:       name,
		ProfilePicURL:  picture,
		WalletBalance:  decimal.Zero,
		EmailVerified:  emailVerified,
		IsActive:       true,
		Role:           domain.RoleUser,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Username collision on first sign-in; retry with a suffix.
			newUser.Username = newUser.Username + "_" + uuid.NewString()[:8]
			if retryErr := s.userRepo.CreateUser(ctx, newUser); retryErr != nil {
				return nil, retryErr
			}
			return &newUser, nil
		}
		return nil, err
	}
	logger.Info("created user from google sign-in", "user_id", newUser.UserID)
	return &newUser, nil
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "user_" + uuid.NewString()[:8]
	}
	return local
}
