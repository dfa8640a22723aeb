package dto

import (
	"time"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateProfileRequest enumerates the profile fields a user may change.
// Pointers differentiate omitted fields from zero-value fields; anything
// outside this struct is rejected at the boundary by construction.
type UpdateProfileRequest struct {
	FullName      *string `json:"full_name"`
	Username      *string `json:"username"`
	Bio           *string `json:"bio"`
	PhoneNumber   *string `json:"phone_number"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

// IsEmpty reports whether no updatable field was provided.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FullName == nil && r.Username == nil && r.Bio == nil &&
		r.PhoneNumber == nil && r.ProfilePicURL == nil
}

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Username      string          `json:"username"`
	FullName      string          `json:"full_name"`
	PhoneNumber   string          `json:"phone_number"`
	Bio           string          `json:"bio"`
	ProfilePicURL string          `json:"profile_pic_url"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	EmailVerified bool            `json:"email_verified"`
	Role          string          `json:"role"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.UserID,
		Email:         user.Email,
		Username:      user.Username,
		FullName:      user.FullName,
		PhoneNumber:   user.PhoneNumber,
		Bio:           user.Bio,
		ProfilePicURL: user.ProfilePicURL,
		WalletBalance: user.WalletBalance,
		EmailVerified: user.EmailVerified,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
	}
}
