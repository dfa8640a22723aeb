package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a row in the users table.
type User struct {
	UserID         string          `db:"user_id"`
	Email          string          `db:"email"`
	Username       string          `db:"username"`
	PasswordHash   string          `db:"password_hash"`
	FullName       string          `db:"full_name"`
	PhoneNumber    string          `db:"phone_number"`
	Bio            string          `db:"bio"`
	ProfilePicURL  string          `db:"profile_pic_url"`
	WalletBalance  decimal.Decimal `db:"wallet_balance"`
	EmailVerified  bool            `db:"email_verified"`
	IsActive       bool            `db:"is_active"`
	Role           string          `db:"role"`
	AuthProvider   string          `db:"auth_provider"`
	ProviderUserID *string         `db:"provider_user_id"`
	AuditFields
}

// Session represents a row in the user_sessions table.
type Session struct {
	SessionID string    `db:"session_id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
