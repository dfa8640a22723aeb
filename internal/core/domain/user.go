package domain

import (
	"github.com/shopspring/decimal"
)

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// UserRole identifies a user's role within the application.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a user of the application in the domain.
// Accounts are never hard-deleted; IsActive=false deactivates them.
type User struct {
	UserID         string          `json:"userID"` // Primary Key (UUID)
	Email          string          `json:"email"`
	Username       string          `json:"username"`
	PasswordHash   string          `json:"-"` // Never expose the hash in JSON responses
	FullName       string          `json:"fullName"`
	PhoneNumber    string          `json:"phoneNumber"`
	Bio            string          `json:"bio"`
	ProfilePicURL  string          `json:"profilePicURL"`
	WalletBalance  decimal.Decimal `json:"walletBalance"`
	EmailVerified  bool            `json:"emailVerified"`
	IsActive       bool            `json:"isActive"`
	Role           UserRole        `json:"role"`
	AuthProvider   AuthProvider    `json:"authProvider"`
	ProviderUserID string          `json:"-"`
	AuditFields
}

// GoogleUserInfo holds the user details returned by Google after OAuth.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
