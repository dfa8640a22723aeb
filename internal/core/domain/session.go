package domain

import "time"

// Session represents one issued bearer token. Only the SHA-256 hash of the
// raw token is ever stored; the session is the server-side authority for
// revocation, independent of the token's own embedded expiry.
type Session struct {
	SessionID string    `json:"sessionID"`
	UserID    string    `json:"userID"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionInfo is the minimal identity projection attached to a request
// after successful session validation.
type SessionInfo struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}
