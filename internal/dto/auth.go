package dto

// SignupRequest is the payload for creating a new account.
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Username    string `json:"username" binding:"required"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// SigninRequest is the payload for authenticating with email and password.
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user plus their freshly issued
// bearer token. The token is returned exactly once.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ChangePasswordRequest is the payload for rotating a password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ExchangeCodeRequest carries the authorization code from the Google OAuth
// redirect for exchange into an application session.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
