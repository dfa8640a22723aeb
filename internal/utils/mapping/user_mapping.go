package mapping

import (
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/dare2earn/d2e_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	var providerUserID *string
	if d.ProviderUserID != "" {
		providerUserID = &d.ProviderUserID
	}
	return models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		Username:       d.Username,
		PasswordHash:   d.PasswordHash,
		FullName:       d.FullName,
		PhoneNumber:    d.PhoneNumber,
		Bio:            d.Bio,
		ProfilePicURL:  d.ProfilePicURL,
		WalletBalance:  d.WalletBalance,
		EmailVerified:  d.EmailVerified,
		IsActive:       d.IsActive,
		Role:           string(d.Role),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: providerUserID,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	var providerUserID string
	if m.ProviderUserID != nil {
		providerUserID = *m.ProviderUserID
	}
	return domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		Username:       m.Username,
		PasswordHash:   m.PasswordHash,
		FullName:       m.FullName,
		PhoneNumber:    m.PhoneNumber,
		Bio:            m.Bio,
		ProfilePicURL:  m.ProfilePicURL,
		WalletBalance:  m.WalletBalance,
		EmailVerified:  m.EmailVerified,
		IsActive:       m.IsActive,
		Role:           domain.UserRole(m.Role),
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainSession converts a model Session to a domain Session
func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID: m.SessionID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelSession converts a domain Session to a model Session
func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID: d.SessionID,
		UserID:    d.UserID,
		TokenHash: d.TokenHash,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
	}
}
