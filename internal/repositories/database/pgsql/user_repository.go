package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	"github.com/dare2earn/d2e_backend/internal/models"
	"github.com/dare2earn/d2e_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, username, password_hash, full_name, phone_number, bio,
		profile_pic_url, wallet_balance, email_verified, is_active, role,
		auth_provider, provider_user_id, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.Username,
		&m.PasswordHash,
		&m.FullName,
		&m.PhoneNumber,
		&m.Bio,
		&m.ProfilePicURL,
		&m.WalletBalance,
		&m.EmailVerified,
		&m.IsActive,
		&m.Role,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.Username,
		m.PasswordHash,
		m.FullName,
		m.PhoneNumber,
		m.Bio,
		m.ProfilePicURL,
		m.WalletBalance,
		m.EmailVerified,
		m.IsActive,
		m.Role,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The unique constraints on email and username are the source of
			// truth for duplicate accounts.
			return apperrors.NewConflictError("user with this email or username already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, string(authProvider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) UpdateUserProfile(ctx context.Context, user domain.User) error {
	// Only the allow-listed profile columns are writable here; everything
	// else (email, hash, balance, role) has its own dedicated path.
	query := `
		UPDATE users
		SET full_name = $1, username = $2, bio = $3, phone_number = $4,
			profile_pic_url = $5, updated_at = $6
		WHERE user_id = $7 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.FullName,
		user.Username,
		user.Bio,
		user.PhoneNumber,
		user.ProfilePicURL,
		time.Now(),
		user.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("username already taken")
		}
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePasswordAndRevokeSessions(ctx context.Context, userID string, newPasswordHash string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits.

	cmdTag, err := tx.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE user_id = $3;`,
		newPasswordHash, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Revoking inside the same transaction means no concurrent validation
	// can observe the new hash with the old sessions still alive.
	if _, err := tx.Exec(ctx, `DELETE FROM user_sessions WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions for user %s: %w", userID, err)
	}

	return r.Commit(ctx, tx)
}
