package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	"github.com/dare2earn/d2e_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepository
var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	m := mapping.ToModelSession(session)
	query := `
		INSERT INTO user_sessions (session_id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.SessionID, m.UserID, m.TokenHash, m.ExpiresAt, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindValidSession(ctx context.Context, tokenHash string) (*domain.SessionInfo, error) {
	// Single indexed point lookup on token_hash; expiry is evaluated lazily
	// here, not by a background sweep.
	query := `
		SELECT u.user_id, u.email, u.username, u.full_name
		FROM user_sessions s
		JOIN users u ON s.user_id = u.user_id
		WHERE s.token_hash = $1 AND s.expires_at > NOW() AND u.is_active = TRUE;
	`
	var info domain.SessionInfo
	err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(
		&info.UserID,
		&info.Email,
		&info.Username,
		&info.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &info, nil
}

func (r *PgxSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	// Idempotent: zero rows affected is fine.
	_, err := r.Pool.Exec(ctx, `DELETE FROM user_sessions WHERE token_hash = $1;`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM user_sessions WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM user_sessions WHERE expires_at < NOW();`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
