package pgsql

import (
	"context"
	"fmt"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	"github.com/dare2earn/d2e_backend/internal/models"
	"github.com/dare2earn/d2e_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, dare_id, amount, transaction_type, description, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.DareID,
			&m.Amount,
			&m.TransactionType,
			&m.Description,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return mapping.ToDomainTransactionSlice(transactions), nil
}

func (r *PgxLedgerRepository) ListNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID,
			&m.UserID,
			&m.Title,
			&m.Message,
			&m.Type,
			&m.IsRead,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}
	return mapping.ToDomainNotificationSlice(notifications), nil
}

func (r *PgxLedgerRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	// Scoped to the owner so a user cannot mark another user's notification.
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2;`,
		notificationID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
