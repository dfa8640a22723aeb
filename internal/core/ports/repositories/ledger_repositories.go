package repositories

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
)

// LedgerRepository defines read operations over the append-only side-effect
// tables (transactions, notifications). Writers are external collaborators.
type LedgerRepository interface {
	// ListTransactionsByUser returns the user's ledger entries, newest first.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListNotificationsByUser returns up to limit notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	// MarkNotificationRead flips the read flag on the user's notification.
	// Returns apperrors.ErrNotFound if the row does not belong to the user.
	MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
}
