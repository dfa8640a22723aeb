package services

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
)

// notificationListLimit caps how many notifications a single fetch returns.
const notificationListLimit = 50

// ledgerService implements the LedgerSvcFacade over the ledger repository.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new instance of ledgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.ledgerRepo.ListTransactionsByUser(ctx, userID)
}

func (s *ledgerService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.ledgerRepo.ListNotificationsByUser(ctx, userID, notificationListLimit)
}

func (s *ledgerService) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	return s.ledgerRepo.MarkNotificationRead(ctx, notificationID, userID)
}
