package mapping

import (
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/dare2earn/d2e_backend/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		DareID:          m.DareID,
		Amount:          m.Amount,
		TransactionType: m.TransactionType,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Title:          m.Title,
		Message:        m.Message,
		Type:           m.Type,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
