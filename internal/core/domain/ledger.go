package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an append-only monetary ledger entry. The core only reads
// these; writers are external collaborators (e.g. a settlement job).
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"userID"`
	DareID          *string         `json:"dareID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Notification is a user-facing alert. Append-only from the core's
// perspective, except for the read flag.
type Notification struct {
	NotificationID string    `json:"notificationID"`
	UserID         string    `json:"userID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
